// Package guid implements the 128-bit mixed-endian identifier format that
// firmware volumes use to tag GUID-defined sections and their decoders.
package guid
