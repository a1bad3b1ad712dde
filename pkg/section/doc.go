// Package section models the GUID-defined section container of a firmware
// volume: a self-describing data block whose header names, by GUID, the
// decoder needed to interpret its payload.
//
// The container is consumed read-only. Byte-level payload formats belong to
// the individual decoders in pkg/decoders, not to this package.
package section
