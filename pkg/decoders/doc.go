// Package decoders groups the built-in guided-section decoders. Each
// subpackage owns one section GUID and its payload format, and exposes a
// Register function that binds its handler pair into a registry. The
// registry core never depends on any of them; they are ordinary external
// decoders that happen to ship in this repository.
package decoders
