// Package store provides candidate storage locations for the handler table.
//
// At the earliest boot phase it is not knowable in advance whether
// module-local static storage is writable (some stages execute from
// read-only firmware images) or whether a fixed well-known address is backed
// by usable memory yet. Each Provider therefore probes at claim time: an
// already-valid signature short-circuits, otherwise a marker is written and
// read back, and only a successful read-back makes the candidate usable.
package store
