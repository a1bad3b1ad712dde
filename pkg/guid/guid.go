package guid

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// Size is the length of a GUID's wire form in bytes.
const Size = 16

// GUID is a 128-bit identifier in the mixed-endian layout used by firmware
// volumes: Data1 through Data3 are little-endian on the wire, Data4 is a
// plain byte sequence. This differs from the big-endian RFC 4122 layout, so
// conversions to and from uuid.UUID swap the first three fields.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// Parse parses the canonical 8-4-4-4-12 text form of a GUID.
func Parse(s string) (GUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, fmt.Errorf("invalid GUID %q: %w", s, err)
	}
	return FromUUID(u), nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// package-level GUID constants.
func MustParse(s string) GUID {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// FromUUID converts a big-endian RFC 4122 UUID into firmware GUID layout.
func FromUUID(u uuid.UUID) GUID {
	var g GUID
	g.Data1 = binary.BigEndian.Uint32(u[0:4])
	g.Data2 = binary.BigEndian.Uint16(u[4:6])
	g.Data3 = binary.BigEndian.Uint16(u[6:8])
	copy(g.Data4[:], u[8:16])
	return g
}

// UUID converts g back into the big-endian RFC 4122 layout.
func (g GUID) UUID() uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], g.Data1)
	binary.BigEndian.PutUint16(u[4:6], g.Data2)
	binary.BigEndian.PutUint16(u[6:8], g.Data3)
	copy(u[8:16], g.Data4[:])
	return u
}

// FromBytes reads the 16-byte little-endian wire form.
func FromBytes(b []byte) (GUID, error) {
	if len(b) < Size {
		return GUID{}, fmt.Errorf("GUID needs %d bytes, have %d", Size, len(b))
	}
	var g GUID
	g.Data1 = binary.LittleEndian.Uint32(b[0:4])
	g.Data2 = binary.LittleEndian.Uint16(b[4:6])
	g.Data3 = binary.LittleEndian.Uint16(b[6:8])
	copy(g.Data4[:], b[8:16])
	return g, nil
}

// Bytes renders the 16-byte little-endian wire form.
func (g GUID) Bytes() []byte {
	b := make([]byte, Size)
	binary.LittleEndian.PutUint32(b[0:4], g.Data1)
	binary.LittleEndian.PutUint16(b[4:6], g.Data2)
	binary.LittleEndian.PutUint16(b[6:8], g.Data3)
	copy(b[8:16], g.Data4[:])
	return b
}

// String returns the canonical lowercase 8-4-4-4-12 form.
func (g GUID) String() string {
	return g.UUID().String()
}

// IsZero reports whether g is the all-zero GUID.
func (g GUID) IsZero() bool {
	return g == GUID{}
}
