package section

import (
	"encoding/binary"

	"github.com/arthur-debert/guidex/pkg/errors"
	"github.com/arthur-debert/guidex/pkg/guid"
)

// TypeGuidDefined is the section type byte of a GUID-defined section.
const TypeGuidDefined = 0x02

// headerLen is the fixed header: 3-byte size, type byte, section definition
// GUID, data offset, attributes.
const headerLen = 4 + guid.Size + 2 + 2

// maxSectionSize is the largest value the 24-bit size field can carry.
const maxSectionSize = 1<<24 - 1

// Attribute bits of a GUID-defined section.
const (
	// ProcessingRequired means the payload is not usable until the decoder
	// identified by the section GUID has run.
	ProcessingRequired uint16 = 0x01
	// AuthStatusValid means the decoder produces a meaningful
	// authentication status for the payload.
	AuthStatusValid uint16 = 0x02
)

// AuthStatus is the authentication bitmask a decode handler returns to
// describe how much trust to place in the decoded payload.
type AuthStatus uint32

const (
	AuthPlatformOverride AuthStatus = 0x01
	AuthImageSigned      AuthStatus = 0x02
	AuthNotTested        AuthStatus = 0x08
	AuthTestFailed       AuthStatus = 0x10
)

// Info is a get-info handler's answer for a section: how big the decoded
// output will be, how much scratch memory the decode step needs, and the
// section's attribute bits.
type Info struct {
	OutputSize  uint32
	ScratchSize uint32
	Attributes  uint16
}

// Section is a read-only view of a GUID-defined section. The registry core
// never interprets the payload; it reads the GUID to route the section to a
// registered decoder, which owns the payload format.
type Section struct {
	raw        []byte
	guid       guid.GUID
	dataOffset uint16
	attributes uint16
}

// Parse validates the section header in b and returns a view over it. The
// returned Section aliases b; callers must not mutate b while the view is in
// use.
func Parse(b []byte) (*Section, error) {
	if len(b) < headerLen {
		return nil, errors.Newf(errors.ErrSectionInvalid,
			"section too short: %d bytes, header needs %d", len(b), headerLen)
	}

	size := int(b[0]) | int(b[1])<<8 | int(b[2])<<16
	if size < headerLen {
		return nil, errors.Newf(errors.ErrSectionInvalid,
			"declared section size %d smaller than header", size)
	}
	if size > len(b) {
		return nil, errors.Newf(errors.ErrSectionInvalid,
			"declared section size %d exceeds available %d bytes", size, len(b))
	}
	if b[3] != TypeGuidDefined {
		return nil, errors.Newf(errors.ErrSectionInvalid,
			"section type %#02x is not GUID-defined", b[3])
	}

	g, err := guid.FromBytes(b[4 : 4+guid.Size])
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSectionInvalid, "section definition GUID")
	}

	dataOffset := binary.LittleEndian.Uint16(b[4+guid.Size:])
	if int(dataOffset) < headerLen || int(dataOffset) > size {
		return nil, errors.Newf(errors.ErrSectionInvalid,
			"data offset %d outside section of %d bytes", dataOffset, size)
	}
	attributes := binary.LittleEndian.Uint16(b[4+guid.Size+2:])

	return &Section{
		raw:        b[:size],
		guid:       g,
		dataOffset: dataOffset,
		attributes: attributes,
	}, nil
}

// Guid returns the section definition GUID naming the decoder this section
// requires.
func (s *Section) Guid() guid.GUID {
	return s.guid
}

// Attributes returns the section attribute bits.
func (s *Section) Attributes() uint16 {
	return s.attributes
}

// Data returns the section payload. The slice aliases the section's backing
// bytes and must be treated as read-only.
func (s *Section) Data() []byte {
	return s.raw[s.dataOffset:]
}

// Bytes returns the full encoded section, header included.
func (s *Section) Bytes() []byte {
	return s.raw
}

// Size returns the declared section size in bytes.
func (s *Section) Size() int {
	return len(s.raw)
}

// Build assembles a GUID-defined section around payload. Decoders use it on
// their encode paths; the registry itself never writes sections.
func Build(g guid.GUID, attributes uint16, payload []byte) ([]byte, error) {
	size := headerLen + len(payload)
	if size > maxSectionSize {
		return nil, errors.Newf(errors.ErrSectionInvalid,
			"payload of %d bytes overflows the 24-bit section size", len(payload))
	}

	b := make([]byte, size)
	b[0] = byte(size)
	b[1] = byte(size >> 8)
	b[2] = byte(size >> 16)
	b[3] = TypeGuidDefined
	copy(b[4:], g.Bytes())
	binary.LittleEndian.PutUint16(b[4+guid.Size:], uint16(headerLen))
	binary.LittleEndian.PutUint16(b[4+guid.Size+2:], attributes)
	copy(b[headerLen:], payload)
	return b, nil
}
