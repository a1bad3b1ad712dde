package crc32

import (
	"encoding/binary"
	stdcrc32 "hash/crc32"

	"github.com/arthur-debert/guidex/pkg/errors"
	"github.com/arthur-debert/guidex/pkg/extract"
	"github.com/arthur-debert/guidex/pkg/guid"
	"github.com/arthur-debert/guidex/pkg/section"
)

// SectionGuid identifies CRC32-checked guided sections.
var SectionGuid = guid.MustParse("fc1bcdb0-7d31-49aa-936a-a4600d9dd083")

// The payload starts with the little-endian IEEE CRC32 of the data that
// follows it.
const checksumLen = 4

// GetInfo reports the decoded size of a CRC32 section: the payload minus the
// leading checksum. No scratch memory is needed.
func GetInfo(s *section.Section) (section.Info, error) {
	data := s.Data()
	if len(data) < checksumLen {
		return section.Info{}, errors.Newf(errors.ErrSectionInvalid,
			"crc32 section payload of %d bytes is shorter than its checksum", len(data))
	}
	return section.Info{
		OutputSize:  uint32(len(data) - checksumLen),
		ScratchSize: 0,
		Attributes:  s.Attributes(),
	}, nil
}

// Decode verifies the checksum and returns the data behind it. The output
// aliases the section payload; the content is already in its final form, so
// no copy is made. A checksum mismatch is an authentication result, not a
// decode failure: the data is still returned, with the test-failed bit set.
func Decode(s *section.Section, _ []byte) ([]byte, section.AuthStatus, error) {
	data := s.Data()
	if len(data) < checksumLen {
		return nil, 0, errors.Newf(errors.ErrSectionInvalid,
			"crc32 section payload of %d bytes is shorter than its checksum", len(data))
	}

	want := binary.LittleEndian.Uint32(data[:checksumLen])
	payload := data[checksumLen:]

	var status section.AuthStatus
	if s.Attributes()&section.AuthStatusValid == 0 {
		status |= section.AuthNotTested
	} else if stdcrc32.ChecksumIEEE(payload) != want {
		status |= section.AuthTestFailed
	}
	return payload, status, nil
}

// Encode wraps payload in a CRC32 guided section.
func Encode(payload []byte) ([]byte, error) {
	buf := make([]byte, checksumLen+len(payload))
	binary.LittleEndian.PutUint32(buf, stdcrc32.ChecksumIEEE(payload))
	copy(buf[checksumLen:], payload)
	return section.Build(SectionGuid,
		section.ProcessingRequired|section.AuthStatusValid, buf)
}

// Register binds the CRC32 decoder into r.
func Register(r *extract.Registry) error {
	return r.Register(SectionGuid, GetInfo, Decode)
}
