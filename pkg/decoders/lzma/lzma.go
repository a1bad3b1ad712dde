package lzma

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/ulikunitz/xz/lzma"

	"github.com/arthur-debert/guidex/pkg/errors"
	"github.com/arthur-debert/guidex/pkg/extract"
	"github.com/arthur-debert/guidex/pkg/guid"
	"github.com/arthur-debert/guidex/pkg/section"
)

// SectionGuid identifies LZMA-compressed guided sections.
var SectionGuid = guid.MustParse("ee4e5898-3914-4259-9d6e-dc7bd79403cf")

// Classic LZMA stream header: properties byte, dictionary size, and the
// 64-bit uncompressed size, all little-endian.
const (
	headerLen      = 13
	sizeFieldOff   = 5
	unknownRawSize = math.MaxUint64
)

// GetInfo reads the decoded size out of the LZMA stream header. The Go
// decoder needs no caller-provided scratch memory.
func GetInfo(s *section.Section) (section.Info, error) {
	data := s.Data()
	if len(data) < headerLen {
		return section.Info{}, errors.Newf(errors.ErrSectionInvalid,
			"lzma section payload of %d bytes is shorter than the stream header", len(data))
	}

	rawSize := binary.LittleEndian.Uint64(data[sizeFieldOff : sizeFieldOff+8])
	if rawSize == unknownRawSize {
		return section.Info{}, errors.New(errors.ErrSectionInvalid,
			"lzma stream does not declare its uncompressed size")
	}
	if rawSize > math.MaxUint32 {
		return section.Info{}, errors.Newf(errors.ErrSectionInvalid,
			"lzma uncompressed size %d exceeds the section size model", rawSize)
	}

	return section.Info{
		OutputSize:  uint32(rawSize),
		ScratchSize: 0,
		Attributes:  s.Attributes(),
	}, nil
}

// Decode decompresses the stream into a freshly allocated output buffer.
// The decoder performs no integrity check of its own beyond what the stream
// format requires, so the status reports not-tested.
func Decode(s *section.Section, _ []byte) ([]byte, section.AuthStatus, error) {
	info, err := GetInfo(s)
	if err != nil {
		return nil, 0, err
	}

	r, err := lzma.NewReader(bytes.NewReader(s.Data()))
	if err != nil {
		return nil, 0, errors.Wrap(err, errors.ErrDecodeFailed, "opening lzma stream")
	}

	out := make([]byte, info.OutputSize)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, 0, errors.Wrap(err, errors.ErrDecodeFailed, "decompressing lzma stream")
	}

	var status section.AuthStatus
	if s.Attributes()&section.AuthStatusValid == 0 {
		status |= section.AuthNotTested
	}
	return out, status, nil
}

// Encode compresses payload into an LZMA guided section.
func Encode(payload []byte) ([]byte, error) {
	var buf bytes.Buffer
	// SizeInHeader is set explicitly so that an empty payload still writes
	// a concrete size instead of the unknown-size marker.
	cfg := lzma.WriterConfig{Size: int64(len(payload)), SizeInHeader: true}
	w, err := cfg.NewWriter(&buf)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "creating lzma writer")
	}
	if _, err := w.Write(payload); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "compressing payload")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "closing lzma stream")
	}
	return section.Build(SectionGuid, section.ProcessingRequired, buf.Bytes())
}

// Register binds the LZMA decoder into r.
func Register(r *extract.Registry) error {
	return r.Register(SectionGuid, GetInfo, Decode)
}
