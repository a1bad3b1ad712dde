package lzma

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/arthur-debert/guidex/pkg/errors"
	"github.com/arthur-debert/guidex/pkg/extract"
	"github.com/arthur-debert/guidex/pkg/section"
	"github.com/arthur-debert/guidex/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("compressible firmware content. "), 64)

	raw, err := Encode(payload)
	require.NoError(t, err)

	s, err := section.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, SectionGuid, s.Guid())
	assert.Less(t, len(s.Data()), len(payload), "payload should compress")

	info, err := GetInfo(s)
	require.NoError(t, err)
	assert.Equal(t, uint32(len(payload)), info.OutputSize)
	assert.Equal(t, uint32(0), info.ScratchSize)

	out, status, err := Decode(s, nil)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
	assert.NotZero(t, status&section.AuthNotTested,
		"lzma performs no authentication of its own")
}

func TestEncodeEmptyPayload(t *testing.T) {
	raw, err := Encode(nil)
	require.NoError(t, err)

	s, err := section.Parse(raw)
	require.NoError(t, err)

	info, err := GetInfo(s)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), info.OutputSize)

	out, _, err := Decode(s, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGetInfoShortPayload(t *testing.T) {
	s := testutil.BuildSection(t, SectionGuid, 0, make([]byte, headerLen-1))

	_, err := GetInfo(s)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSectionInvalid))
}

func TestGetInfoUnknownSize(t *testing.T) {
	hdr := make([]byte, headerLen)
	binary.LittleEndian.PutUint64(hdr[sizeFieldOff:], unknownRawSize)
	s := testutil.BuildSection(t, SectionGuid, 0, hdr)

	_, err := GetInfo(s)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSectionInvalid))
}

func TestGetInfoOversizedStream(t *testing.T) {
	hdr := make([]byte, headerLen)
	binary.LittleEndian.PutUint64(hdr[sizeFieldOff:], 1<<40)
	s := testutil.BuildSection(t, SectionGuid, 0, hdr)

	_, err := GetInfo(s)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSectionInvalid))
}

func TestDecodeTruncatedStream(t *testing.T) {
	raw, err := Encode(bytes.Repeat([]byte("abc"), 100))
	require.NoError(t, err)

	s, err := section.Parse(raw)
	require.NoError(t, err)

	// Rebuild the section around a stream that lost its tail; the declared
	// uncompressed size can no longer be satisfied.
	data := s.Data()
	trunc := testutil.BuildSection(t, SectionGuid, 0, data[:len(data)-4])

	_, _, err = Decode(trunc, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDecodeFailed))
}

func TestRegister(t *testing.T) {
	r := extract.New(extract.WithProviders(&testutil.FakeProvider{}))
	require.NoError(t, Register(r))

	payload := []byte("dispatched through the registry")
	raw, err := Encode(payload)
	require.NoError(t, err)
	s, err := section.Parse(raw)
	require.NoError(t, err)

	out, _, err := r.Decode(s, nil)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}
