package crc32

import (
	"testing"

	"github.com/arthur-debert/guidex/pkg/errors"
	"github.com/arthur-debert/guidex/pkg/extract"
	"github.com/arthur-debert/guidex/pkg/section"
	"github.com/arthur-debert/guidex/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payload := []byte("firmware blob under checksum")

	raw, err := Encode(payload)
	require.NoError(t, err)

	s, err := section.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, SectionGuid, s.Guid())

	info, err := GetInfo(s)
	require.NoError(t, err)
	assert.Equal(t, uint32(len(payload)), info.OutputSize)
	assert.Equal(t, uint32(0), info.ScratchSize)

	out, status, err := Decode(s, nil)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
	assert.Equal(t, section.AuthStatus(0), status, "intact checksum carries no failure bits")
}

func TestDecodeAliasesPayload(t *testing.T) {
	raw, err := Encode([]byte{1, 2, 3})
	require.NoError(t, err)

	s, err := section.Parse(raw)
	require.NoError(t, err)

	out, _, err := Decode(s, nil)
	require.NoError(t, err)
	assert.Same(t, &s.Data()[checksumLen], &out[0])
}

func TestDecodeCorrupted(t *testing.T) {
	raw, err := Encode([]byte("payload to corrupt"))
	require.NoError(t, err)

	// Flip a payload byte behind the checksum.
	raw[len(raw)-1] ^= 0xff

	s, err := section.Parse(raw)
	require.NoError(t, err)

	out, status, err := Decode(s, nil)
	require.NoError(t, err, "a failed check is an auth result, not an error")
	assert.NotEmpty(t, out)
	assert.NotZero(t, status&section.AuthTestFailed)
}

func TestDecodeWithoutAuthAttribute(t *testing.T) {
	s := testutil.BuildSection(t, SectionGuid, 0, []byte{0, 0, 0, 0, 'x'})

	_, status, err := Decode(s, nil)
	require.NoError(t, err)
	assert.NotZero(t, status&section.AuthNotTested)
	assert.Zero(t, status&section.AuthTestFailed)
}

func TestShortPayload(t *testing.T) {
	s := testutil.BuildSection(t, SectionGuid, section.AuthStatusValid, []byte{1, 2})

	_, err := GetInfo(s)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSectionInvalid))

	_, _, err = Decode(s, nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSectionInvalid))
}

func TestRegister(t *testing.T) {
	r := extract.New(extract.WithProviders(&testutil.FakeProvider{}))
	require.NoError(t, Register(r))

	raw, err := Encode([]byte("dispatched"))
	require.NoError(t, err)
	s, err := section.Parse(raw)
	require.NoError(t, err)

	out, _, err := r.Decode(s, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("dispatched"), out)
}
