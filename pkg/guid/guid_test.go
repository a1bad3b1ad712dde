package guid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("canonical form", func(t *testing.T) {
		g, err := Parse("ee4e5898-3914-4259-9d6e-dc7bd79403cf")
		require.NoError(t, err)

		assert.Equal(t, uint32(0xee4e5898), g.Data1)
		assert.Equal(t, uint16(0x3914), g.Data2)
		assert.Equal(t, uint16(0x4259), g.Data3)
		assert.Equal(t, [8]byte{0x9d, 0x6e, 0xdc, 0x7b, 0xd7, 0x94, 0x03, 0xcf}, g.Data4)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Parse("not-a-guid")
		assert.Error(t, err)
	})

	t.Run("case insensitive", func(t *testing.T) {
		lower, err := Parse("fc1bcdb0-7d31-49aa-936a-a4600d9dd083")
		require.NoError(t, err)
		upper, err := Parse("FC1BCDB0-7D31-49AA-936A-A4600D9DD083")
		require.NoError(t, err)
		assert.Equal(t, lower, upper)
	})
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() { MustParse("fc1bcdb0-7d31-49aa-936a-a4600d9dd083") })
	assert.Panics(t, func() { MustParse("bogus") })
}

func TestBytesRoundTrip(t *testing.T) {
	g := MustParse("ee4e5898-3914-4259-9d6e-dc7bd79403cf")

	b := g.Bytes()
	require.Len(t, b, Size)

	// Wire form is little-endian for the first three fields.
	want := []byte{
		0x98, 0x58, 0x4e, 0xee,
		0x14, 0x39,
		0x59, 0x42,
		0x9d, 0x6e, 0xdc, 0x7b, 0xd7, 0x94, 0x03, 0xcf,
	}
	assert.Equal(t, want, b)

	back, err := FromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, g, back)
}

func TestFromBytesShort(t *testing.T) {
	_, err := FromBytes(make([]byte, Size-1))
	assert.Error(t, err)
}

func TestUUIDRoundTrip(t *testing.T) {
	u := uuid.MustParse("fc1bcdb0-7d31-49aa-936a-a4600d9dd083")
	g := FromUUID(u)
	assert.Equal(t, u, g.UUID())
	assert.Equal(t, "fc1bcdb0-7d31-49aa-936a-a4600d9dd083", g.String())
}

func TestIsZero(t *testing.T) {
	assert.True(t, GUID{}.IsZero())
	assert.False(t, MustParse("fc1bcdb0-7d31-49aa-936a-a4600d9dd083").IsZero())
}
