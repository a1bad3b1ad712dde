package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrTableFull, "handler table full")

	assert.Equal(t, ErrTableFull, err.Code)
	assert.Equal(t, "[TABLE_FULL] handler table full", err.Error())
	assert.Nil(t, err.Wrapped)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrUnsupported, "no decoder for GUID %s", "fc1bcdb0")
	assert.Equal(t, "[UNSUPPORTED] no decoder for GUID fc1bcdb0", err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("wraps cause", func(t *testing.T) {
		cause := fmt.Errorf("read-back mismatch")
		err := Wrap(cause, ErrStorageUnavailable, "candidate probe failed")

		assert.Equal(t, "[STORAGE_UNAVAILABLE] candidate probe failed: read-back mismatch", err.Error())
		assert.Equal(t, cause, stderrors.Unwrap(err))
	})

	t.Run("nil cause yields nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, ErrInternal, "ignored"))
		assert.Nil(t, Wrapf(nil, ErrInternal, "ignored %d", 1))
	})
}

func TestIsErrorCode(t *testing.T) {
	err := New(ErrStorageUnavailable, "no writable candidate")

	assert.True(t, IsErrorCode(err, ErrStorageUnavailable))
	assert.False(t, IsErrorCode(err, ErrTableFull))
	assert.False(t, IsErrorCode(stderrors.New("plain"), ErrStorageUnavailable))
	assert.False(t, IsErrorCode(nil, ErrStorageUnavailable))
}

func TestIsErrorCodeThroughWrapping(t *testing.T) {
	inner := New(ErrStorageUnavailable, "no writable candidate")
	outer := fmt.Errorf("registering decoder: %w", inner)

	assert.True(t, IsErrorCode(outer, ErrStorageUnavailable))
	assert.Equal(t, ErrStorageUnavailable, GetErrorCode(outer))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrSectionInvalid, GetErrorCode(New(ErrSectionInvalid, "short header")))
	assert.Equal(t, ErrUnknown, GetErrorCode(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrTableFull, "handler table full").
		WithDetail("capacity", 16).
		WithDetail("guid", "fc1bcdb0-7d31-49aa-936a-a4600d9dd083")

	details := GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, 16, details["capacity"])
}

func TestErrorsIs(t *testing.T) {
	a := New(ErrUnsupported, "one message")
	b := New(ErrUnsupported, "another message")

	// Is matches on code, not message.
	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, New(ErrTableFull, "different code")))
}
