package domainerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, CodeInternal, "ignored"))
	})

	t.Run("wrapped cause is reachable", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := Wrap(cause, CodeInternal, "lookup failed")
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "lookup failed: connection refused", err.Error())
	})
}

func TestHasCode(t *testing.T) {
	inner := New(CodeUnavailable, "redis down")
	outer := Wrap(inner, CodeInternal, "validator failed")

	assert.True(t, HasCode(outer, CodeInternal))
	assert.True(t, HasCode(outer, CodeUnavailable), "codes deeper in the chain match")
	assert.False(t, HasCode(outer, CodeValidation))
	assert.False(t, HasCode(errors.New("plain"), CodeInternal))
	assert.False(t, HasCode(nil, CodeInternal))
	assert.True(t, Is(inner, CodeUnavailable))
}
