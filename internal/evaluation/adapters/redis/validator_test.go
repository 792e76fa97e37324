package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardapp/internal/evaluation/ports"
	"cardapp/pkg/platform/sentinel"
)

// unreachableClient points at a port nothing listens on so every command fails fast.
func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestValidator_LookupFailures(t *testing.T) {
	t.Run("empty number is invalid without a lookup", func(t *testing.T) {
		v := New(context.Background(), unreachableClient(t), DefaultKeys())
		assert.False(t, v.IsValid(""))
		assert.NoError(t, v.Err())
	})

	t.Run("failed lookup reports invalid and records the error", func(t *testing.T) {
		v := New(context.Background(), unreachableClient(t), DefaultKeys())
		assert.False(t, v.IsValid("QF100"))
		require.Error(t, v.Err())
		first := v.Err()

		assert.False(t, v.IsValid("QF200"))
		assert.Same(t, first, v.Err(), "first failure is kept")
	})

	t.Run("failed license read is unavailable", func(t *testing.T) {
		v := New(context.Background(), unreachableClient(t), DefaultKeys())
		assert.Empty(t, v.ServiceInformation().License().LicenseKey())
		assert.ErrorIs(t, v.Err(), sentinel.ErrUnavailable)
	})
}

func TestValidator_Mode(t *testing.T) {
	v := New(context.Background(), unreachableClient(t), DefaultKeys())
	assert.Equal(t, ports.ValidationModeBasic, v.ValidationMode())

	v.SetValidationMode(ports.ValidationModeDetailed)
	assert.Equal(t, ports.ValidationModeDetailed, v.ValidationMode())
}

func TestFactory(t *testing.T) {
	factory := Factory(unreachableClient(t), DefaultKeys())

	first, err := factory(context.Background())
	require.NoError(t, err)
	second, err := factory(context.Background())
	require.NoError(t, err)

	first.SetValidationMode(ports.ValidationModeDetailed)
	assert.Equal(t, ports.ValidationModeBasic, second.ValidationMode())
}
