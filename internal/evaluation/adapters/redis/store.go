package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Store maintains the frequent flyer data read by Validator.
type Store struct {
	client redis.Cmdable
	keys   Keys
}

// NewStore creates a Store over the given client and key layout.
func NewStore(client redis.Cmdable, keys Keys) *Store {
	return &Store{client: client, keys: keys}
}

// Register adds frequent flyer numbers to the valid set.
func (s *Store) Register(ctx context.Context, numbers ...string) error {
	if len(numbers) == 0 {
		return nil
	}
	if err := s.client.SAdd(ctx, s.keys.Valid, toAny(numbers)...).Err(); err != nil {
		return fmt.Errorf("register frequent flyer numbers: %w", err)
	}
	return nil
}

// Suspend marks numbers as rejected by detailed lookups.
func (s *Store) Suspend(ctx context.Context, numbers ...string) error {
	if len(numbers) == 0 {
		return nil
	}
	if err := s.client.SAdd(ctx, s.keys.Suspended, toAny(numbers)...).Err(); err != nil {
		return fmt.Errorf("suspend frequent flyer numbers: %w", err)
	}
	return nil
}

// SetLicenseKey stores the validator service license key.
func (s *Store) SetLicenseKey(ctx context.Context, key string) error {
	if err := s.client.Set(ctx, s.keys.License, key, 0).Err(); err != nil {
		return fmt.Errorf("set license key: %w", err)
	}
	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
