package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"cardapp/internal/evaluation/ports"
	"cardapp/pkg/platform/sentinel"
)

// Keys names the Redis keys holding frequent flyer data.
type Keys struct {
	// Set of registered frequent flyer numbers.
	Valid string
	// Set of numbers rejected by detailed lookups.
	Suspended string
	// String holding the validator service license key.
	License string
}

// DefaultKeys returns the standard key layout.
func DefaultKeys() Keys {
	return KeysWithPrefix("cardapp")
}

// KeysWithPrefix returns the standard key layout under prefix.
func KeysWithPrefix(prefix string) Keys {
	return Keys{
		Valid:     prefix + ":ffn:valid",
		Suspended: prefix + ":ffn:suspended",
		License:   prefix + ":ffn:license",
	}
}

// Validator checks frequent flyer numbers against Redis sets.
//
// Basic mode only requires membership of the valid set. Detailed mode also
// requires the number to be absent from the suspended set. Lookups cannot
// return errors through the validator interface: the first failure is kept,
// further lookups report invalid, and Err returns the failure.
type Validator struct {
	ctx    context.Context
	client redis.Cmdable
	keys   Keys
	mode   ports.ValidationMode

	licenseKey    string
	licenseLoaded bool
	err           error
}

// New builds a Validator bound to ctx for the duration of one evaluation.
func New(ctx context.Context, client redis.Cmdable, keys Keys) *Validator {
	return &Validator{ctx: ctx, client: client, keys: keys}
}

// Factory returns a ValidatorFactory producing a fresh Validator per evaluation.
func Factory(client redis.Cmdable, keys Keys) ports.ValidatorFactory {
	return func(ctx context.Context) (ports.FrequentFlyerNumberValidator, error) {
		return New(ctx, client, keys), nil
	}
}

func (v *Validator) IsValid(frequentFlyerNumber string) bool {
	if v.err != nil || frequentFlyerNumber == "" {
		return false
	}

	registered, err := v.client.SIsMember(v.ctx, v.keys.Valid, frequentFlyerNumber).Result()
	if err != nil {
		v.fail(fmt.Errorf("check %s: %w", v.keys.Valid, err))
		return false
	}
	if !registered || v.mode != ports.ValidationModeDetailed {
		return registered
	}

	suspended, err := v.client.SIsMember(v.ctx, v.keys.Suspended, frequentFlyerNumber).Result()
	if err != nil {
		v.fail(fmt.Errorf("check %s: %w", v.keys.Suspended, err))
		return false
	}
	return !suspended
}

func (v *Validator) ValidationMode() ports.ValidationMode {
	return v.mode
}

func (v *Validator) SetValidationMode(mode ports.ValidationMode) {
	v.mode = mode
}

func (v *Validator) ServiceInformation() ports.ServiceInformation {
	return serviceInformation{v: v}
}

// Err returns the first lookup failure, if any.
func (v *Validator) Err() error {
	return v.err
}

func (v *Validator) fail(err error) {
	if v.err == nil {
		v.err = err
	}
}

// loadLicenseKey reads the license key once per validator.
func (v *Validator) loadLicenseKey() string {
	if v.licenseLoaded || v.err != nil {
		return v.licenseKey
	}
	key, err := v.client.Get(v.ctx, v.keys.License).Result()
	switch {
	case errors.Is(err, redis.Nil):
		v.fail(fmt.Errorf("license key %s: %w", v.keys.License, sentinel.ErrNotFound))
	case err != nil:
		v.fail(fmt.Errorf("license key %s: %w: %w", v.keys.License, sentinel.ErrUnavailable, err))
	default:
		v.licenseKey = key
		v.licenseLoaded = true
	}
	return v.licenseKey
}

type serviceInformation struct {
	v *Validator
}

func (s serviceInformation) License() ports.LicenseData {
	return licenseData(s)
}

type licenseData struct {
	v *Validator
}

func (l licenseData) LicenseKey() string {
	return l.v.loadLicenseKey()
}
