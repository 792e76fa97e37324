package static

import (
	"context"
	"regexp"

	"cardapp/internal/evaluation/ports"
	dErrors "cardapp/pkg/domain-errors"
)

// Validator is an in-process frequent flyer number validator. A number is
// valid when it matches the configured pattern. The mode has no effect on the
// check; it is recorded so callers can observe it.
type Validator struct {
	pattern *regexp.Regexp
	license license
	mode    ports.ValidationMode
}

type license string

func (l license) LicenseKey() string { return string(l) }

type serviceInformation struct {
	license license
}

func (s serviceInformation) License() ports.LicenseData { return s.license }

// New builds a Validator that accepts numbers matching pattern.
func New(pattern, licenseKey string) (*Validator, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvariantViolation, "invalid frequent flyer number pattern")
	}
	return &Validator{pattern: re, license: license(licenseKey)}, nil
}

// Factory returns a ValidatorFactory producing a fresh Validator per evaluation.
func Factory(pattern, licenseKey string) (ports.ValidatorFactory, error) {
	if _, err := New(pattern, licenseKey); err != nil {
		return nil, err
	}
	return func(ctx context.Context) (ports.FrequentFlyerNumberValidator, error) {
		return New(pattern, licenseKey)
	}, nil
}

func (v *Validator) IsValid(frequentFlyerNumber string) bool {
	return v.pattern.MatchString(frequentFlyerNumber)
}

func (v *Validator) ValidationMode() ports.ValidationMode {
	return v.mode
}

func (v *Validator) SetValidationMode(mode ports.ValidationMode) {
	v.mode = mode
}

func (v *Validator) ServiceInformation() ports.ServiceInformation {
	return serviceInformation{license: v.license}
}
