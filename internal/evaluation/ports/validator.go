package ports

import "context"

// ValidationMode selects how thoroughly a validator checks a number.
// The zero value is ValidationModeBasic.
type ValidationMode int

const (
	ValidationModeBasic ValidationMode = iota
	ValidationModeDetailed
)

func (m ValidationMode) String() string {
	switch m {
	case ValidationModeBasic:
		return "basic"
	case ValidationModeDetailed:
		return "detailed"
	default:
		return "unknown"
	}
}

// FrequentFlyerNumberValidator is the external capability the evaluator
// consults. Implementations are owned by the caller and are not safe to share
// between concurrent evaluations because the mode is mutable.
type FrequentFlyerNumberValidator interface {
	// IsValid checks a frequent flyer number. The number may be empty.
	IsValid(frequentFlyerNumber string) bool

	ValidationMode() ValidationMode
	SetValidationMode(mode ValidationMode)

	// ServiceInformation exposes read-only metadata about the validator service.
	ServiceInformation() ServiceInformation
}

// ServiceInformation describes the validator service.
type ServiceInformation interface {
	License() LicenseData
}

// LicenseData holds the validator service license.
type LicenseData interface {
	LicenseKey() string
}

// ValidatorFactory produces a validator for a single evaluation.
type ValidatorFactory func(ctx context.Context) (FrequentFlyerNumberValidator, error)
