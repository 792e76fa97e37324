package evaluation

import (
	"time"

	"github.com/google/uuid"

	"cardapp/internal/evaluation/ports"
)

// Application is a credit card application as submitted by the applicant.
// An empty FrequentFlyerNumber means none was supplied.
type Application struct {
	GrossAnnualIncome   float64
	Age                 int
	FrequentFlyerNumber string
}

// Decision enumerates the possible evaluation outcomes.
type Decision string

const (
	DecisionAutoAccepted    Decision = "auto_accepted"
	DecisionAutoDeclined    Decision = "auto_declined"
	DecisionReferredToHuman Decision = "referred_to_human"
)

func (d Decision) String() string {
	return string(d)
}

// IsValid reports whether d is one of the known decisions.
func (d Decision) IsValid() bool {
	switch d {
	case DecisionAutoAccepted, DecisionAutoDeclined, DecisionReferredToHuman:
		return true
	}
	return false
}

// Reason names the rule that produced a decision.
type Reason string

const (
	ReasonHighIncome                 Reason = "high_income"
	ReasonTooYoung                   Reason = "too_young"
	ReasonLicenseExpired             Reason = "license_expired"
	ReasonInvalidFrequentFlyerNumber Reason = "invalid_frequent_flyer_number"
	ReasonLowIncome                  Reason = "low_income"
	ReasonManualReview               Reason = "manual_review"
)

// ValidationMode is re-exported so callers only need this package.
type ValidationMode = ports.ValidationMode

const (
	ValidationModeBasic    = ports.ValidationModeBasic
	ValidationModeDetailed = ports.ValidationModeDetailed
)

// Result is the outcome of a Service evaluation.
type Result struct {
	ID       uuid.UUID
	Decision Decision
	Reason   Reason
	// NumberChecked is set when the cascade reached the frequent flyer lookup;
	// ValidationMode is only meaningful in that case.
	NumberChecked  bool
	ValidationMode ValidationMode
	EvaluatedAt    time.Time
}
