package evaluation

import (
	"cardapp/internal/evaluation/ports"
	dErrors "cardapp/pkg/domain-errors"
)

// Rules holds the thresholds used by the evaluation cascade.
type Rules struct {
	// Applications at or above this income are accepted without further checks.
	HighIncomeThreshold float64
	// Validated applications below this income are declined.
	LowIncomeThreshold float64
	// Applicants younger than this are always referred.
	ReferralAge int
	// Applicants at or above this age get a detailed frequent flyer lookup.
	DetailedLookupAge int
	// License key value the validator service reports once its license lapsed.
	ExpiredLicenseKey string
}

// DefaultRules returns the standard thresholds.
func DefaultRules() Rules {
	return Rules{
		HighIncomeThreshold: 100_000,
		LowIncomeThreshold:  20_000,
		ReferralAge:         20,
		DetailedLookupAge:   30,
		ExpiredLicenseKey:   "EXPIRED",
	}
}

// Validate checks that the thresholds are internally consistent.
func (r Rules) Validate() error {
	if r.HighIncomeThreshold < 0 || r.LowIncomeThreshold < 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "income thresholds must be non-negative")
	}
	if r.LowIncomeThreshold > r.HighIncomeThreshold {
		return dErrors.New(dErrors.CodeInvariantViolation, "low income threshold must not exceed high income threshold")
	}
	if r.ReferralAge < 0 || r.DetailedLookupAge < 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "age thresholds must be non-negative")
	}
	if r.ReferralAge > r.DetailedLookupAge {
		return dErrors.New(dErrors.CodeInvariantViolation, "referral age must not exceed detailed lookup age")
	}
	if r.ExpiredLicenseKey == "" {
		return dErrors.New(dErrors.CodeInvariantViolation, "expired license key marker is required")
	}
	return nil
}

// Evaluate applies the default rules to an application.
// The validator is borrowed for the duration of the call; its mode may be
// changed as a side effect.
func Evaluate(app Application, validator ports.FrequentFlyerNumberValidator) Decision {
	decision, _ := EvaluateWithRules(DefaultRules(), app, validator)
	return decision
}

// EvaluateWithRules runs the rule cascade and reports which rule decided.
// This is pure domain logic apart from the validator mode side effect.
// Rule order (first match wins):
//  1. High income - accepted without touching the validator
//  2. Young applicant - referred without touching the validator
//  3. Expired validator license - referred, number not checked
//  4. Mode selection by age, then the frequent flyer number check
//  5. Low income among validated applications - declined
func EvaluateWithRules(rules Rules, app Application, validator ports.FrequentFlyerNumberValidator) (Decision, Reason) {
	if app.GrossAnnualIncome >= rules.HighIncomeThreshold {
		return DecisionAutoAccepted, ReasonHighIncome
	}

	if app.Age < rules.ReferralAge {
		return DecisionReferredToHuman, ReasonTooYoung
	}

	if validator.ServiceInformation().License().LicenseKey() == rules.ExpiredLicenseKey {
		return DecisionReferredToHuman, ReasonLicenseExpired
	}

	validator.SetValidationMode(modeForAge(rules, app.Age))

	if !validator.IsValid(app.FrequentFlyerNumber) {
		return DecisionReferredToHuman, ReasonInvalidFrequentFlyerNumber
	}

	if app.GrossAnnualIncome < rules.LowIncomeThreshold {
		return DecisionAutoDeclined, ReasonLowIncome
	}

	return DecisionReferredToHuman, ReasonManualReview
}

func modeForAge(rules Rules, age int) ports.ValidationMode {
	if age >= rules.DetailedLookupAge {
		return ports.ValidationModeDetailed
	}
	return ports.ValidationModeBasic
}
