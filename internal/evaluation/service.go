package evaluation

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"cardapp/internal/evaluation/metrics"
	"cardapp/internal/evaluation/ports"
	dErrors "cardapp/pkg/domain-errors"
)

const tracerName = "cardapp/internal/evaluation"

// errReporter is implemented by validators backed by remote stores. Their
// lookups cannot fail through the validator interface, so failures are
// collected and reported after the evaluation.
type errReporter interface {
	Err() error
}

// Service evaluates applications with logging, metrics and tracing around the
// rule cascade.
type Service struct {
	rules   Rules
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	now     func() time.Time
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithRules(rules Rules) Option {
	return func(s *Service) {
		s.rules = rules
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// WithClock overrides the time source used for EvaluatedAt and latency.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New constructs a Service. Rules default to DefaultRules.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		rules:  DefaultRules(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "logger is required")
	}
	if s.tracer == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "tracer is required")
	}
	if s.now == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "clock is required")
	}
	if err := s.rules.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Evaluate runs the rule cascade for one application using the supplied
// validator. The validator must not be shared with concurrent evaluations.
// Validator panics are not recovered.
func (s *Service) Evaluate(ctx context.Context, app Application, validator ports.FrequentFlyerNumberValidator) (*Result, error) {
	if validator == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "validator is required")
	}
	if err := validateApplication(app); err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "evaluation.Evaluate",
		trace.WithAttributes(attribute.Int("application.age", app.Age)))
	defer span.End()

	start := s.now()
	decision, reason := EvaluateWithRules(s.rules, app, validator)
	s.metrics.ObserveEvaluateLatency(s.now().Sub(start))

	result := &Result{
		ID:          uuid.New(),
		Decision:    decision,
		Reason:      reason,
		EvaluatedAt: start,
	}
	if numberChecked(reason) {
		result.NumberChecked = true
		result.ValidationMode = validator.ValidationMode()
		s.metrics.IncrementValidatorLookup(result.ValidationMode.String())
	}

	if r, ok := validator.(errReporter); ok {
		if err := r.Err(); err != nil {
			s.metrics.IncrementValidatorError()
			span.RecordError(err)
			span.SetStatus(codes.Error, "validator failed")
			s.logger.ErrorContext(ctx, "frequent flyer validator failed",
				"evaluation_id", result.ID,
				"error", err,
			)
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "frequent flyer validator failed")
		}
	}

	span.SetAttributes(
		attribute.String("evaluation.decision", decision.String()),
		attribute.String("evaluation.reason", string(reason)),
	)
	s.metrics.IncrementDecision(decision.String(), string(reason))

	s.logger.InfoContext(ctx, "application evaluated",
		"evaluation_id", result.ID,
		"decision", decision,
		"reason", reason,
		"number_checked", result.NumberChecked,
		"validation_mode", result.ValidationMode.String(),
	)

	return result, nil
}

func validateApplication(app Application) error {
	if app.GrossAnnualIncome < 0 {
		return dErrors.New(dErrors.CodeValidation, "gross annual income must be non-negative")
	}
	if app.Age < 0 {
		return dErrors.New(dErrors.CodeValidation, "age must be non-negative")
	}
	return nil
}

// numberChecked reports whether the cascade reached the frequent flyer lookup.
func numberChecked(reason Reason) bool {
	switch reason {
	case ReasonInvalidFrequentFlyerNumber, ReasonLowIncome, ReasonManualReview:
		return true
	}
	return false
}
