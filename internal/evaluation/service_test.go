package evaluation

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"cardapp/internal/evaluation/adapters/static"
	"cardapp/internal/evaluation/metrics"
	"cardapp/internal/evaluation/mocks"
	"cardapp/internal/evaluation/ports"
	dErrors "cardapp/pkg/domain-errors"
)

// failingValidator reports a lookup failure through Err, as store-backed
// validators do.
type failingValidator struct {
	*static.Validator
	err error
}

func (f *failingValidator) IsValid(string) bool { return false }

func (f *failingValidator) Err() error { return f.err }

type ServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	validator *mocks.MockFrequentFlyerNumberValidator
	metrics   *metrics.Metrics
	logs      *bytes.Buffer
	now       time.Time
	service   *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.validator = mocks.NewMockFrequentFlyerNumberValidator(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.logs = &bytes.Buffer{}
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var err error
	s.service, err = New(
		WithLogger(slog.New(slog.NewTextHandler(s.logs, nil))),
		WithMetrics(s.metrics),
		WithClock(func() time.Time { return s.now }),
	)
	s.Require().NoError(err)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) staticValidator(licenseKey string) *static.Validator {
	v, err := static.New("^[a-z]+$", licenseKey)
	s.Require().NoError(err)
	return v
}

func (s *ServiceSuite) TestNew() {
	s.Run("invalid rules are rejected", func() {
		rules := DefaultRules()
		rules.ExpiredLicenseKey = ""
		_, err := New(WithRules(rules))
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("nil logger is rejected", func() {
		_, err := New(WithLogger(nil))
		s.Require().Error(err)
		s.Contains(err.Error(), "logger is required")
	})

	s.Run("defaults construct a usable service", func() {
		svc, err := New()
		s.Require().NoError(err)
		result, err := svc.Evaluate(context.Background(), Application{GrossAnnualIncome: 150_000}, s.staticValidator("Ok"))
		s.Require().NoError(err)
		s.Equal(DecisionAutoAccepted, result.Decision)
	})
}

func (s *ServiceSuite) TestEvaluate_InputValidation() {
	ctx := context.Background()

	s.Run("nil validator returns bad request", func() {
		_, err := s.service.Evaluate(ctx, Application{}, nil)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("negative income returns validation error", func() {
		_, err := s.service.Evaluate(ctx, Application{GrossAnnualIncome: -1, Age: 30}, s.validator)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("negative age returns validation error", func() {
		_, err := s.service.Evaluate(ctx, Application{Age: -1}, s.validator)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestEvaluate_Result() {
	ctx := context.Background()

	s.Run("high income skips the number check", func() {
		result, err := s.service.Evaluate(ctx, Application{GrossAnnualIncome: 100_000}, s.validator)
		s.Require().NoError(err)
		s.Equal(DecisionAutoAccepted, result.Decision)
		s.Equal(ReasonHighIncome, result.Reason)
		s.False(result.NumberChecked)
		s.NotZero(result.ID)
		s.Equal(s.now, result.EvaluatedAt)
	})

	s.Run("low income with valid number is declined", func() {
		validator := s.staticValidator("Ok")
		result, err := s.service.Evaluate(ctx, Application{
			GrossAnnualIncome:   19_999,
			Age:                 42,
			FrequentFlyerNumber: "y",
		}, validator)
		s.Require().NoError(err)
		s.Equal(DecisionAutoDeclined, result.Decision)
		s.Equal(ReasonLowIncome, result.Reason)
		s.True(result.NumberChecked)
		s.Equal(ports.ValidationModeDetailed, result.ValidationMode)
		s.Equal(ports.ValidationModeDetailed, validator.ValidationMode())
	})

	s.Run("expired license refers without a number check", func() {
		result, err := s.service.Evaluate(ctx, Application{Age: 42}, s.staticValidator("EXPIRED"))
		s.Require().NoError(err)
		s.Equal(DecisionReferredToHuman, result.Decision)
		s.Equal(ReasonLicenseExpired, result.Reason)
		s.False(result.NumberChecked)
	})

	s.Run("each evaluation gets its own id", func() {
		first, err := s.service.Evaluate(ctx, Application{GrossAnnualIncome: 100_000}, s.validator)
		s.Require().NoError(err)
		second, err := s.service.Evaluate(ctx, Application{GrossAnnualIncome: 100_000}, s.validator)
		s.Require().NoError(err)
		s.NotEqual(first.ID, second.ID)
	})
}

func (s *ServiceSuite) TestEvaluate_ValidatorFailure() {
	cause := errors.New("connection refused")
	validator := &failingValidator{Validator: s.staticValidator("Ok"), err: cause}

	result, err := s.service.Evaluate(context.Background(), Application{Age: 30}, validator)

	s.Nil(result)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	s.ErrorIs(err, cause)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.ValidatorErrors))
	s.Contains(s.logs.String(), "frequent flyer validator failed")
}

func (s *ServiceSuite) TestEvaluate_Observability() {
	ctx := context.Background()

	_, err := s.service.Evaluate(ctx, Application{GrossAnnualIncome: 100_000}, s.validator)
	s.Require().NoError(err)
	_, err = s.service.Evaluate(ctx, Application{GrossAnnualIncome: 19_999, Age: 42, FrequentFlyerNumber: "y"}, s.staticValidator("Ok"))
	s.Require().NoError(err)
	_, err = s.service.Evaluate(ctx, Application{GrossAnnualIncome: 19_999, Age: 25, FrequentFlyerNumber: "Y1"}, s.staticValidator("Ok"))
	s.Require().NoError(err)

	s.Equal(float64(1), testutil.ToFloat64(s.metrics.Decisions.WithLabelValues("auto_accepted", "high_income")))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.Decisions.WithLabelValues("auto_declined", "low_income")))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.Decisions.WithLabelValues("referred_to_human", "invalid_frequent_flyer_number")))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.ValidatorLookups.WithLabelValues("detailed")))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.ValidatorLookups.WithLabelValues("basic")))
	latency := &dto.Metric{}
	s.Require().NoError(s.metrics.EvaluateLatency.Write(latency))
	s.Equal(uint64(3), latency.GetHistogram().GetSampleCount())
	s.Contains(s.logs.String(), "application evaluated")
	s.Contains(s.logs.String(), "decision=auto_declined")
}
