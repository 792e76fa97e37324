package app

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"cardapp/internal/evaluation"
	redisvalidator "cardapp/internal/evaluation/adapters/redis"
	"cardapp/internal/evaluation/adapters/static"
	"cardapp/internal/evaluation/metrics"
	"cardapp/internal/evaluation/ports"
	"cardapp/internal/platform/config"
	"cardapp/internal/platform/redis"
	dErrors "cardapp/pkg/domain-errors"
)

// App wires configuration to an evaluation service and a validator source.
type App struct {
	service    *evaluation.Service
	validators ports.ValidatorFactory
	redis      *redis.Client
}

// New builds an App. Metrics are registered with reg; a nil reg uses the
// default Prometheus registry. When cfg.Redis.URL is set, frequent flyer
// numbers are checked against Redis, otherwise against the configured pattern.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger, reg prometheus.Registerer) (*App, error) {
	if logger == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "logger is required")
	}

	svc, err := evaluation.New(
		evaluation.WithLogger(logger),
		evaluation.WithMetrics(metrics.New(reg)),
		evaluation.WithRules(rulesFromConfig(cfg.Rules)),
	)
	if err != nil {
		return nil, err
	}

	a := &App{service: svc}

	client, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to connect to redis")
	}
	if client != nil {
		a.redis = client
		a.validators = redisvalidator.Factory(client, redisvalidator.KeysWithPrefix(cfg.Redis.KeyPrefix))
		logger.InfoContext(ctx, "using redis frequent flyer validator", "key_prefix", cfg.Redis.KeyPrefix)
		return a, nil
	}

	a.validators, err = static.Factory(cfg.Validator.FrequentFlyerPattern, cfg.Validator.LicenseKey)
	if err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "using static frequent flyer validator", "pattern", cfg.Validator.FrequentFlyerPattern)
	return a, nil
}

// Evaluate evaluates one application with a validator of its own.
func (a *App) Evaluate(ctx context.Context, application evaluation.Application) (*evaluation.Result, error) {
	validator, err := a.validators(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create frequent flyer validator")
	}
	return a.service.Evaluate(ctx, application, validator)
}

// Close releases the Redis connection, if any.
func (a *App) Close() error {
	if a.redis == nil {
		return nil
	}
	return a.redis.Close()
}

func rulesFromConfig(cfg config.RulesConfig) evaluation.Rules {
	return evaluation.Rules{
		HighIncomeThreshold: cfg.HighIncomeThreshold,
		LowIncomeThreshold:  cfg.LowIncomeThreshold,
		ReferralAge:         cfg.ReferralAge,
		DetailedLookupAge:   cfg.DetailedLookupAge,
		ExpiredLicenseKey:   cfg.ExpiredLicenseKey,
	}
}
