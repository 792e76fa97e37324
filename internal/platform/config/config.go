package config

import (
	"os"
	"strconv"
	"time"

	dErrors "cardapp/pkg/domain-errors"
)

// Config is the full process configuration.
type Config struct {
	Rules     RulesConfig
	Validator ValidatorConfig
	Redis     RedisConfig
	Log       LogConfig
}

// RulesConfig holds the evaluation thresholds.
type RulesConfig struct {
	HighIncomeThreshold float64
	LowIncomeThreshold  float64
	ReferralAge         int
	DetailedLookupAge   int
	ExpiredLicenseKey   string
}

// ValidatorConfig configures the in-process validator used when Redis is not configured.
type ValidatorConfig struct {
	FrequentFlyerPattern string
	LicenseKey           string
}

// RedisConfig configures the Redis-backed validator. Empty URL disables it.
type RedisConfig struct {
	URL          string
	KeyPrefix    string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text, json
}

// FromEnv builds a Config from environment variables so callers stay lean.
// Unset variables fall back to defaults; malformed values are errors.
func FromEnv() (Config, error) {
	var p parser

	cfg := Config{
		Rules: RulesConfig{
			HighIncomeThreshold: p.number("CARDAPP_HIGH_INCOME", 100_000),
			LowIncomeThreshold:  p.number("CARDAPP_LOW_INCOME", 20_000),
			ReferralAge:         p.integer("CARDAPP_REFERRAL_AGE", 20),
			DetailedLookupAge:   p.integer("CARDAPP_DETAILED_AGE", 30),
			ExpiredLicenseKey:   p.str("CARDAPP_EXPIRED_LICENSE_KEY", "EXPIRED"),
		},
		Validator: ValidatorConfig{
			FrequentFlyerPattern: p.str("CARDAPP_FFN_PATTERN", `^[A-Za-z0-9]+$`),
			LicenseKey:           p.str("CARDAPP_LICENSE_KEY", "Ok"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			KeyPrefix:    p.str("REDIS_KEY_PREFIX", "cardapp"),
			PoolSize:     p.integer("REDIS_POOL_SIZE", 10),
			MinIdleConns: p.integer("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  p.duration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  p.duration("REDIS_READ_TIMEOUT", 500*time.Millisecond),
			WriteTimeout: p.duration("REDIS_WRITE_TIMEOUT", 500*time.Millisecond),
		},
		Log: LogConfig{
			Level:  p.str("LOG_LEVEL", "info"),
			Format: p.str("LOG_FORMAT", "text"),
		},
	}
	if p.err != nil {
		return Config{}, p.err
	}
	return cfg, nil
}

// parser reads typed env vars and keeps the first parse failure.
type parser struct {
	err error
}

func (p *parser) str(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (p *parser) integer(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(err, key+" must be an integer")
		return def
	}
	return n
}

func (p *parser) number(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(err, key+" must be a number")
		return def
	}
	return f
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(err, key+" must be a duration")
		return def
	}
	return d
}

func (p *parser) fail(err error, msg string) {
	if p.err == nil {
		p.err = dErrors.Wrap(err, dErrors.CodeValidation, msg)
	}
}
