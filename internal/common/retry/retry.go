package retry

import (
	"context"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/rommsen/BudgetBuddy-sub000/internal/config"
)

const DefaultMaxRetries uint64 = 3

type Retryer interface {
	Retry(ctx context.Context, operation func() error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	ebCfg *config.ExponentialBackOffConfig
}

// NewExponentialBackOff builds a Retryer with exponential backoff. Zeroed
// config fields fall back to the backoff library defaults.
func NewExponentialBackOff(ebCfg *config.ExponentialBackOffConfig) Retryer {
	if ebCfg.MaxBackoffTime <= 0 {
		ebCfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}

	if ebCfg.BackoffMultiplier <= 0 {
		ebCfg.BackoffMultiplier = backoff.DefaultMultiplier
	}

	if ebCfg.MaxRetries <= 0 {
		ebCfg.MaxRetries = DefaultMaxRetries
	}

	return &exponentialBackoff{ebCfg: ebCfg}
}

// Retry runs operation until it succeeds, the retry budget is exhausted, or
// the context is cancelled. A fresh ExponentialBackOff instance is created
// per call so concurrent retries do not share state.
func (r *exponentialBackoff) Retry(ctx context.Context, operation func() error) error {
	eb := backoff.NewExponentialBackOff()
	eb.MaxElapsedTime = r.ebCfg.MaxBackoffTime
	eb.Multiplier = r.ebCfg.BackoffMultiplier

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(eb, r.ebCfg.MaxRetries), ctx))
	if err != nil {
		zap.L().Debug("retry budget exhausted", zap.Error(err))
		return err
	}

	return nil
}

// StopRetryWithErr marks err as permanent so the retry loop stops
// immediately. Call it from inside the operation func.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}
