package store

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/calebmoore/pennywise/internal/model"
)

// RetryConfig configures retry behavior with exponential backoff.
type RetryConfig struct {
	MaxRetries     int
	InitialDelay   time.Duration
	MaxDelay       time.Duration
	BackoffFactor  float64
	JitterFraction float64 // 0.0 to 1.0 — fraction of delay to randomize
}

// DefaultBatchRetryConfig is tuned for transient Firestore commit errors.
var DefaultBatchRetryConfig = RetryConfig{
	MaxRetries:     3,
	InitialDelay:   500 * time.Millisecond,
	MaxDelay:       5 * time.Second,
	BackoffFactor:  2.0,
	JitterFraction: 0.2,
}

// RetryingStore wraps a Store and retries the atomic batch insert with
// exponential backoff. The inner store keeps its single-attempt
// contract; a batch still succeeds or fails as a unit, and because a
// failed commit persists nothing, replaying the same batch is safe.
// All other operations pass through unchanged.
type RetryingStore struct {
	Store
	cfg RetryConfig
}

// WithBatchRetry decorates s with retrying batch writes.
func WithBatchRetry(s Store, cfg RetryConfig) *RetryingStore {
	return &RetryingStore{Store: s, cfg: cfg}
}

func (r *RetryingStore) BatchCreateTransactions(ctx context.Context, txs []*model.Transaction) (int, error) {
	return withRetry(ctx, r.cfg, func(ctx context.Context) (int, error) {
		return r.Store.BatchCreateTransactions(ctx, txs)
	})
}

// withRetry executes fn with exponential backoff + jitter until it
// succeeds, the context is cancelled, or attempts are exhausted.
func withRetry[T any](ctx context.Context, cfg RetryConfig, fn func(ctx context.Context) (T, error)) (T, error) {
	var lastErr error
	var zero T

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt >= cfg.MaxRetries {
			break
		}

		delay := float64(cfg.InitialDelay) * math.Pow(cfg.BackoffFactor, float64(attempt))
		if delay > float64(cfg.MaxDelay) {
			delay = float64(cfg.MaxDelay)
		}
		if cfg.JitterFraction > 0 {
			jitter := delay * cfg.JitterFraction * (rand.Float64()*2 - 1) // +/- jitter
			delay += jitter
			if delay < 0 {
				delay = float64(cfg.InitialDelay)
			}
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(time.Duration(delay)):
		}
	}

	return zero, lastErr
}
