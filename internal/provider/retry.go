package provider

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// RetryConfig configures retry behavior with exponential backoff.
type RetryConfig struct {
	MaxRetries     int
	InitialDelay   time.Duration
	MaxDelay       time.Duration
	BackoffFactor  float64
	JitterFraction float64 // fraction of the delay to randomize, 0.0 to 1.0
}

// DefaultRetryConfig is tuned for the hosted data service, which can take
// a few seconds to wake from idle.
var DefaultRetryConfig = RetryConfig{
	MaxRetries:     3,
	InitialDelay:   500 * time.Millisecond,
	MaxDelay:       8 * time.Second,
	BackoffFactor:  2.0,
	JitterFraction: 0.3,
}

// UpstreamError is a structured error for data-service call failures.
type UpstreamError struct {
	StatusCode int
	Endpoint   string
	Retryable  bool
	Cause      error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upstream %s: %v", e.Endpoint, e.Cause)
	}
	return fmt.Sprintf("upstream %s: status %d", e.Endpoint, e.StatusCode)
}

func (e *UpstreamError) Unwrap() error { return e.Cause }

// withRetry executes fn with exponential backoff + jitter. It stops
// retrying when the error is a non-retryable UpstreamError (4xx), the
// context is cancelled, or attempts are exhausted.
func withRetry[T any](ctx context.Context, cfg RetryConfig, fn func(ctx context.Context) (T, error)) (T, error) {
	var lastErr error
	var zero T

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		var ue *UpstreamError
		if errors.As(err, &ue) && !ue.Retryable {
			return zero, err
		}
		if attempt >= cfg.MaxRetries {
			break
		}

		delay := time.Duration(float64(cfg.InitialDelay) * math.Pow(cfg.BackoffFactor, float64(attempt)))
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
		if cfg.JitterFraction > 0 {
			jitter := time.Duration(rand.Float64() * cfg.JitterFraction * float64(delay))
			delay += jitter
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}
	return zero, lastErr
}
