package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"veritas-core/internal/logging"
)

// Retrier re-runs flaky store calls (the Redis usage counter, mostly) with
// exponential backoff and jitter, all under one timeout.
type Retrier struct {
	maxRetries int
	baseDelay  time.Duration
	timeout    time.Duration
	log        logging.Logger
}

func NewRetrier(log logging.Logger) *Retrier {
	return &Retrier{
		maxRetries: 2, // Total 3 attempts
		baseDelay:  100 * time.Millisecond,
		timeout:    2 * time.Second,
		log:        log,
	}
}

func (r *Retrier) Do(ctx context.Context, label string, op func(context.Context) error) error {
	resCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		err := op(resCtx)
		if err == nil {
			return nil
		}
		lastErr = err

		if !r.isRetryable(err) || attempt == r.maxRetries {
			break
		}

		wait := r.calculateBackoff(attempt)
		r.log.Warn("retrying store call", "op", label, "attempt", attempt+1, "wait", wait, "error", err)
		select {
		case <-time.After(wait):
			continue
		case <-resCtx.Done():
			return resCtx.Err()
		}
	}
	return fmt.Errorf("%s: %w", label, lastErr)
}

func (r *Retrier) isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "loading") ||
		strings.Contains(msg, "eof")
}

func (r *Retrier) calculateBackoff(attempt int) time.Duration {
	backoff := float64(r.baseDelay) * float64(int(1)<<attempt)
	jitter := (rand.Float64() * 0.2) * backoff // 20% jitter
	return time.Duration(backoff + jitter)
}
