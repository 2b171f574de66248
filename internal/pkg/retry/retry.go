// Package retry wraps external fetches with bounded exponential backoff.
// Only transient failures (connection drops, timeouts) are retried;
// validation and not-found errors surface immediately.
package retry

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sony/gobreaker"
)

// Classifier reports whether an error is transient and worth retrying.
type Classifier func(error) bool

type Policy struct {
	maxAttempts int
	baseDelay   time.Duration
	classify    Classifier
}

// New builds a policy retrying transient failures up to maxAttempts total
// attempts with exponential backoff starting at baseDelay. A nil
// classifier falls back to IsTransient.
func New(maxAttempts int, baseDelay time.Duration, classify Classifier) *Policy {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if classify == nil {
		classify = IsTransient
	}
	return &Policy{
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
		classify:    classify,
	}
}

// Do runs fn, retrying per the policy. The operation name is only used
// for logging.
func (p *Policy) Do(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.baseDelay
	bo.MaxInterval = 5 * time.Second

	attempt := 0
	wrapped := func() error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if !p.classify(err) {
			return backoff.Permanent(err)
		}
		slog.Warn("transient failure, will retry",
			"operation", operation,
			"attempt", attempt,
			"max_attempts", p.maxAttempts,
			"error", err,
		)
		return err
	}

	return backoff.Retry(wrapped, backoff.WithContext(
		backoff.WithMaxRetries(bo, uint64(p.maxAttempts-1)), ctx))
}

// IsTransient is the default classifier. Connection-level failures and
// timeouts are transient; everything else (not-found sentinels,
// validation errors, open circuit breakers) is permanent.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	// A tripped breaker means the upstream is known-bad; retrying inside
	// the same request just burns the attempt budget.
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if pgconn.SafeToRetry(err) {
		return true
	}
	var pgErr *pgconn.ConnectError
	if errors.As(err, &pgErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}
