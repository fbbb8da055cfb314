// Package retry provides a bounded exponential-backoff policy for outbound
// service calls. One policy covers every calendar, email and model call so
// the retryable failure set is defined in a single place.
package retry

import (
	"context"
	"errors"
	"net"
	"net/url"
	"syscall"
	"time"

	"google.golang.org/api/googleapi"
)

// Policy configures bounded retry with exponential backoff.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Factor      float64
}

// DefaultPolicy returns the policy applied to outbound service calls:
// 3 attempts, 500 ms base delay, doubling per attempt.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   500 * time.Millisecond,
		Factor:      2,
	}
}

// Do executes op, retrying transient failures until the policy's attempt
// budget is spent. Non-transient failures return immediately. If the context
// is cancelled during a backoff wait, ctx.Err() is returned.
func (p Policy) Do(ctx context.Context, op func() error) error {
	maxAttempts := p.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	factor := p.Factor
	if factor <= 0 {
		factor = 2
	}

	var lastErr error
	delay := p.BaseDelay
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := op()
		if err == nil {
			return nil
		}
		if !Retryable(err) {
			return err
		}
		lastErr = err
		if attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay = time.Duration(float64(delay) * factor)
	}

	return lastErr
}

// Retryable reports whether an error is a transient network, TLS or upstream
// service failure worth retrying. Context cancellation and everything
// non-network (parse errors, bad requests) are not retryable.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == 429 || apiErr.Code >= 500
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EPIPE)
}
