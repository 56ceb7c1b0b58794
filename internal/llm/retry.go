package llm

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/time/rate"
)

const (
	maxRetries  = 3
	baseBackoff = 600 * time.Millisecond
	maxBackoff  = 6 * time.Second

	// Outbound call budget shared by each client instance.
	outboundRPS   = 2
	outboundBurst = 4
)

// newOutboundLimiter paces calls to the external generation API so retries
// and concurrent sessions cannot stampede the provider.
func newOutboundLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Limit(outboundRPS), outboundBurst)
}

// withRetry runs fn up to maxRetries+1 times with exponential backoff and
// jitter, pacing each attempt through the limiter. The last error is
// returned; callers degrade to their deterministic fallback on any error.
func withRetry(ctx context.Context, limiter *rate.Limiter, fn func() (string, error)) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := limiter.Wait(ctx); err != nil {
			return "", err
		}

		out, err := fn()
		if err == nil {
			return out, nil
		}
		lastErr = err

		if attempt == maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(backoff(attempt)):
		}
	}
	return "", lastErr
}

func backoff(attempt int) time.Duration {
	d := baseBackoff * (1 << attempt)
	if d > maxBackoff {
		d = maxBackoff
	}
	jitter := time.Duration(rand.Int63n(int64(250 * time.Millisecond)))
	return d + jitter
}
