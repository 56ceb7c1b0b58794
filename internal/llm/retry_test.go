package llm

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/time/rate"
)

func TestWithRetryReturnsFirstSuccess(t *testing.T) {
	limiter := rate.NewLimiter(rate.Inf, 1)
	calls := 0
	out, err := withRetry(context.Background(), limiter, func() (string, error) {
		calls++
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("withRetry error: %v", err)
	}
	if out != "ok" || calls != 1 {
		t.Errorf("out = %q after %d calls, want %q after 1", out, calls, "ok")
	}
}

func TestWithRetryRecoversFromTransientFailure(t *testing.T) {
	limiter := rate.NewLimiter(rate.Inf, 1)
	calls := 0
	out, err := withRetry(context.Background(), limiter, func() (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("withRetry error: %v", err)
	}
	if out != "ok" || calls != 2 {
		t.Errorf("out = %q after %d calls, want %q after 2", out, calls, "ok")
	}
}

func TestWithRetryHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	limiter := rate.NewLimiter(rate.Inf, 1)
	_, err := withRetry(ctx, limiter, func() (string, error) {
		t.Fatal("fn should not run with a canceled context")
		return "", nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
