package util

import (
	"context"
	"errors"
	"testing"
)

func TestRetry(t *testing.T) {
	t.Parallel()

	t.Run("succeeds first attempt", func(t *testing.T) {
		calls := 0
		got, err := Retry(3, func() (int, error) {
			calls++
			return 42, nil
		})
		if err != nil {
			t.Fatalf("Retry() error = %v", err)
		}
		if got != 42 || calls != 1 {
			t.Fatalf("Retry() = %d after %d calls, want 42 after 1", got, calls)
		}
	})

	t.Run("succeeds after failures", func(t *testing.T) {
		calls := 0
		got, err := Retry(3, func() (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("transient")
			}
			return "ok", nil
		})
		if err != nil {
			t.Fatalf("Retry() error = %v", err)
		}
		if got != "ok" || calls != 3 {
			t.Fatalf("Retry() = %q after %d calls, want %q after 3", got, calls, "ok")
		}
	})

	t.Run("returns last error when exhausted", func(t *testing.T) {
		wantErr := errors.New("persistent")
		_, err := Retry(2, func() (int, error) {
			return 0, wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Fatalf("Retry() error = %v, want %v", err, wantErr)
		}
	})
}

func TestRetryWithContext(t *testing.T) {
	t.Parallel()

	t.Run("canceled context stops retries", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		calls := 0
		_, err := RetryWithContext(ctx, 5, func(ctx context.Context) (int, error) {
			calls++
			return 0, errors.New("should not retry")
		})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("RetryWithContext() error = %v, want context.Canceled", err)
		}
		if calls != 0 {
			t.Fatalf("fn called %d times, want 0", calls)
		}
	})

	t.Run("context error from fn not retried", func(t *testing.T) {
		calls := 0
		_, err := RetryWithContext(context.Background(), 5, func(ctx context.Context) (int, error) {
			calls++
			return 0, context.DeadlineExceeded
		})
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("RetryWithContext() error = %v, want context.DeadlineExceeded", err)
		}
		if calls != 1 {
			t.Fatalf("fn called %d times, want 1", calls)
		}
	})
}
