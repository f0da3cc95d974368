package retry

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"
	"time"
)

func fastConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialDelay:   5 * time.Millisecond,
		MaxDelay:       20 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

func TestWithBackoff_Success(t *testing.T) {
	attempts := 0
	err := WithBackoff(context.Background(), fastConfig(), func() error {
		attempts++
		return nil
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
}

func TestWithBackoff_SuccessAfterRetry(t *testing.T) {
	attempts := 0
	err := WithBackoff(context.Background(), fastConfig(), func() error {
		attempts++
		if attempts < 3 {
			return fmt.Errorf("dial: %w", syscall.ECONNREFUSED)
		}
		return nil
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestWithBackoff_MaxAttemptsExceeded(t *testing.T) {
	attempts := 0
	err := WithBackoff(context.Background(), fastConfig(), func() error {
		attempts++
		return syscall.ECONNRESET
	})

	if !errors.Is(err, syscall.ECONNRESET) {
		t.Errorf("expected wrapped ECONNRESET, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestWithBackoff_NonRetryableError(t *testing.T) {
	attempts := 0
	permanent := errors.New("password authentication failed")
	err := WithBackoff(context.Background(), fastConfig(), func() error {
		attempts++
		return permanent
	})

	if !errors.Is(err, permanent) {
		t.Errorf("expected permanent error, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
}

func TestWithBackoff_ShouldRetryOverride(t *testing.T) {
	cfg := DBConfig()
	cfg.InitialDelay = time.Millisecond
	cfg.MaxDelay = time.Millisecond
	cfg.MaxAttempts = 4

	attempts := 0
	err := WithBackoff(context.Background(), cfg, func() error {
		attempts++
		if attempts < 4 {
			return errors.New("lookup db: no such host")
		}
		return nil
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if attempts != 4 {
		t.Errorf("expected 4 attempts, got %d", attempts)
	}
}

func TestWithBackoff_ContextCanceled(t *testing.T) {
	cfg := fastConfig()
	cfg.InitialDelay = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := WithBackoff(ctx, cfg, func() error {
		return syscall.ETIMEDOUT
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"deadline", context.DeadlineExceeded, false},
		{"connection refused", syscall.ECONNREFUSED, true},
		{"wrapped reset", fmt.Errorf("read: %w", syscall.ECONNRESET), true},
		{"unreachable", syscall.ENETUNREACH, true},
		{"generic", errors.New("syntax error at or near"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestAddJitter(t *testing.T) {
	base := 100 * time.Millisecond
	for i := 0; i < 50; i++ {
		got := addJitter(base, 0.5)
		if got < base || got > base+base/2 {
			t.Fatalf("jitter out of range: %v", got)
		}
	}
	if addJitter(base, 0) != base {
		t.Error("zero fraction must not change the delay")
	}
}
