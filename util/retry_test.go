package util

import (
	"errors"
	"testing"
	"time"
)

func TestRetry(t *testing.T) {
	t.Run("stops on first success", func(t *testing.T) {
		calls := 0
		err := Retry(func() error {
			calls++
			if calls < 2 {
				return errors.New("boom")
			}
			return nil
		}, 5, time.Millisecond)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 2 {
			t.Errorf("calls = %d, want 2", calls)
		}
	})

	t.Run("returns last error after all attempts", func(t *testing.T) {
		calls := 0
		err := Retry(func() error {
			calls++
			return errors.New("boom")
		}, 3, time.Millisecond)
		if err == nil {
			t.Fatal("expected error")
		}
		if calls != 3 {
			t.Errorf("calls = %d, want 3", calls)
		}
	})

	t.Run("single attempt when times is zero", func(t *testing.T) {
		calls := 0
		_ = Retry(func() error {
			calls++
			return errors.New("boom")
		}, 0, time.Millisecond)
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})
}
