package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testConfig(maxRetries int) Config {
	return Config{
		MaxRetries: maxRetries,
		BaseDelay:  10 * time.Millisecond,
		MaxDelay:   100 * time.Millisecond,
		Timeout:    1 * time.Second,
	}
}

func TestWithRetrySuccess(t *testing.T) {
	callCount := 0
	result, err := WithRetry(context.Background(), testConfig(3), func(ctx context.Context) (string, error) {
		callCount++
		return "success", nil
	})
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if result != "success" {
		t.Errorf("Expected 'success', got %s", result)
	}
	if callCount != 1 {
		t.Errorf("Expected 1 call, got %d", callCount)
	}
}

func TestWithRetrySuccessAfterRetries(t *testing.T) {
	callCount := 0
	result, err := WithRetry(context.Background(), testConfig(3), func(ctx context.Context) (string, error) {
		callCount++
		if callCount < 3 {
			return "", errors.New("temporary failure")
		}
		return "success", nil
	})
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if result != "success" {
		t.Errorf("Expected 'success', got %s", result)
	}
	if callCount != 3 {
		t.Errorf("Expected 3 calls, got %d", callCount)
	}
}

func TestWithRetryFailureAfterMaxRetries(t *testing.T) {
	callCount := 0
	_, err := WithRetry(context.Background(), testConfig(2), func(ctx context.Context) (string, error) {
		callCount++
		return "", errors.New("persistent failure")
	})
	if err == nil {
		t.Error("Expected error, got nil")
	}
	if callCount != 3 { // MaxRetries + 1
		t.Errorf("Expected 3 calls, got %d", callCount)
	}
}

func TestWithRetryContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	callCount := 0
	_, err := WithRetry(ctx, testConfig(5), func(ctx context.Context) (string, error) {
		callCount++
		if callCount == 2 {
			cancel()
		}
		return "", errors.New("failure")
	})
	if err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if callCount > 3 {
		t.Errorf("Expected at most 3 calls due to cancellation, got %d", callCount)
	}
}

func TestWithRetryInfiniteStopsOnCancel(t *testing.T) {
	config := testConfig(0)
	config.InfiniteRetry = true

	ctx, cancel := context.WithCancel(context.Background())

	callCount := 0
	_, err := WithRetry(ctx, config, func(ctx context.Context) (string, error) {
		callCount++
		if callCount == 4 {
			cancel()
		}
		return "", errors.New("failure")
	})
	if err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if callCount < 4 {
		t.Errorf("Expected at least 4 calls before cancel, got %d", callCount)
	}
}

func TestCalculateBackoffDelay(t *testing.T) {
	baseDelay := 10 * time.Millisecond
	maxDelay := 100 * time.Millisecond

	tests := []struct {
		attempt     int
		minDelay    time.Duration
		maxExpected time.Duration
	}{
		{0, 5 * time.Millisecond, 15 * time.Millisecond},
		{1, 10 * time.Millisecond, 30 * time.Millisecond},
		{3, 40 * time.Millisecond, 100 * time.Millisecond},
		{35, 50 * time.Millisecond, 100 * time.Millisecond},
		{100, 50 * time.Millisecond, 100 * time.Millisecond},
	}

	for _, test := range tests {
		// Test multiple times due to randomness
		for i := 0; i < 10; i++ {
			result := calculateBackoffDelay(test.attempt, baseDelay, maxDelay)
			if result < test.minDelay || result > test.maxExpected {
				t.Errorf("calculateBackoffDelay(%d, %v, %v) = %v, expected between %v and %v",
					test.attempt, baseDelay, maxDelay, result, test.minDelay, test.maxExpected)
			}
		}
	}
}
