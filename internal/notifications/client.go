package notifications

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Client pushes run summaries to an ntfy topic. Disabled clients are
// no-ops, so callers never need to branch on configuration.
type Client struct {
	httpClient *http.Client
	baseURL    string
	topic      string
	enabled    bool
	priority   string
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
	// Circuit breaker state
	failures    int
	lastFailure time.Time
	circuitOpen bool
	mutex       sync.RWMutex
}

// RunSummary is the headline outcome of one pipeline run.
type RunSummary struct {
	Workbooks    int
	Appointments int
	Completed    int
	TotalService float64
	TotalTips    float64
	TotalPayment float64
	TotalProfit  float64
}

type NotificationError struct {
	Type       string
	StatusCode int
	Attempt    int
	Underlying error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification failed [%s] attempt %d: %v", e.Type, e.Attempt, e.Underlying)
}

func (e *NotificationError) IsRetryable() bool {
	switch e.Type {
	case "network", "server", "timeout", "rate_limit":
		return true
	case "auth", "client":
		return false
	default:
		return e.StatusCode >= 500
	}
}

func NewClient(baseURL, topic string, enabled bool, priority string, maxRetries int, baseDelay, maxDelay time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:    baseURL,
		topic:      topic,
		enabled:    enabled,
		priority:   priority,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		maxDelay:   maxDelay,
	}
}

// NotifyRunSummary formats and sends the run summary. Failures are
// logged, never fatal; a payroll run does not depend on the push.
func (c *Client) NotifyRunSummary(ctx context.Context, summary RunSummary) {
	if !c.enabled {
		log.Debug().Msg("Notifications disabled, skipping run summary")
		return
	}
	if err := c.send(ctx, formatRunSummary(summary)); err != nil {
		log.Warn().Err(err).Msg("Failed to send run summary notification")
	}
}

func formatRunSummary(s RunSummary) string {
	var sb strings.Builder
	sb.WriteString("Payroll run complete\n")
	sb.WriteString(fmt.Sprintf("Workbooks: %d\n", s.Workbooks))
	sb.WriteString(fmt.Sprintf("Appointments: %d (%d completed)\n", s.Appointments, s.Completed))
	sb.WriteString(fmt.Sprintf("Services: $%.2f  Tips: $%.2f\n", s.TotalService, s.TotalTips))
	sb.WriteString(fmt.Sprintf("Technician payments: $%.2f\n", s.TotalPayment))
	sb.WriteString(fmt.Sprintf("Company profit: $%.2f", s.TotalProfit))
	return sb.String()
}

func (c *Client) send(ctx context.Context, message string) error {
	if c.isCircuitOpen() {
		log.Warn().Msg("Circuit breaker open, skipping notification")
		return &NotificationError{
			Type:       "circuit_open",
			Underlying: fmt.Errorf("circuit breaker is open"),
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.calculateBackoff(attempt)
			log.Debug().
				Int("attempt", attempt).
				Dur("delay", delay).
				Msg("Retrying notification after delay")

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err := c.sendOnce(ctx, message, attempt+1)
		if err == nil {
			c.recordSuccess()
			return nil
		}
		lastErr = err

		if notifErr, ok := err.(*NotificationError); ok && !notifErr.IsRetryable() {
			log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Msg("Non-retryable error, giving up")
			c.recordFailure()
			return err
		}

		log.Warn().
			Err(err).
			Int("attempt", attempt+1).
			Int("max_retries", c.maxRetries).
			Msg("Notification attempt failed")
	}

	c.recordFailure()
	return &NotificationError{
		Type:       "max_retries_exceeded",
		Attempt:    c.maxRetries + 1,
		Underlying: lastErr,
	}
}

func (c *Client) sendOnce(ctx context.Context, message string, attempt int) error {
	url := fmt.Sprintf("%s/%s", c.baseURL, c.topic)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBufferString(message))
	if err != nil {
		return &NotificationError{Type: "client", Attempt: attempt, Underlying: err}
	}

	req.Header.Set("Content-Type", "text/plain")
	if c.priority != "" {
		req.Header.Set("Priority", c.priority)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NotificationError{Type: "network", Attempt: attempt, Underlying: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &NotificationError{
			Type:       categorizeHTTPError(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Attempt:    attempt,
			Underlying: fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status),
		}
	}

	log.Debug().
		Int("status_code", resp.StatusCode).
		Int("attempt", attempt).
		Msg("Notification sent successfully")

	return nil
}

func (c *Client) isCircuitOpen() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if !c.circuitOpen {
		return false
	}

	// Half-open after a cooldown; one success closes it again.
	if time.Since(c.lastFailure) > 30*time.Second {
		c.circuitOpen = false
		c.failures = 0
		log.Info().Msg("Circuit breaker moving to half-open state")
	}

	return c.circuitOpen
}

func (c *Client) recordSuccess() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.circuitOpen {
		c.circuitOpen = false
		log.Info().Msg("Circuit breaker closed after successful notification")
	}
	c.failures = 0
}

func (c *Client) recordFailure() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.failures++
	c.lastFailure = time.Now()

	// Open circuit breaker after 5 consecutive failures
	if c.failures >= 5 && !c.circuitOpen {
		c.circuitOpen = true
		log.Warn().
			Int("failures", c.failures).
			Msg("Circuit breaker opened due to consecutive failures")
	}
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	// Exponential backoff with jitter (±25%)
	backoff := float64(c.baseDelay) * math.Pow(2, float64(attempt-1))
	jitter := rand.Float64()*0.5 - 0.25
	backoff = backoff * (1 + jitter)

	if maxBackoff := float64(c.maxDelay); backoff > maxBackoff {
		backoff = maxBackoff
	}

	return time.Duration(backoff)
}

func categorizeHTTPError(statusCode int) string {
	switch {
	case statusCode == 401 || statusCode == 403:
		return "auth"
	case statusCode == 429:
		return "rate_limit"
	case statusCode >= 400 && statusCode < 500:
		return "client"
	case statusCode >= 500:
		return "server"
	default:
		return "unknown"
	}
}
