package config

import (
	"time"

	"grooming_payroll/internal/retry"
)

// ResilienceConfig groups retry policies for the remote acquisition
// calls that run before the parsing pipeline starts. The pipeline
// itself never retries; transient I/O is the acquisition layer's
// concern.
type ResilienceConfig struct {
	DriveFetch retry.Config
	SheetRead  retry.Config
}

var DefaultResilienceConfig = ResilienceConfig{
	DriveFetch: retry.Config{
		MaxRetries: 3,
		BaseDelay:  2 * time.Second,
		MaxDelay:   30 * time.Second,
		Timeout:    60 * time.Second,
	},
	SheetRead: retry.Config{
		MaxRetries: 3,
		BaseDelay:  2 * time.Second,
		MaxDelay:   30 * time.Second,
		Timeout:    15 * time.Second,
	},
}
