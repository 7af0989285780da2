package config

import (
	"os"
	"strings"
)

// Pipeline holds the business constants consumed by the parsing and
// payroll stages. Values come from defaults and may be overridden
// through environment variables.
type Pipeline struct {
	// WeekSheetPrefix selects which worksheet names are processed.
	WeekSheetPrefix string
	// ValidPaymentMethods is matched exactly (after trimming) against
	// the payment-method cell; anything else records no method.
	ValidPaymentMethods []string
	// InvalidClients is the denylist of placeholder client names,
	// matched case-insensitively after trimming.
	InvalidClients []string
}

// DefaultPipeline returns the stock configuration used by the weekly
// grooming sheets.
func DefaultPipeline() Pipeline {
	return Pipeline{
		WeekSheetPrefix: "WEEK",
		ValidPaymentMethods: []string{
			"Cash", "Zelle", "Venmo", "Credit Card", "Check", "CashApp", "Square",
		},
		InvalidClients: []string{
			"N/A", "TEST", "EXAMPLE", "CLIENT NAME", "---",
		},
	}
}

// PipelineFromEnv starts from the defaults and applies the
// PAYMENT_METHODS and INVALID_CLIENTS overrides (comma-separated).
func PipelineFromEnv() Pipeline {
	cfg := DefaultPipeline()
	if v := os.Getenv("PAYMENT_METHODS"); v != "" {
		cfg.ValidPaymentMethods = splitList(v)
	}
	if v := os.Getenv("INVALID_CLIENTS"); v != "" {
		cfg.InvalidClients = splitList(v)
	}
	if v := os.Getenv("WEEK_SHEET_PREFIX"); v != "" {
		cfg.WeekSheetPrefix = v
	}
	return cfg
}

// IsValidPaymentMethod reports whether the trimmed label is in the
// configured valid set.
func (p Pipeline) IsValidPaymentMethod(label string) bool {
	label = strings.TrimSpace(label)
	for _, m := range p.ValidPaymentMethods {
		if label == m {
			return true
		}
	}
	return false
}

// IsInvalidClient reports whether the client name is denylisted. The
// comparison trims and upper-cases both sides.
func (p Pipeline) IsInvalidClient(name string) bool {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return false
	}
	for _, c := range p.InvalidClients {
		if name == strings.ToUpper(strings.TrimSpace(c)) {
			return true
		}
	}
	return false
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
