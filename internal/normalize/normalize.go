package normalize

import (
	"errors"

	"github.com/rs/zerolog/log"

	"grooming_payroll/internal/config"
	"grooming_payroll/internal/ledger"
	"grooming_payroll/internal/parse"
)

// ErrNoData signals that no valid appointment survived normalization
// across every processed sheet. It is an explicit outcome, not a
// failure of the run.
var ErrNoData = errors.New("no valid appointment data found")

// Build assembles the canonical appointment ledger from raw entries.
// Rows without a parseable calendar date are dropped, and the client
// denylist is re-applied across the combined set as a safety net for
// names that only match after trimming and case folding.
func Build(cfg config.Pipeline, entries []parse.RawEntry) ([]ledger.Appointment, error) {
	appointments := make([]ledger.Appointment, 0, len(entries))
	droppedDates := 0
	droppedClients := 0

	for _, entry := range entries {
		date, ok := entry.Date.AsDate()
		if !ok {
			droppedDates++
			continue
		}
		if cfg.IsInvalidClient(entry.Client) {
			droppedClients++
			continue
		}

		appointments = append(appointments, ledger.Appointment{
			Week:       entry.Week,
			Day:        entry.Day,
			Technician: entry.Technician.Name,
			Category:   entry.Technician.Category,
			Date:       date,
			Client:     entry.Client,
			Service:    entry.Service,
			Tip:        entry.Tip,
			Pets:       entry.Pets,
			Method:     entry.Method,
			PaymentID:  entry.PaymentID,
			Verified:   entry.Verified,
			Completed:  entry.Completed,
		})
	}

	log.Debug().
		Int("entries", len(entries)).
		Int("appointments", len(appointments)).
		Int("dropped_invalid_date", droppedDates).
		Int("dropped_invalid_client", droppedClients).
		Msg("Normalized raw entries into ledger rows")

	if len(appointments) == 0 {
		return nil, ErrNoData
	}
	return appointments, nil
}
