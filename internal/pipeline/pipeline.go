package pipeline

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"grooming_payroll/internal/config"
	"grooming_payroll/internal/grid"
	"grooming_payroll/internal/ledger"
	"grooming_payroll/internal/normalize"
	"grooming_payroll/internal/parse"
	"grooming_payroll/internal/payroll"
)

// Result is the output of one full pipeline run: the enriched
// appointment ledger and the weekly payroll totals. Both are rebuilt
// from scratch on every run and treated as immutable by consumers.
type Result struct {
	RunID        string
	Ledger       []ledger.Appointment
	WeeklyTotals []ledger.WeeklyTotal
}

// Run executes the full batch over the given sheets: segment each
// weekly sheet into technician blocks, parse blocks into raw entries,
// normalize into the canonical ledger, aggregate weekly totals and
// prorate payments back onto appointments. Only sheets whose name
// carries the configured week prefix are processed. A malformed sheet
// or block is skipped, never fatal; an empty result surfaces as
// normalize.ErrNoData.
func Run(cfg config.Pipeline, sheets []grid.Sheet) (*Result, error) {
	runID := uuid.NewString()
	log.Debug().
		Str("run_id", runID).
		Int("sheets", len(sheets)).
		Msg("Starting payroll pipeline run")

	var entries []parse.RawEntry
	weekSheets := 0
	for i := range sheets {
		sheet := &sheets[i]
		if !strings.HasPrefix(sheet.Name, cfg.WeekSheetPrefix) {
			log.Debug().Str("sheet", sheet.Name).Msg("Ignoring non-week sheet")
			continue
		}
		weekSheets++

		if sheet.IsEmpty() {
			log.Info().Str("sheet", sheet.Name).Msg("Sheet is empty, skipping")
			continue
		}

		sheetEntries := 0
		for _, block := range parse.SegmentSheet(sheet) {
			_, blockEntries, ok := parse.ParseBlock(cfg, sheet.Name, block)
			if !ok {
				continue
			}
			entries = append(entries, blockEntries...)
			sheetEntries += len(blockEntries)
		}

		log.Debug().
			Str("sheet", sheet.Name).
			Int("entries", sheetEntries).
			Msg("Finished sheet")
	}

	appointments, err := normalize.Build(cfg, entries)
	if err != nil {
		return nil, err
	}

	totals := payroll.Aggregate(appointments)
	appointments = payroll.Prorate(appointments, totals)

	completed := 0
	for _, appt := range appointments {
		if appt.Completed {
			completed++
		}
	}

	log.Info().
		Str("run_id", runID).
		Int("week_sheets", weekSheets).
		Int("appointments", len(appointments)).
		Int("completed", completed).
		Int("weekly_totals", len(totals)).
		Msg("Pipeline run complete")

	return &Result{
		RunID:        runID,
		Ledger:       appointments,
		WeeklyTotals: totals,
	}, nil
}
