package parse

import (
	"strings"

	"github.com/rs/zerolog/log"

	"grooming_payroll/internal/config"
	"grooming_payroll/internal/grid"
	"grooming_payroll/internal/ledger"
)

// RawEntry is one candidate appointment slot extracted from a block,
// before date validation and the normalizer's final filters.
type RawEntry struct {
	Week       string
	Day        ledger.Weekday
	Technician ledger.Identity
	Date       grid.Value
	Client     string
	Service    float64
	Tip        float64
	Pets       int
	Method     *string
	PaymentID  string
	Verified   bool
	Completed  bool
}

// ParseBlock extracts the technician identity and the block's raw
// appointment entries. A block with no readable identity or no header
// row is malformed: it is skipped (ok=false), never an error.
func ParseBlock(cfg config.Pipeline, week string, block Block) (ledger.Identity, []RawEntry, bool) {
	identity, ok := extractIdentity(block)
	if !ok {
		log.Debug().
			Str("week", week).
			Int("marker_row", block.MarkerRow).
			Msg("Skipping block without readable identity")
		return ledger.Identity{}, nil, false
	}

	headerIdx, ok := findHeaderRow(block)
	if !ok {
		log.Debug().
			Str("week", week).
			Str("technician", identity.Name).
			Msg("Skipping block without day-columns header")
		return ledger.Identity{}, nil, false
	}

	var entries []RawEntry
	for i := headerIdx + 1; i < len(block.Rows); i++ {
		row := block.Rows[i]
		for _, slot := range daySlots {
			if entry, ok := parseSlot(cfg, week, identity, slot, row); ok {
				entries = append(entries, entry)
			}
		}
	}

	log.Debug().
		Str("week", week).
		Str("technician", identity.Name).
		Str("category", string(identity.Category)).
		Int("entries", len(entries)).
		Msg("Parsed technician block")

	return identity, entries, true
}

// extractIdentity reads the name, category and gated origin cells at
// their fixed offsets from the marker column.
func extractIdentity(block Block) (ledger.Identity, bool) {
	if len(block.Rows) == 0 {
		return ledger.Identity{}, false
	}
	markerRow := block.Rows[0]

	markerCol := -1
	for i, cell := range markerRow {
		if strings.Contains(cell.AsText(), nameMarker) {
			markerCol = i
			break
		}
	}
	if markerCol == -1 || len(markerRow) <= markerCol+nameOffset {
		return ledger.Identity{}, false
	}

	rawCategory := grid.RowCell(markerRow, markerCol+categoryOffset).AsText()

	origin := ""
	gate := grid.RowCell(markerRow, markerCol+originGateOffset).AsText()
	if strings.Contains(gate, originGateText) {
		origin = grid.RowCell(markerRow, markerCol+originOffset).AsText()
	}

	return ledger.Identity{
		Name:        grid.RowCell(markerRow, markerCol+nameOffset).AsText(),
		Category:    ledger.ParseCategory(rawCategory),
		RawCategory: rawCategory,
		Origin:      origin,
	}, true
}

// findHeaderRow returns the index (within the block) of the first row
// in which every header keyword appears in some cell.
func findHeaderRow(block Block) (int, bool) {
	for i, row := range block.Rows {
		if rowHasAllKeywords(row) {
			return i, true
		}
	}
	return 0, false
}

func rowHasAllKeywords(row []grid.Value) bool {
	for _, keyword := range headerKeywords {
		found := false
		for _, cell := range row {
			if strings.Contains(cell.AsText(), keyword) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// parseSlot applies the completed / non-completed / empty rule to one
// (row, day) slot:
//   - blank or denylisted client: nothing
//   - parseable service amount: completed entry
//   - client with blank service: non-completed entry (no-show)
//   - client with unparseable service: nothing (inconsistent record)
func parseSlot(cfg config.Pipeline, week string, identity ledger.Identity, slot daySlot, row []grid.Value) (RawEntry, bool) {
	client := grid.RowCell(row, slot.Start+slotClient).AsText()
	if client == "" || cfg.IsInvalidClient(client) {
		return RawEntry{}, false
	}

	entry := RawEntry{
		Week:       week,
		Day:        slot.Day,
		Technician: identity,
		Date:       grid.RowCell(row, slot.Start+slotDate),
		Client:     client,
	}

	serviceCell := grid.RowCell(row, slot.Start+slotService)
	if !serviceCell.IsBlank() {
		service, ok := serviceCell.AsNumber()
		if !ok {
			return RawEntry{}, false
		}
		entry.Completed = true
		entry.Service = service
		if tip, ok := grid.RowCell(row, slot.Start+slotTip).AsNumber(); ok {
			entry.Tip = tip
		}
		if pets, ok := grid.RowCell(row, slot.Start+slotPets).AsNumber(); ok {
			entry.Pets = int(pets)
		}
		if method := grid.RowCell(row, slot.Start+slotMethod).AsText(); cfg.IsValidPaymentMethod(method) {
			entry.Method = &method
		}
		entry.PaymentID = grid.RowCell(row, slot.Start+slotPaymentID).AsText()
		entry.Verified = grid.RowCell(row, slot.Start+slotVerified).AsBool()
	}

	return entry, true
}
