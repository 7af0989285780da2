package parse

import "grooming_payroll/internal/ledger"

// nameMarker anchors a technician block. The identity cells sit at
// fixed offsets to the right of the marker cell.
const nameMarker = "NAME:"

// Offsets from the marker column to the identity cells. The cells at
// markerCol+2 and markerCol+4 are label cells ("Category:", "From:").
const (
	nameOffset       = 1
	categoryOffset   = 3
	originGateOffset = 4
	originOffset     = 5
)

// originGateText must appear in the gate cell for the origin cell to
// be read at all.
const originGateText = "From:"

// headerKeywords must all appear somewhere in a row's rendered cells
// for that row to count as the day-columns header.
var headerKeywords = []string{"Schedule", "DATE", "SERVICE"}

// slotWidth is the number of columns one day slot occupies. The ninth
// column is reserved and never read.
const slotWidth = 9

// Offsets of each role within a day slot.
const (
	slotClient = iota
	slotDate
	slotService
	slotTip
	slotPets
	slotMethod
	slotPaymentID
	slotVerified
)

// daySlot names one of the seven fixed day column ranges.
type daySlot struct {
	Day   ledger.Weekday
	Start int
}

// daySlots is the authoritative day-column layout: seven non-overlapping
// 9-wide slots, Sunday first, starting at column 1.
var daySlots = [7]daySlot{
	{ledger.Sunday, 1},
	{ledger.Monday, 10},
	{ledger.Tuesday, 19},
	{ledger.Wednesday, 28},
	{ledger.Thursday, 37},
	{ledger.Friday, 46},
	{ledger.Saturday, 55},
}
