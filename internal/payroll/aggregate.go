package payroll

import (
	"sort"

	"github.com/rs/zerolog/log"

	"grooming_payroll/internal/ledger"
)

type techWeek struct {
	Technician string
	Week       string
}

type techWeekCategory struct {
	Technician string
	Week       string
	Category   ledger.Category
}

// Aggregate computes one WeeklyTotal per (technician, week, category)
// from the completed appointments in the ledger. Days worked count
// distinct calendar dates with at least one completed appointment,
// regardless of how many appointments fell on that date. Results are
// in deterministic (week, technician, category) order.
func Aggregate(appointments []ledger.Appointment) []ledger.WeeklyTotal {
	daysWorked := countDaysWorked(appointments)

	groups := make(map[techWeekCategory]*ledger.WeeklyTotal)
	var order []techWeekCategory
	for _, appt := range appointments {
		if !appt.Completed {
			continue
		}
		key := techWeekCategory{appt.Technician, appt.Week, appt.Category}
		total, ok := groups[key]
		if !ok {
			total = &ledger.WeeklyTotal{
				Technician: appt.Technician,
				Week:       appt.Week,
				Category:   appt.Category,
				DaysWorked: daysWorked[techWeek{appt.Technician, appt.Week}],
			}
			groups[key] = total
			order = append(order, key)
		}
		total.Service += appt.Service
		total.Tips += appt.Tip
		total.Appointments++
	}

	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.Week != b.Week {
			return a.Week < b.Week
		}
		if a.Technician != b.Technician {
			return a.Technician < b.Technician
		}
		return a.Category < b.Category
	})

	totals := make([]ledger.WeeklyTotal, 0, len(order))
	for _, key := range order {
		total := groups[key]
		total.Payment, total.Profit = weeklyPay(total.Category, total.Service, total.Tips, total.DaysWorked)
		totals = append(totals, *total)
	}

	log.Debug().
		Int("completed_groups", len(totals)).
		Msg("Aggregated weekly payroll totals")

	return totals
}

// countDaysWorked counts distinct completed-appointment dates per
// technician-week.
func countDaysWorked(appointments []ledger.Appointment) map[techWeek]int {
	seen := make(map[techWeek]map[string]struct{})
	for _, appt := range appointments {
		if !appt.Completed {
			continue
		}
		key := techWeek{appt.Technician, appt.Week}
		dates, ok := seen[key]
		if !ok {
			dates = make(map[string]struct{})
			seen[key] = dates
		}
		dates[appt.Date.Format("2006-01-02")] = struct{}{}
	}

	counts := make(map[techWeek]int, len(seen))
	for key, dates := range seen {
		counts[key] = len(dates)
	}
	return counts
}
