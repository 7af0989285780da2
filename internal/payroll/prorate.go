package payroll

import (
	"github.com/rs/zerolog/log"

	"grooming_payroll/internal/ledger"
)

// weeklyBase is the proration base for one technician-week: the weekly
// technician payment and the service sum it is distributed over. When
// a technician-week spans more than one category total, the payment of
// the first total (in aggregate order) applies and the service sums
// combine.
type weeklyBase struct {
	Payment float64
	Service float64
	set     bool
}

// Prorate fills in per-appointment payment and profit, distributing
// each technician-week's payment total proportionally to each
// appointment's service value. Rows without a matching weekly base, or
// whose base service sum is zero, fall back to payment 0 and profit
// service+tip. Non-completed rows always get payment 0. The ledger is
// returned as a new slice; input rows are not modified.
func Prorate(appointments []ledger.Appointment, totals []ledger.WeeklyTotal) []ledger.Appointment {
	bases := make(map[techWeek]weeklyBase, len(totals))
	for _, total := range totals {
		key := techWeek{total.Technician, total.Week}
		base := bases[key]
		if !base.set {
			base.Payment = total.Payment
			base.set = true
		}
		base.Service += total.Service
		bases[key] = base
	}

	out := make([]ledger.Appointment, len(appointments))
	for i, appt := range appointments {
		if !appt.Completed {
			appt.Payment = 0
			appt.Profit = appt.Service + appt.Tip
			out[i] = appt
			continue
		}

		base, ok := bases[techWeek{appt.Technician, appt.Week}]
		if !ok || base.Service == 0 {
			appt.Payment = 0
			appt.Profit = appt.Service + appt.Tip
			out[i] = appt
			continue
		}

		appt.Payment = (appt.Service / base.Service) * base.Payment
		appt.Profit = appt.Service + appt.Tip - appt.Payment
		out[i] = appt
	}

	log.Debug().
		Int("appointments", len(out)).
		Int("weekly_bases", len(bases)).
		Msg("Prorated weekly payments to appointments")

	return out
}
