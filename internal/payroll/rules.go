package payroll

import "grooming_payroll/internal/ledger"

// trainingDayRate is the flat per-day stipend paid to technicians in
// training, independent of service volume.
const trainingDayRate = 80.0

// commissionRates maps commissioned categories to their share of the
// weekly service total. Categories absent from the table earn no
// commission.
var commissionRates = map[ledger.Category]float64{
	ledger.CategoryTechnician:  0.20,
	ledger.CategoryStarted:     0.20,
	ledger.CategoryCoordinator: 0.25,
}

// weeklyPay applies the category payment rule to one technician-week
// group and returns (technician payment, company profit).
func weeklyPay(category ledger.Category, service, tips float64, daysWorked int) (float64, float64) {
	switch category {
	case ledger.CategoryTechnician, ledger.CategoryStarted, ledger.CategoryCoordinator:
		rate := commissionRates[category]
		payment := service*rate + tips
		profit := service * (1 - rate)
		return payment, profit
	case ledger.CategoryTraining:
		payment := trainingDayRate * float64(daysWorked)
		return payment, service + tips - payment
	default:
		// Registering and unrecognized categories earn no technician
		// payment; everything stays with the company.
		return 0, service + tips
	}
}
