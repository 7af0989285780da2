package payroll

import (
	"testing"

	"grooming_payroll/internal/ledger"
)

func TestProrateSingleAppointment(t *testing.T) {
	// Technician with service=100, tip=10: weekly payment 30, and the
	// single appointment receives all of it.
	appointments := []ledger.Appointment{
		appt("Alice", ledger.CategoryTechnician, "WEEK 1", day(5), 100, 10),
	}
	totals := Aggregate(appointments)

	enriched := Prorate(appointments, totals)
	if !approx(enriched[0].Payment, 30) {
		t.Errorf("Expected prorated payment 30, got %v", enriched[0].Payment)
	}
	if !approx(enriched[0].Profit, 100+10-30) {
		t.Errorf("Expected profit 80, got %v", enriched[0].Profit)
	}
}

func TestProrateCoordinatorSplit(t *testing.T) {
	// Coordinator, two appointments with services 60 and 40 and tips 5
	// and 0: weekly payment = 100*0.25+5 = 30, split 18/12.
	appointments := []ledger.Appointment{
		appt("Carla", ledger.CategoryCoordinator, "WEEK 1", day(5), 60, 5),
		appt("Carla", ledger.CategoryCoordinator, "WEEK 1", day(6), 40, 0),
	}
	totals := Aggregate(appointments)
	if len(totals) != 1 || !approx(totals[0].Payment, 30) {
		t.Fatalf("Expected weekly payment 30, got %+v", totals)
	}

	enriched := Prorate(appointments, totals)
	if !approx(enriched[0].Payment, 18) {
		t.Errorf("Expected first payment 18, got %v", enriched[0].Payment)
	}
	if !approx(enriched[1].Payment, 12) {
		t.Errorf("Expected second payment 12, got %v", enriched[1].Payment)
	}
	if !approx(enriched[0].Payment+enriched[1].Payment, totals[0].Payment) {
		t.Error("Expected appointment payments to sum to the weekly payment")
	}
}

func TestProrateSumInvariant(t *testing.T) {
	// For every technician-week, appointment payments and profits must
	// sum back to the weekly totals within floating-point tolerance.
	appointments := []ledger.Appointment{
		appt("Alice", ledger.CategoryTechnician, "WEEK 1", day(5), 37.50, 3),
		appt("Alice", ledger.CategoryTechnician, "WEEK 1", day(5), 82.25, 0),
		appt("Alice", ledger.CategoryTechnician, "WEEK 1", day(6), 19.99, 7.5),
		appt("Alice", ledger.CategoryTechnician, "WEEK 2", day(13), 65, 0),
		appt("Carla", ledger.CategoryCoordinator, "WEEK 1", day(7), 110.10, 12),
		appt("Carla", ledger.CategoryCoordinator, "WEEK 1", day(8), 45.45, 0),
		appt("Tina", ledger.CategoryTraining, "WEEK 1", day(5), 20, 0),
		appt("Tina", ledger.CategoryTraining, "WEEK 1", day(6), 35, 1),
	}
	totals := Aggregate(appointments)
	enriched := Prorate(appointments, totals)

	type key struct{ tech, week string }
	paymentSums := map[key]float64{}
	profitSums := map[key]float64{}
	for _, a := range enriched {
		k := key{a.Technician, a.Week}
		paymentSums[k] += a.Payment
		profitSums[k] += a.Profit
	}

	for _, total := range totals {
		k := key{total.Technician, total.Week}
		if !approx(paymentSums[k], total.Payment) {
			t.Errorf("%s %s: appointment payments sum %v, weekly payment %v",
				total.Technician, total.Week, paymentSums[k], total.Payment)
		}
		if !approx(profitSums[k], total.Profit) {
			t.Errorf("%s %s: appointment profits sum %v, weekly profit %v",
				total.Technician, total.Week, profitSums[k], total.Profit)
		}
	}
}

func TestProrateNonCompleted(t *testing.T) {
	noShow := appt("Alice", ledger.CategoryTechnician, "WEEK 1", day(5), 0, 2.5)
	noShow.Completed = false

	appointments := []ledger.Appointment{
		appt("Alice", ledger.CategoryTechnician, "WEEK 1", day(5), 100, 0),
		noShow,
	}
	totals := Aggregate(appointments)
	enriched := Prorate(appointments, totals)

	if enriched[1].Payment != 0 {
		t.Errorf("Expected non-completed payment 0, got %v", enriched[1].Payment)
	}
	// Tips recorded on a no-show stay with the company.
	if !approx(enriched[1].Profit, 2.5) {
		t.Errorf("Expected non-completed profit 2.5, got %v", enriched[1].Profit)
	}
}

func TestProrateZeroServiceBase(t *testing.T) {
	// Training technician with only zero-value services: the weekly
	// stipend cannot be prorated over a zero base.
	appointments := []ledger.Appointment{
		appt("Tina", ledger.CategoryTraining, "WEEK 1", day(5), 0, 4),
	}
	totals := Aggregate(appointments)
	if len(totals) != 1 || !approx(totals[0].Payment, 80) {
		t.Fatalf("Expected weekly stipend 80, got %+v", totals)
	}

	enriched := Prorate(appointments, totals)
	if enriched[0].Payment != 0 {
		t.Errorf("Expected payment 0 on zero service base, got %v", enriched[0].Payment)
	}
	if !approx(enriched[0].Profit, 4) {
		t.Errorf("Expected profit service+tip = 4, got %v", enriched[0].Profit)
	}
}

func TestProrateMissingWeeklyTotal(t *testing.T) {
	appointments := []ledger.Appointment{
		appt("Ghost", ledger.CategoryTechnician, "WEEK 9", day(5), 75, 5),
	}

	enriched := Prorate(appointments, nil)
	if enriched[0].Payment != 0 {
		t.Errorf("Expected payment 0 without a weekly total, got %v", enriched[0].Payment)
	}
	if !approx(enriched[0].Profit, 80) {
		t.Errorf("Expected profit service+tip = 80, got %v", enriched[0].Profit)
	}
}

func TestProrateDoesNotMutateInput(t *testing.T) {
	appointments := []ledger.Appointment{
		appt("Alice", ledger.CategoryTechnician, "WEEK 1", day(5), 100, 10),
	}
	totals := Aggregate(appointments)
	_ = Prorate(appointments, totals)

	if appointments[0].Payment != 0 || appointments[0].Profit != 0 {
		t.Error("Expected input ledger to remain untouched")
	}
}
