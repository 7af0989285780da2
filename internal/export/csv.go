package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"grooming_payroll/internal/ledger"
)

// WriteLedgerCSV writes the enriched appointment ledger as a CSV
// table, one row per appointment. Currency columns are rounded to two
// digits for display; the in-memory ledger keeps full precision.
func WriteLedgerCSV(w io.Writer, appointments []ledger.Appointment) error {
	cw := csv.NewWriter(w)

	header := []string{
		"week", "day", "technician", "category", "date", "client",
		"service", "tip", "pets", "payment_method", "payment_id",
		"verified", "completed", "technician_payment", "company_profit",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write ledger header: %w", err)
	}

	for _, appt := range appointments {
		method := ""
		if appt.Method != nil {
			method = *appt.Method
		}
		row := []string{
			appt.Week,
			appt.Day.String(),
			appt.Technician,
			string(appt.Category),
			appt.Date.Format("2006-01-02"),
			appt.Client,
			money(appt.Service),
			money(appt.Tip),
			strconv.Itoa(appt.Pets),
			method,
			appt.PaymentID,
			strconv.FormatBool(appt.Verified),
			strconv.FormatBool(appt.Completed),
			money(appt.Payment),
			money(appt.Profit),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write ledger row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteWeeklyTotalsCSV writes one row per (technician, week, category)
// weekly total.
func WriteWeeklyTotalsCSV(w io.Writer, totals []ledger.WeeklyTotal) error {
	cw := csv.NewWriter(w)

	header := []string{
		"technician", "week", "category", "service", "tips",
		"appointments", "days_worked", "technician_payment", "company_profit",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write totals header: %w", err)
	}

	for _, total := range totals {
		row := []string{
			total.Technician,
			total.Week,
			string(total.Category),
			money(total.Service),
			money(total.Tips),
			strconv.Itoa(total.Appointments),
			strconv.Itoa(total.DaysWorked),
			money(total.Payment),
			money(total.Profit),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write totals row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFiles writes both tables into the output directory as
// ledger.csv and weekly_totals.csv.
func WriteFiles(dir string, appointments []ledger.Appointment, totals []ledger.WeeklyTotal) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}

	if err := writeFile(dir+"/ledger.csv", func(w io.Writer) error {
		return WriteLedgerCSV(w, appointments)
	}); err != nil {
		return err
	}
	if err := writeFile(dir+"/weekly_totals.csv", func(w io.Writer) error {
		return WriteWeeklyTotalsCSV(w, totals)
	}); err != nil {
		return err
	}

	log.Info().
		Str("dir", dir).
		Int("ledger_rows", len(appointments)).
		Int("weekly_rows", len(totals)).
		Msg("Wrote CSV exports")

	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// money renders a currency amount with 2-digit display rounding.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
