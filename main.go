package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"grooming_payroll/internal/config"
	"grooming_payroll/internal/drive"
	"grooming_payroll/internal/export"
	"grooming_payroll/internal/grid"
	"grooming_payroll/internal/ingest"
	"grooming_payroll/internal/normalize"
	"grooming_payroll/internal/notifications"
	"grooming_payroll/internal/pipeline"
	"grooming_payroll/internal/sheets"
)

func main() {
	input := flag.String("input", "", "comma-separated local .xlsx/.xls files to process")
	outDir := flag.String("out", "out", "directory for ledger.csv and weekly_totals.csv")
	flag.Parse()

	setupEnvironment()

	ctx := context.Background()
	cfg := config.PipelineFromEnv()

	grids, workbookCount := acquireSheets(ctx, *input)
	if len(grids) == 0 {
		log.Fatal().Msg("No spreadsheet data acquired; pass -input, DRIVE_FOLDER_ID/DRIVE_FOLDER_URL or SPREADSHEET_ID")
	}

	result, err := pipeline.Run(cfg, grids)
	if err != nil {
		if errors.Is(err, normalize.ErrNoData) {
			log.Warn().Msg("No valid appointment data found in the processed spreadsheets")
			os.Exit(0)
		}
		log.Fatal().Err(err).Msg("Pipeline run failed")
	}

	if err := export.WriteFiles(*outDir, result.Ledger, result.WeeklyTotals); err != nil {
		log.Fatal().Err(err).Msg("Failed to write CSV exports")
	}

	summary := summarize(result, workbookCount)
	logSummary(summary)
	initializeNotificationClient().NotifyRunSummary(ctx, summary)
}

// acquireSheets gathers raw grids from every configured source: local
// files, a Google Drive folder, and/or a spreadsheet read directly
// through the Sheets API. Returns the grids and how many workbooks
// contributed.
func acquireSheets(ctx context.Context, input string) ([]grid.Sheet, int) {
	var grids []grid.Sheet
	workbooks := 0

	for _, path := range splitPaths(input) {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Failed to read input file, skipping")
			continue
		}
		wb := ingest.Workbook{Name: filepath.Base(path), Data: data}
		sheetGrids, err := wb.Sheets()
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Failed to decode workbook, skipping")
			continue
		}
		grids = append(grids, sheetGrids...)
		workbooks++
	}

	credsFile := getEnvWithDefault("CREDENTIALS_FILE", "service_account.json")

	folderRef := os.Getenv("DRIVE_FOLDER_ID")
	if folderRef == "" {
		folderRef = os.Getenv("DRIVE_FOLDER_URL")
	}
	if folderRef != "" {
		driveClient, err := drive.NewClient(ctx, credsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create drive client")
		}
		fetched, err := driveClient.FetchFolderWorkbooks(ctx, drive.ExtractFolderID(folderRef))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to fetch Drive folder")
		}
		for _, wb := range fetched {
			sheetGrids, err := wb.Sheets()
			if err != nil {
				log.Warn().Err(err).Str("workbook", wb.Name).Msg("Failed to decode workbook, skipping")
				continue
			}
			grids = append(grids, sheetGrids...)
			workbooks++
		}
	}

	if spreadsheetID := os.Getenv("SPREADSHEET_ID"); spreadsheetID != "" {
		sheetsClient, err := sheets.NewClient(ctx, credsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create sheets client")
		}
		sheetGrids, err := sheetsClient.ReadSpreadsheetGrids(ctx, spreadsheetID)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read spreadsheet")
		}
		grids = append(grids, sheetGrids...)
		workbooks++
	}

	return grids, workbooks
}

func initializeNotificationClient() *notifications.Client {
	enabled := getEnvWithDefault("NTFY_ENABLED", "false") == "true"
	baseURL := getEnvWithDefault("NTFY_URL", "https://ntfy.sh")
	topic := getEnvWithDefault("NTFY_TOPIC", "grooming-payroll")

	log.Debug().
		Bool("enabled", enabled).
		Str("base_url", baseURL).
		Str("topic", topic).
		Msg("Initializing notification client")

	return notifications.NewClient(baseURL, topic, enabled, "", 3, 1*time.Second, 30*time.Second)
}

func summarize(result *pipeline.Result, workbooks int) notifications.RunSummary {
	summary := notifications.RunSummary{
		Workbooks:    workbooks,
		Appointments: len(result.Ledger),
	}
	for _, appt := range result.Ledger {
		if !appt.Completed {
			continue
		}
		summary.Completed++
		summary.TotalService += appt.Service
		summary.TotalTips += appt.Tip
		summary.TotalPayment += appt.Payment
		summary.TotalProfit += appt.Profit
	}
	return summary
}

func logSummary(s notifications.RunSummary) {
	log.Info().
		Int("workbooks", s.Workbooks).
		Int("appointments", s.Appointments).
		Int("completed", s.Completed).
		Float64("total_service", s.TotalService).
		Float64("total_tips", s.TotalTips).
		Float64("total_payment", s.TotalPayment).
		Float64("total_profit", s.TotalProfit).
		Msg("Payroll run summary")
}

func splitPaths(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	paths := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			paths = append(paths, s)
		}
	}
	return paths
}
