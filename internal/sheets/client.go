package sheets

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"grooming_payroll/internal/config"
	"grooming_payroll/internal/grid"
	"grooming_payroll/internal/retry"
)

// Client reads whole spreadsheets from the Google Sheets API, tab by
// tab, as raw grids.
type Client struct {
	service *sheets.Service
}

func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	service, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		service: service,
	}, nil
}

// ReadSpreadsheetGrids fetches every tab of the spreadsheet and
// returns one grid per tab. Tabs that fail to read are logged and
// skipped; the week-prefix filter is the pipeline's concern.
func (c *Client) ReadSpreadsheetGrids(ctx context.Context, spreadsheetID string) ([]grid.Sheet, error) {
	meta, err := retry.WithRetry(ctx, config.DefaultResilienceConfig.SheetRead, func(ctx context.Context) (*sheets.Spreadsheet, error) {
		return c.service.Spreadsheets.Get(spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet metadata: %w", err)
	}

	var grids []grid.Sheet
	for _, tab := range meta.Sheets {
		title := tab.Properties.Title
		values, err := retry.WithRetry(ctx, config.DefaultResilienceConfig.SheetRead, func(ctx context.Context) ([][]interface{}, error) {
			return c.readTab(ctx, spreadsheetID, title)
		})
		if err != nil {
			log.Warn().
				Err(err).
				Str("spreadsheet_id", spreadsheetID).
				Str("tab", title).
				Msg("Failed to read tab, skipping")
			continue
		}
		grids = append(grids, grid.FromAnyRows(title, values))
	}

	log.Debug().
		Str("spreadsheet_id", spreadsheetID).
		Int("tabs", len(grids)).
		Msg("Read spreadsheet grids")

	return grids, nil
}

func (c *Client) readTab(ctx context.Context, spreadsheetID, title string) ([][]interface{}, error) {
	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, fmt.Sprintf("'%s'", title)).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read tab %q: %w", title, err)
	}
	return resp.Values, nil
}
