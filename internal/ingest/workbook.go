package ingest

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"grooming_payroll/internal/grid"
)

// Workbook is one acquired spreadsheet file, still undecoded.
type Workbook struct {
	Name string
	Data []byte
}

// Sheets decodes the workbook into raw grids, picking the decoder from
// the file extension. Unknown extensions are tried as xlsx, which also
// covers Drive exports without an extension.
func (w Workbook) Sheets() ([]grid.Sheet, error) {
	if strings.EqualFold(filepath.Ext(w.Name), ".xls") {
		return decodeXLS(w.Name, w.Data)
	}
	return decodeXLSX(w.Name, w.Data)
}

// decodeXLSX reads every worksheet of an xlsx workbook with raw cell
// values, so date cells surface as their underlying serial numbers
// rather than display strings.
func decodeXLSX(name string, data []byte) ([]grid.Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", name, err)
	}
	defer f.Close()

	var sheets []grid.Sheet
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
		if err != nil {
			log.Warn().
				Err(err).
				Str("workbook", name).
				Str("sheet", sheetName).
				Msg("Failed to read sheet, skipping")
			continue
		}
		sheets = append(sheets, grid.FromStrings(sheetName, rows))
	}

	log.Debug().
		Str("workbook", name).
		Int("sheets", len(sheets)).
		Msg("Decoded xlsx workbook")

	return sheets, nil
}

// decodeXLS reads a legacy BIFF workbook.
func decodeXLS(name string, data []byte) ([]grid.Sheet, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open legacy workbook %s: %w", name, err)
	}

	var sheets []grid.Sheet
	for i := 0; i < wb.NumSheets(); i++ {
		ws := wb.GetSheet(i)
		if ws == nil {
			continue
		}

		rows := make([][]string, 0, int(ws.MaxRow)+1)
		for r := 0; r <= int(ws.MaxRow); r++ {
			row := ws.Row(r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			cells := make([]string, row.LastCol())
			for c := row.FirstCol(); c < row.LastCol(); c++ {
				cells[c] = row.Col(c)
			}
			rows = append(rows, cells)
		}
		sheets = append(sheets, grid.FromStrings(ws.Name, rows))
	}

	log.Debug().
		Str("workbook", name).
		Int("sheets", len(sheets)).
		Msg("Decoded legacy xls workbook")

	return sheets, nil
}
