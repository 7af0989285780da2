package parse

import (
	"strings"

	"github.com/rs/zerolog/log"

	"grooming_payroll/internal/grid"
)

// Block is a contiguous run of sheet rows belonging to one technician,
// anchored by the row holding the name marker.
type Block struct {
	// MarkerRow is the sheet row index of the marker row.
	MarkerRow int
	// Rows are the block's rows in sheet order, marker row first.
	Rows [][]grid.Value
}

// SegmentSheet partitions a sheet into technician blocks. A row starts
// a new block when any of its cells contains the name marker; all rows
// up to the next marker belong to the block. Sheets without markers
// yield no blocks.
func SegmentSheet(sheet *grid.Sheet) []Block {
	var blocks []Block
	var current *Block

	for i, row := range sheet.Rows {
		if rowHasMarker(row) {
			if current != nil {
				blocks = append(blocks, *current)
			}
			current = &Block{MarkerRow: i}
		}
		if current != nil {
			current.Rows = append(current.Rows, row)
		}
	}
	if current != nil {
		blocks = append(blocks, *current)
	}

	log.Debug().
		Str("sheet", sheet.Name).
		Int("rows", len(sheet.Rows)).
		Int("blocks", len(blocks)).
		Msg("Segmented sheet into technician blocks")

	return blocks
}

func rowHasMarker(row []grid.Value) bool {
	for _, cell := range row {
		if strings.Contains(cell.AsText(), nameMarker) {
			return true
		}
	}
	return false
}
