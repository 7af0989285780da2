package parse

import (
	"testing"

	"grooming_payroll/internal/grid"
)

func textRow(cells ...string) []grid.Value {
	row := make([]grid.Value, len(cells))
	for i, c := range cells {
		if c == "" {
			row[i] = grid.Blank()
		} else {
			row[i] = grid.Text(c)
		}
	}
	return row
}

func TestSegmentSheet(t *testing.T) {
	sheet := grid.Sheet{Name: "WEEK 1", Rows: [][]grid.Value{
		textRow("ignored preamble"),
		textRow("", "NAME:", "Alice"),
		textRow("Schedule", "", "DATE", "SERVICE"),
		textRow("", "John"),
		textRow("", "NAME:", "Bob"),
		textRow("Schedule", "", "DATE", "SERVICE"),
	}}

	blocks := SegmentSheet(&sheet)
	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(blocks))
	}

	if blocks[0].MarkerRow != 1 {
		t.Errorf("Expected first block marker at row 1, got %d", blocks[0].MarkerRow)
	}
	if len(blocks[0].Rows) != 3 {
		t.Errorf("Expected first block to span 3 rows, got %d", len(blocks[0].Rows))
	}

	if blocks[1].MarkerRow != 4 {
		t.Errorf("Expected second block marker at row 4, got %d", blocks[1].MarkerRow)
	}
	// Trailing rows after the last marker belong to the final block.
	if len(blocks[1].Rows) != 2 {
		t.Errorf("Expected second block to span 2 rows, got %d", len(blocks[1].Rows))
	}
}

func TestSegmentSheetNoMarkers(t *testing.T) {
	sheet := grid.Sheet{Name: "WEEK 2", Rows: [][]grid.Value{
		textRow("some", "cells"),
		textRow("but", "no", "marker"),
	}}

	if blocks := SegmentSheet(&sheet); len(blocks) != 0 {
		t.Errorf("Expected 0 blocks for a sheet without markers, got %d", len(blocks))
	}
}

func TestSegmentSheetEmpty(t *testing.T) {
	sheet := grid.Sheet{Name: "WEEK 3"}
	if blocks := SegmentSheet(&sheet); len(blocks) != 0 {
		t.Errorf("Expected 0 blocks for an empty sheet, got %d", len(blocks))
	}
}
