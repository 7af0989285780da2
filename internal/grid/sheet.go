package grid

// Sheet is one named worksheet exposed as a raw 2-D grid. Rows may be
// ragged; Cell performs bounds checking so callers never index the
// backing slices directly.
type Sheet struct {
	Name string
	Rows [][]Value
}

// Cell returns the value at (row, col), or a blank value when either
// index is out of range.
func (s *Sheet) Cell(row, col int) Value {
	if row < 0 || row >= len(s.Rows) {
		return Blank()
	}
	r := s.Rows[row]
	if col < 0 || col >= len(r) {
		return Blank()
	}
	return r[col]
}

// RowCell bounds-checks a single row slice.
func RowCell(row []Value, col int) Value {
	if col < 0 || col >= len(row) {
		return Blank()
	}
	return row[col]
}

// IsEmpty reports whether the sheet has no non-blank cell at all.
func (s *Sheet) IsEmpty() bool {
	for _, row := range s.Rows {
		for _, cell := range row {
			if !cell.IsBlank() {
				return false
			}
		}
	}
	return true
}

// FromStrings builds a sheet from string cells, e.g. rows returned by
// excelize or a legacy xls reader. Empty strings become blank cells.
func FromStrings(name string, rows [][]string) Sheet {
	out := Sheet{Name: name, Rows: make([][]Value, len(rows))}
	for i, row := range rows {
		cells := make([]Value, len(row))
		for j, s := range row {
			if s == "" {
				cells[j] = Blank()
			} else {
				cells[j] = Text(s)
			}
		}
		out.Rows[i] = cells
	}
	return out
}

// FromAnyRows builds a sheet from dynamically typed cells, e.g. a
// Sheets API value range.
func FromAnyRows(name string, rows [][]interface{}) Sheet {
	out := Sheet{Name: name, Rows: make([][]Value, len(rows))}
	for i, row := range rows {
		cells := make([]Value, len(row))
		for j, v := range row {
			cells[j] = FromAny(v)
		}
		out.Rows[i] = cells
	}
	return out
}
