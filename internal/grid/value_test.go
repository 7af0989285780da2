package grid

import (
	"testing"
	"time"
)

func TestAsNumber(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want float64
		ok   bool
	}{
		{"number", Number(42.5), 42.5, true},
		{"integer text", Text("120"), 120, true},
		{"decimal text", Text(" 85.25 "), 85.25, true},
		{"currency text", Text("$1,250.50"), 1250.50, true},
		{"negative", Text("-3"), -3, true},
		{"word", Text("cash"), 0, false},
		{"blank", Blank(), 0, false},
		{"empty text", Text("   "), 0, false},
		{"bool true", Bool(true), 1, true},
	}

	for _, test := range tests {
		got, ok := test.v.AsNumber()
		if ok != test.ok || (ok && got != test.want) {
			t.Errorf("%s: AsNumber() = (%v, %v), expected (%v, %v)",
				test.name, got, ok, test.want, test.ok)
		}
	}
}

func TestAsDate(t *testing.T) {
	want := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		v    Value
		want time.Time
		ok   bool
	}{
		{"iso text", Text("2025-01-05"), want, true},
		{"us slash", Text("01/05/2025"), want, true},
		{"us short slash", Text("1/5/2025"), want, true},
		{"time value", Time(want), want, true},
		{"word", Text("tomorrow"), time.Time{}, false},
		{"blank", Blank(), time.Time{}, false},
	}

	for _, test := range tests {
		got, ok := test.v.AsDate()
		if ok != test.ok || (ok && !got.Equal(test.want)) {
			t.Errorf("%s: AsDate() = (%v, %v), expected (%v, %v)",
				test.name, got, ok, test.want, test.ok)
		}
	}
}

func TestAsDateExcelSerial(t *testing.T) {
	// 2025-01-05 is serial 45662 in the 1900 date system.
	want := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)

	for _, v := range []Value{Number(45662), Text("45662")} {
		got, ok := v.AsDate()
		if !ok {
			t.Fatalf("AsDate(%v): expected ok", v)
		}
		if !got.Equal(want) {
			t.Errorf("AsDate(%v) = %v, expected %v", v, got, want)
		}
	}

	if _, ok := Number(0).AsDate(); ok {
		t.Error("AsDate(0): expected serial below 1 to be rejected")
	}
}

func TestAsText(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Text("  John  "), "John"},
		{Number(12), "12"},
		{Number(12.5), "12.5"},
		{Bool(true), "TRUE"},
		{Blank(), ""},
	}

	for _, test := range tests {
		if got := test.v.AsText(); got != test.want {
			t.Errorf("AsText() = %q, expected %q", got, test.want)
		}
	}
}

func TestAsBool(t *testing.T) {
	truthy := []Value{Bool(true), Number(1), Text("yes"), Text(" X "), Text("TRUE")}
	for _, v := range truthy {
		if !v.AsBool() {
			t.Errorf("AsBool(%v): expected true", v)
		}
	}

	falsy := []Value{Blank(), Bool(false), Number(0), Text("no"), Text("maybe")}
	for _, v := range falsy {
		if v.AsBool() {
			t.Errorf("AsBool(%v): expected false", v)
		}
	}
}

func TestIsBlank(t *testing.T) {
	if !Blank().IsBlank() || !Text("   ").IsBlank() {
		t.Error("expected blank and whitespace cells to be blank")
	}
	if Text("x").IsBlank() || Number(0).IsBlank() {
		t.Error("expected non-empty cells to not be blank")
	}
}

func TestSheetCellBounds(t *testing.T) {
	sheet := Sheet{Name: "WEEK 1", Rows: [][]Value{{Text("a")}}}

	if got := sheet.Cell(0, 0).AsText(); got != "a" {
		t.Errorf("Cell(0,0) = %q, expected \"a\"", got)
	}
	for _, idx := range [][2]int{{0, 5}, {3, 0}, {-1, 0}, {0, -1}} {
		if !sheet.Cell(idx[0], idx[1]).IsBlank() {
			t.Errorf("Cell(%d,%d): expected blank for out-of-range access", idx[0], idx[1])
		}
	}
}

func TestFromAnyRows(t *testing.T) {
	sheet := FromAnyRows("WEEK 1", [][]interface{}{
		{"NAME:", 42.0, true, nil},
	})

	if sheet.Cell(0, 0).AsText() != "NAME:" {
		t.Error("expected string cell")
	}
	if n, ok := sheet.Cell(0, 1).AsNumber(); !ok || n != 42 {
		t.Error("expected numeric cell 42")
	}
	if !sheet.Cell(0, 2).AsBool() {
		t.Error("expected boolean cell true")
	}
	if !sheet.Cell(0, 3).IsBlank() {
		t.Error("expected nil cell to be blank")
	}
}
