package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind identifies what a cell held in the source workbook.
type Kind int

const (
	KindBlank Kind = iota
	KindText
	KindNumber
	KindBool
	KindTime
)

// Value is a single cell value. Source workbooks intermix strings,
// numbers, dates, booleans and blanks, so every coercion returns an
// explicit ok flag instead of an error or a panic.
type Value struct {
	kind Kind
	text string
	num  float64
	b    bool
	t    time.Time
}

// excelEpoch is day zero of the 1900 date system used by xlsx serials.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

func Blank() Value           { return Value{kind: KindBlank} }
func Text(s string) Value    { return Value{kind: KindText, text: s} }
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }
func Bool(b bool) Value      { return Value{kind: KindBool, b: b} }
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }

// FromAny converts a dynamically typed cell (as returned by the Sheets
// API value range) into a Value.
func FromAny(v interface{}) Value {
	switch x := v.(type) {
	case nil:
		return Blank()
	case string:
		return Text(x)
	case bool:
		return Bool(x)
	case float64:
		return Number(x)
	case float32:
		return Number(float64(x))
	case int:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case time.Time:
		return Time(x)
	default:
		return Text(fmt.Sprintf("%v", x))
	}
}

func (v Value) Kind() Kind { return v.kind }

// IsBlank reports whether the cell is empty or whitespace-only text.
func (v Value) IsBlank() bool {
	if v.kind == KindBlank {
		return true
	}
	return v.kind == KindText && strings.TrimSpace(v.text) == ""
}

// AsText renders the cell as a trimmed string. Blank cells render as "".
func (v Value) AsText() string {
	switch v.kind {
	case KindText:
		return strings.TrimSpace(v.text)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		if v.b {
			return "TRUE"
		}
		return "FALSE"
	case KindTime:
		return v.t.Format("2006-01-02")
	default:
		return ""
	}
}

// AsNumber coerces the cell to a finite float64. Text values may carry
// currency formatting ("$1,250.50"); NaN and infinities are rejected.
func (v Value) AsNumber() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, finite(v.num)
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	case KindText:
		s := strings.TrimSpace(v.text)
		if s == "" {
			return 0, false
		}
		s = strings.ReplaceAll(s, "$", "")
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimSpace(s)
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return n, finite(n)
	default:
		return 0, false
	}
}

// dateLayouts are tried in order for textual date cells.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"2006-01-02 15:04:05",
	"01/02/06",
	"1/2/06",
	time.RFC3339,
}

// AsDate coerces the cell to a calendar date. Numeric cells are treated
// as Excel 1900-system serials; textual cells are tried against the
// common US layouts the source spreadsheets use.
func (v Value) AsDate() (time.Time, bool) {
	switch v.kind {
	case KindTime:
		return v.t, true
	case KindNumber:
		return serialToDate(v.num)
	case KindText:
		s := strings.TrimSpace(v.text)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		// Date cells read with raw values come back as serial strings.
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return serialToDate(n)
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// AsBool interprets the loose truthy markers used in the verified
// column ("x", "yes", "true", 1, ...). Anything else is false.
func (v Value) AsBool() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num != 0
	case KindText:
		switch strings.ToLower(strings.TrimSpace(v.text)) {
		case "true", "yes", "y", "x", "v", "1", "ok", "✓", "✔":
			return true
		}
	}
	return false
}

func serialToDate(n float64) (time.Time, bool) {
	if !finite(n) || n < 1 {
		return time.Time{}, false
	}
	days := int(n)
	frac := n - float64(days)
	t := excelEpoch.AddDate(0, 0, days)
	if frac > 0 {
		t = t.Add(time.Duration(frac * float64(24*time.Hour)))
	}
	return t, true
}

func finite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}
