package sheetsdomain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics-api/internal/calendar"
)

// Table is a worksheet with its header row resolved to column positions.
type Table struct {
	columns map[string]int
	Rows    [][]string
}

// NewTable treats the first row as the header. Header names are matched
// case-insensitively with surrounding and repeated spaces ignored.
func NewTable(rows [][]string) *Table {
	t := &Table{columns: map[string]int{}}
	if len(rows) == 0 {
		return t
	}

	for i, name := range rows[0] {
		key := normalizeHeader(name)
		if _, exists := t.columns[key]; !exists && key != "" {
			t.columns[key] = i
		}
	}
	t.Rows = rows[1:]

	return t
}

func normalizeHeader(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Column returns the position of the first alias present in the header, or -1.
func (t *Table) Column(aliases ...string) int {
	for _, alias := range aliases {
		if i, ok := t.columns[normalizeHeader(alias)]; ok {
			return i
		}
	}
	return -1
}

// Cell is empty for a missing column or a short row.
func Cell(row []string, column int) string {
	if column < 0 || column >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[column])
}

var numberReplacer = strings.NewReplacer("£", "", "$", "", "€", "", ",", "", "%", "", " ", "")

// ParseNumber cleans currency symbols, thousands separators and percent signs.
// ok is false for blank or unparsable cells.
func ParseNumber(s string) (decimal.Decimal, bool) {
	cleaned := numberReplacer.Replace(strings.TrimSpace(s))
	switch strings.ToLower(cleaned) {
	case "", "-", "nan", "n/a", "#n/a", "none":
		return decimal.Zero, false
	}

	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = "-" + strings.Trim(cleaned, "()")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Float is ParseNumber with absent values read as 0.
func Float(s string) float64 {
	d, _ := ParseNumber(s)
	return d.InexactFloat64()
}

// Int truncates the parsed number; absent values read as 0.
func Int(s string) int64 {
	d, _ := ParseNumber(s)
	return d.IntPart()
}

// FloatPtr is nil for absent values.
func FloatPtr(s string) *float64 {
	d, ok := ParseNumber(s)
	if !ok {
		return nil
	}
	v := d.InexactFloat64()
	return &v
}

// Target and PPC worksheets write dates day-first.
var dateLayouts = []string{
	time.DateOnly,
	"02/01/2006",
	"2/1/2006",
	"02/01/2006 15:04:05",
	"2/1/2006 15:04:05",
	time.DateTime,
	"02-01-2006",
	"02/01/06",
}

// Sales worksheets are exported month-first; an ambiguous slash date such as
// 03/05/2024 is 5 March.
var salesDateLayouts = []string{
	time.DateOnly,
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04:05",
	"1/2/2006 15:04:05",
	time.DateTime,
	"01-02-2006",
	"01/02/06",
}

// ParseDate returns the calendar day of a day-first s.
func ParseDate(s string) (time.Time, bool) {
	return parseDate(s, dateLayouts)
}

// ParseSalesDate returns the calendar day of a month-first s.
func ParseSalesDate(s string) (time.Time, bool) {
	return parseDate(s, salesDateLayouts)
}

func parseDate(s string, layouts []string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return calendar.Day(t), true
		}
	}
	return time.Time{}, false
}
