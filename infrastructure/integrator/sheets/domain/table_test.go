package sheetsdomain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{input: "£1,234.50", want: "1234.5", wantOK: true},
		{input: "$99", want: "99", wantOK: true},
		{input: " 12.5% ", want: "12.5", wantOK: true},
		{input: "(15.00)", want: "-15", wantOK: true},
		{input: "", wantOK: false},
		{input: "#N/A", wantOK: false},
		{input: "abc", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseNumber(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{"2024-03-05", "05/03/2024", "5/3/2024", "05/03/2024 14:30:00", "2024-03-05 08:00:00"} {
		t.Run(input, func(t *testing.T) {
			got, ok := ParseDate(input)
			require.True(t, ok)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}

	_, ok := ParseDate("not a date")
	assert.False(t, ok)
	_, ok = ParseDate("")
	assert.False(t, ok)
}

func TestParseSalesDate(t *testing.T) {
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{"2024-03-05", "03/05/2024", "3/5/2024", "03/05/2024 14:30:00", "2024-03-05 08:00:00"} {
		t.Run(input, func(t *testing.T) {
			got, ok := ParseSalesDate(input)
			require.True(t, ok)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}

	_, ok := ParseSalesDate("25/12/2024")
	assert.False(t, ok)
}

func TestParseDate_SheetOrder(t *testing.T) {
	day, ok := ParseDate("03/05/2024")
	require.True(t, ok)
	sale, ok := ParseSalesDate("03/05/2024")
	require.True(t, ok)

	assert.Equal(t, time.May, day.Month())
	assert.Equal(t, time.March, sale.Month())
}

func TestTable_Column(t *testing.T) {
	table := NewTable([][]string{
		{" Date ", "Sales  Value (£)", "SKU"},
		{"01/01/2024", "10", "A"},
	})

	assert.Equal(t, 0, table.Column("date"))
	assert.Equal(t, 1, table.Column("Revenue", "Sales Value (£)"))
	assert.Equal(t, -1, table.Column("Channel"))
	assert.Len(t, table.Rows, 1)
}

func TestCell(t *testing.T) {
	row := []string{" a ", "b"}

	assert.Equal(t, "a", Cell(row, 0))
	assert.Equal(t, "", Cell(row, 5))
	assert.Equal(t, "", Cell(row, -1))
}

func TestSalesRecords(t *testing.T) {
	rows := [][]string{
		{"Date", "Sales Value (£)", "Order Quantity", "Sales Channel", "SKU", "Season", "Price Range UK", "Price Range US"},
		{"01/06/2024", "£1,200.00", "3", "Amazon UK", "SKU-1", "SS24", "£20-£30", "$25-$35"},
		{"", "£5.00", "1", "Etsy", "SKU-2"},
		{"01/07/2024", "oops", "", "Etsy"},
	}

	result, err := SalesRecords("2024", rows)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Dropped)
	require.Len(t, result.Records, 2)
	assert.Equal(t, 1200.0, result.Records[0].SalesValue)
	assert.Equal(t, 3, result.Records[0].Quantity)
	assert.Equal(t, "Amazon UK", result.Records[0].Channel)
	assert.Equal(t, "2024", result.Records[0].SourceSheet)
	assert.Equal(t, time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), result.Records[0].Date)
	assert.Equal(t, "SS24", result.Records[0].Season)
	assert.Equal(t, "£20-£30", result.Records[0].PriceRangeUK)
	assert.Equal(t, "$25-$35", result.Records[0].PriceRangeUS)
	assert.Equal(t, 0.0, result.Records[1].SalesValue)
	assert.Equal(t, "", result.Records[1].SKU)
}

func TestSalesRecords_MissingColumn(t *testing.T) {
	_, err := SalesRecords("2024", [][]string{{"Date", "Channel"}})
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestTargetRecords(t *testing.T) {
	rows := [][]string{
		{"Date", "Daily Target (£)"},
		{"01/01/2024", "£1,000"},
		{"02/01/2024", ""},
		{"bad", "100"},
	}

	result, err := TargetRecords(rows)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Dropped)
	require.Len(t, result.Records, 1)
	assert.Equal(t, 1000.0, result.Records[0].DailyTarget)
	assert.Equal(t, time.January, result.Records[0].Date.Month())
}

func TestPPCRecords(t *testing.T) {
	rows := [][]string{
		{"Date", "Impressions", "Clicks", "Ad Spend", "Ad Sales", "Total Sales", "ACOS", "TACOS"},
		{"01/03/2024", "1,000", "50", "$25.00", "$100.00", "$400.00", "25%", ""},
	}

	result, err := PPCRecords("US", rows)
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	rec := result.Records[0]
	assert.Equal(t, "US", rec.Country)
	assert.Equal(t, int64(1000), rec.Impressions)
	assert.Equal(t, 25.0, rec.AdSpend)
	require.NotNil(t, rec.ACOS)
	assert.Equal(t, 25.0, *rec.ACOS)
	assert.Nil(t, rec.TACOS)
	assert.Equal(t, int64(0), rec.Sessions)
}
