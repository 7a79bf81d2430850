package sheetsdomain

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

var ErrMissingColumn = errors.New("required column not found")

var (
	dateColumn        = []string{"Date", "Order Date", "Sale Date"}
	salesValueColumn  = []string{"Sales Value (£)", "Sales Value", "Sales", "Revenue", "Value"}
	quantityColumn    = []string{"Order Quantity", "Quantity", "Units", "Qty"}
	channelColumn     = []string{"Sales Channel", "Channel"}
	skuColumn         = []string{"SKU"}
	listingColumn     = []string{"Listing", "Listing Title"}
	productColumn     = []string{"Product", "Product Name"}
	seasonColumn      = []string{"Season"}
	priceRangeUK      = []string{"Price Range UK", "Price Range (UK)"}
	priceRangeUS      = []string{"Price Range US", "Price Range (US)"}
	dailyTargetColumn = []string{"Daily Target (£)", "Daily Target", "Target"}
)

// ParseResult reports how many data rows were dropped for an invalid date or
// required value.
type ParseResult[T any] struct {
	Records []T
	Dropped int
}

// SalesRecords maps a year worksheet to sales records. Rows without a valid
// date are dropped; an unparsable value or quantity counts as 0. Sales dates
// are read month-first.
func SalesRecords(sheet string, rows [][]string) (*ParseResult[*domain.SalesRecord], error) {
	table := NewTable(rows)

	dateCol := table.Column(dateColumn...)
	if dateCol < 0 {
		return nil, errors.Wrapf(ErrMissingColumn, "worksheet %s: date", sheet)
	}
	valueCol := table.Column(salesValueColumn...)
	if valueCol < 0 {
		return nil, errors.Wrapf(ErrMissingColumn, "worksheet %s: sales value", sheet)
	}
	quantityCol := table.Column(quantityColumn...)
	channelCol := table.Column(channelColumn...)
	skuCol := table.Column(skuColumn...)
	listingCol := table.Column(listingColumn...)
	productCol := table.Column(productColumn...)
	seasonCol := table.Column(seasonColumn...)
	ukRangeCol := table.Column(priceRangeUK...)
	usRangeCol := table.Column(priceRangeUS...)

	result := &ParseResult[*domain.SalesRecord]{Records: make([]*domain.SalesRecord, 0, len(table.Rows))}
	for _, row := range table.Rows {
		date, ok := ParseSalesDate(Cell(row, dateCol))
		if !ok {
			result.Dropped++
			continue
		}

		result.Records = append(result.Records, &domain.SalesRecord{
			Date:         date,
			SalesValue:   Float(Cell(row, valueCol)),
			Quantity:     int(Int(Cell(row, quantityCol))),
			Channel:      Cell(row, channelCol),
			SKU:          Cell(row, skuCol),
			Listing:      Cell(row, listingCol),
			Product:      Cell(row, productCol),
			Season:       Cell(row, seasonCol),
			PriceRangeUK: Cell(row, ukRangeCol),
			PriceRangeUS: Cell(row, usRangeCol),
			SourceSheet:  sheet,
		})
	}

	return result, nil
}

// TargetRecords maps the targets worksheet. Rows with an invalid date or
// target are dropped.
func TargetRecords(rows [][]string) (*ParseResult[*domain.TargetRecord], error) {
	table := NewTable(rows)

	dateCol := table.Column(dateColumn...)
	if dateCol < 0 {
		return nil, errors.Wrap(ErrMissingColumn, "targets: date")
	}
	targetCol := table.Column(dailyTargetColumn...)
	if targetCol < 0 {
		return nil, errors.Wrap(ErrMissingColumn, "targets: daily target")
	}

	result := &ParseResult[*domain.TargetRecord]{Records: make([]*domain.TargetRecord, 0, len(table.Rows))}
	for _, row := range table.Rows {
		date, ok := ParseDate(Cell(row, dateCol))
		if !ok {
			result.Dropped++
			continue
		}
		target, ok := ParseNumber(Cell(row, targetCol))
		if !ok {
			result.Dropped++
			continue
		}

		result.Records = append(result.Records, &domain.TargetRecord{
			Date:        date,
			DailyTarget: target.InexactFloat64(),
		})
	}

	return result, nil
}

// PPCRecords maps one marketplace worksheet. Blank metrics read as 0 except
// ACOS and TACOS, which stay absent.
func PPCRecords(country string, rows [][]string) (*ParseResult[*domain.PPCRecord], error) {
	table := NewTable(rows)

	dateCol := table.Column("Date")
	if dateCol < 0 {
		return nil, errors.Wrapf(ErrMissingColumn, "ppc %s: date", country)
	}

	cols := map[string]int{}
	for _, name := range []string{
		"Sessions", "Page Views", "Impressions", "Clicks", "Ad Purchases", "Ad Units Sold",
		"Ad Spend", "Ad Sales", "Total Sales", "Total Units Ordered", "ACOS", "TACOS",
	} {
		cols[name] = table.Column(name)
	}

	result := &ParseResult[*domain.PPCRecord]{Records: make([]*domain.PPCRecord, 0, len(table.Rows))}
	for _, row := range table.Rows {
		date, ok := ParseDate(Cell(row, dateCol))
		if !ok {
			result.Dropped++
			continue
		}

		cell := func(name string) string { return Cell(row, cols[name]) }
		result.Records = append(result.Records, &domain.PPCRecord{
			Country:     country,
			Date:        date,
			Sessions:    Int(cell("Sessions")),
			PageViews:   Int(cell("Page Views")),
			Impressions: Int(cell("Impressions")),
			Clicks:      Int(cell("Clicks")),
			AdOrders:    Int(cell("Ad Purchases")),
			AdUnits:     Int(cell("Ad Units Sold")),
			AdSpend:     Float(cell("Ad Spend")),
			AdSales:     Float(cell("Ad Sales")),
			TotalSales:  Float(cell("Total Sales")),
			TotalUnits:  Int(cell("Total Units Ordered")),
			ACOS:        FloatPtr(cell("ACOS")),
			TACOS:       FloatPtr(cell("TACOS")),
		})
	}

	return result, nil
}
