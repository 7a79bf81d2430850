package domain

import (
	"strings"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/calendar"
)

// AmazonChannel is matched case-insensitively against the sales channel.
const AmazonChannel = "amazon"

// SalesRecord is one cleaned row of a sales worksheet.
type SalesRecord struct {
	ID           int64     `json:"id,omitempty"`
	Date         time.Time `json:"date"`
	SalesValue   float64   `json:"sales_value"`
	Quantity     int       `json:"quantity"`
	Channel      string    `json:"channel"`
	SKU          string    `json:"sku,omitempty"`
	Listing      string    `json:"listing,omitempty"`
	Product      string    `json:"product,omitempty"`
	Season       string    `json:"season,omitempty"`
	PriceRangeUK string    `json:"price_range_uk,omitempty"`
	PriceRangeUS string    `json:"price_range_us,omitempty"`
	CustomYear   int       `json:"custom_year"`
	CustomWeek   int       `json:"custom_week"`
	SourceSheet  string    `json:"source_sheet"`
}

// Annotate derives the custom year and week from the record date.
func (r *SalesRecord) Annotate() {
	r.Date = calendar.Day(r.Date)
	r.CustomYear, r.CustomWeek = calendar.DateToCustomWeek(r.Date)
}

// IsChannel reports whether the channel contains filter, ignoring case.
func (r *SalesRecord) IsChannel(filter string) bool {
	return strings.Contains(strings.ToLower(r.Channel), strings.ToLower(filter))
}

// AnnotateAll annotates every record in place.
func AnnotateAll(records []*SalesRecord) {
	for _, r := range records {
		r.Annotate()
	}
}
