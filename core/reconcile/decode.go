package reconcile

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"sales-reconciler/core/utils"
)

// Upstream documents are loosely typed: brand, series and identifiers may arrive as
// numbers, and dates as YYYY-MM-DD. The decoders below coerce instead of failing.

// UnmarshalJSON decodes battery details, coercing brand and series to strings.
func (b *BatteryDetails) UnmarshalJSON(data []byte) error {
	var raw struct {
		Brand  any `json:"brand"`
		Series any `json:"series"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.Brand = utils.ToString(raw.Brand)
	b.Series = utils.ToString(raw.Series)
	return nil
}

// UnmarshalJSON decodes a line item, coercing brand and series to strings.
func (li *LineItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		Brand          any             `json:"brand"`
		Series         any             `json:"series"`
		BatteryDetails *BatteryDetails `json:"batteryDetails"`
		Quantity       any             `json:"quantity"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*li = LineItem{
		Brand:          utils.ToString(raw.Brand),
		Series:         utils.ToString(raw.Series),
		BatteryDetails: raw.BatteryDetails,
		Quantity:       raw.Quantity,
	}
	return nil
}

// UnmarshalJSON decodes a sale record. The date may be RFC 3339 or YYYY-MM-DD (UTC midnight);
// a missing date leaves the zero time.
func (r *SaleRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		TransactionID any        `json:"transactionId"`
		Date          any        `json:"date"`
		Customer      any        `json:"customer"`
		LineItems     []LineItem `json:"lineItems"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	date, err := parseSaleDate(raw.Date)
	if err != nil {
		return err
	}
	*r = SaleRecord{
		TransactionID: utils.ToString(raw.TransactionID),
		Date:          date,
		Customer:      utils.ToString(raw.Customer),
		LineItems:     raw.LineItems,
	}
	return nil
}

func parseSaleDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, nil
	case string:
		if strings.TrimSpace(d) == "" {
			return time.Time{}, nil
		}
		t, _, err := parseBound(strings.TrimSpace(d))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid sale date %q: %w", d, err)
		}
		return t, nil
	default:
		return time.Time{}, fmt.Errorf("invalid sale date %v", d)
	}
}

// UnmarshalJSON decodes a series row, coercing the series name to a string.
func (e *SeriesEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Series    any `json:"series"`
		SoldCount any `json:"soldCount"`
		InStock   any `json:"inStock"`
		UnitCost  any `json:"unitCost"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = SeriesEntry{
		Series:    utils.ToString(raw.Series),
		SoldCount: raw.SoldCount,
		InStock:   raw.InStock,
		UnitCost:  raw.UnitCost,
	}
	return nil
}

// UnmarshalJSON decodes a stock ledger entry, coercing the brand to a string.
func (e *StockLedgerEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Brand         any           `json:"brand"`
		SeriesEntries []SeriesEntry `json:"seriesEntries"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = StockLedgerEntry{
		Brand:         utils.ToString(raw.Brand),
		SeriesEntries: raw.SeriesEntries,
	}
	return nil
}
