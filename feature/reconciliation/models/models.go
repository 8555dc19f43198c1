package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sales-reconciler/core/reconcile"
)

// Sale represents the 'sales' table. Line items are stored as the JSON document
// the point-of-sale frontend submits.
type Sale struct {
	ID            uint      `gorm:"column:id;primaryKey"`
	TransactionID string    `gorm:"column:transaction_id;type:varchar(64);index"`
	CustomerName  string    `gorm:"column:customer_name;type:varchar(255)"`
	SaleDate      time.Time `gorm:"column:sale_date;index"`
	LineItems     string    `gorm:"column:line_items;type:text"`
}

// TableName overrides the table name.
func (Sale) TableName() string {
	return "sales"
}

// ToRecord converts the row to an engine sale record.
// Line items that fail to decode are dropped individually and reported in the
// returned error; the record is still usable.
func (s Sale) ToRecord() (reconcile.SaleRecord, error) {
	record := reconcile.SaleRecord{
		TransactionID: s.TransactionID,
		Date:          s.SaleDate,
		Customer:      s.CustomerName,
	}
	items, err := decodeEach[reconcile.LineItem](s.LineItems)
	record.LineItems = items
	if err != nil {
		return record, fmt.Errorf("sale %s: malformed line_items: %w", s.TransactionID, err)
	}
	return record, nil
}

// NewSale builds a row from an engine sale record.
func NewSale(record reconcile.SaleRecord) (Sale, error) {
	items, err := json.Marshal(record.LineItems)
	if err != nil {
		return Sale{}, fmt.Errorf("failed to encode line items: %w", err)
	}
	return Sale{
		TransactionID: record.TransactionID,
		CustomerName:  record.Customer,
		SaleDate:      record.Date,
		LineItems:     string(items),
	}, nil
}

// StockLedger represents the 'stock_ledgers' table: one row per brand with its
// series rows stored as a JSON document.
type StockLedger struct {
	ID     uint   `gorm:"column:id;primaryKey"`
	Brand  string `gorm:"column:brand;type:varchar(255);index"`
	Series string `gorm:"column:series;type:text"`
}

// TableName overrides the table name.
func (StockLedger) TableName() string {
	return "stock_ledgers"
}

// ToEntry converts the row to an engine stock ledger entry.
// Series rows that fail to decode are dropped individually and reported in the error.
func (l StockLedger) ToEntry() (reconcile.StockLedgerEntry, error) {
	entry := reconcile.StockLedgerEntry{Brand: l.Brand}
	series, err := decodeEach[reconcile.SeriesEntry](l.Series)
	entry.SeriesEntries = series
	if err != nil {
		return entry, fmt.Errorf("stock ledger %s: malformed series: %w", l.Brand, err)
	}
	return entry, nil
}

// decodeEach decodes a JSON array element by element, keeping the elements that decode.
// A document that is not an array yields no elements.
func decodeEach[T any](doc string) ([]T, error) {
	if doc == "" {
		return nil, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, err
	}

	out := make([]T, 0, len(raw))
	var errs []error
	for i, elem := range raw {
		var v T
		if err := json.Unmarshal(elem, &v); err != nil {
			errs = append(errs, fmt.Errorf("element %d: %w", i, err))
			continue
		}
		out = append(out, v)
	}
	return out, errors.Join(errs...)
}

// NewStockLedger builds a row from an engine stock ledger entry.
func NewStockLedger(entry reconcile.StockLedgerEntry) (StockLedger, error) {
	series, err := json.Marshal(entry.SeriesEntries)
	if err != nil {
		return StockLedger{}, fmt.Errorf("failed to encode series: %w", err)
	}
	return StockLedger{Brand: entry.Brand, Series: string(series)}, nil
}

// RequiredColumns lists the columns each table must expose for reconciliation.
var RequiredColumns = map[string][]string{
	Sale{}.TableName():        {"id", "transaction_id", "customer_name", "sale_date", "line_items"},
	StockLedger{}.TableName(): {"id", "brand", "series"},
}

// All returns every model for migrations.
func All() []any {
	return []any{&Sale{}, &StockLedger{}}
}
