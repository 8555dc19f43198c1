package reconcile

import (
	"fmt"

	"sales-reconciler/core/utils"
)

// StockFacts holds the coerced ledger values for one product key.
type StockFacts struct {
	BrandIdentifier string
	SeriesKey       string
	StockSoldCount  float64
	InStock         float64
	UnitCost        float64
}

// StockIndex maps product keys to ledger facts, remembering first-seen order.
type StockIndex struct {
	keys  []string
	facts map[string]StockFacts
}

// Keys returns product keys in first-encounter order.
func (i *StockIndex) Keys() []string { return i.keys }

// Get returns the facts for a key.
func (i *StockIndex) Get(key string) (StockFacts, bool) {
	f, ok := i.facts[key]
	return f, ok
}

// Len returns the number of distinct product keys.
func (i *StockIndex) Len() int { return len(i.keys) }

// SalesIndex maps product keys to cumulative sold quantity, remembering first-seen order.
type SalesIndex struct {
	keys   []string
	totals map[string]float64
	labels map[string][2]string
}

// Keys returns product keys in first-encounter order.
func (i *SalesIndex) Keys() []string { return i.keys }

// Total returns the cumulative quantity for a key.
func (i *SalesIndex) Total(key string) (float64, bool) {
	q, ok := i.totals[key]
	return q, ok
}

// Len returns the number of distinct product keys.
func (i *SalesIndex) Len() int { return len(i.keys) }

// BuildStockIndex indexes ledger rows by product key in a single pass.
// Duplicate keys keep the last row seen. Negative sold counts are clamped to 0
// and reported as warnings; the input is never modified.
func BuildStockIndex(stock []StockLedgerEntry, separator string) (*StockIndex, []Warning) {
	idx := &StockIndex{facts: make(map[string]StockFacts)}
	var warnings []Warning

	for _, entry := range stock {
		for _, row := range entry.SeriesEntries {
			key, brand, series := ResolveSeriesEntry(entry.Brand, row, separator)
			if key == "" {
				continue
			}

			sold := utils.ToNumber(row.SoldCount)
			if sold < 0 {
				warnings = append(warnings, Warning{
					ProductKey: key,
					Code:       WarningNegativeSoldCount,
					Message:    fmt.Sprintf("negative soldCount %v clamped to 0", sold),
				})
				sold = 0
			}

			if _, seen := idx.facts[key]; !seen {
				idx.keys = append(idx.keys, key)
			}
			idx.facts[key] = StockFacts{
				BrandIdentifier: brand,
				SeriesKey:       series,
				StockSoldCount:  sold,
				InStock:         utils.ToNumber(row.InStock),
				UnitCost:        utils.ToNumber(row.UnitCost),
			}
		}
	}

	return idx, warnings
}

// BuildSalesIndex sums line item quantities by product key in a single pass and
// collects one detail row per counted line item. Line items whose brand and series
// both resolve empty are skipped. Negative quantities count as 0 and are reported.
func BuildSalesIndex(sales []SaleRecord, separator string) (*SalesIndex, []SalesDetail, []Warning) {
	idx := &SalesIndex{
		totals: make(map[string]float64),
		labels: make(map[string][2]string),
	}
	details := make([]SalesDetail, 0)
	var warnings []Warning

	for _, sale := range sales {
		for _, item := range sale.LineItems {
			key, brand, series := ResolveLineItem(item, separator)
			if key == "" {
				continue
			}

			qty := utils.ToNumber(item.Quantity)
			if qty < 0 {
				warnings = append(warnings, Warning{
					ProductKey: key,
					Code:       WarningNegativeQuantity,
					Message:    fmt.Sprintf("negative quantity %v in transaction %s counted as 0", qty, sale.TransactionID),
				})
				qty = 0
			}

			if _, seen := idx.totals[key]; !seen {
				idx.keys = append(idx.keys, key)
				idx.labels[key] = [2]string{brand, series}
			}
			idx.totals[key] += qty

			details = append(details, SalesDetail{
				ProductKey:    key,
				Brand:         brand,
				Series:        series,
				Quantity:      qty,
				SaleDate:      sale.Date,
				TransactionID: sale.TransactionID,
				Customer:      sale.Customer,
			})
		}
	}

	return idx, details, warnings
}

// label returns the brand and series first seen for a sales key.
func (i *SalesIndex) label(key string) (brand, series string) {
	l := i.labels[key]
	return l[0], l[1]
}
