package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStockIndex(t *testing.T) {
	stock := []StockLedgerEntry{
		{Brand: "Osaka", SeriesEntries: []SeriesEntry{
			{Series: "IPS-700", SoldCount: "10", InStock: nil, UnitCost: "abc"},
			{Series: "IPS-1000", SoldCount: -2, InStock: 5, UnitCost: 12.5},
			{Series: "", SoldCount: 1},
		}},
		{Brand: "", SeriesEntries: []SeriesEntry{{Series: "", SoldCount: 4}}},
	}

	idx, warnings := BuildStockIndex(stock, "_")

	assert.Equal(t, []string{"Osaka_IPS-700", "Osaka_IPS-1000", "Osaka_"}, idx.Keys())
	assert.Equal(t, 3, idx.Len())

	facts, ok := idx.Get("Osaka_IPS-700")
	require.True(t, ok)
	assert.Equal(t, StockFacts{BrandIdentifier: "Osaka", SeriesKey: "IPS-700", StockSoldCount: 10}, facts)

	facts, ok = idx.Get("Osaka_IPS-1000")
	require.True(t, ok)
	assert.Equal(t, 0.0, facts.StockSoldCount)
	assert.Equal(t, 5.0, facts.InStock)
	assert.Equal(t, 12.5, facts.UnitCost)

	require.Len(t, warnings, 1)
	assert.Equal(t, WarningNegativeSoldCount, warnings[0].Code)
	assert.Equal(t, "Osaka_IPS-1000", warnings[0].ProductKey)
}

func TestBuildSalesIndex(t *testing.T) {
	day := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	sales := []SaleRecord{
		{TransactionID: "T1", Date: day, Customer: "Ali Motors", LineItems: []LineItem{
			{Brand: "AGS", Series: "N70", Quantity: "2"},
			{BatteryDetails: &BatteryDetails{Brand: "AGS", Series: "N70"}, Quantity: 3},
			{Quantity: 9},
		}},
		{TransactionID: "T2", Date: day.AddDate(0, 0, 1), LineItems: []LineItem{
			{Brand: "Exide", Series: "DIN66", Quantity: nil},
			{Brand: "Exide", Series: "DIN66", Quantity: -4},
		}},
	}

	idx, details, warnings := BuildSalesIndex(sales, "_")

	assert.Equal(t, []string{"AGS_N70", "Exide_DIN66"}, idx.Keys())
	total, ok := idx.Total("AGS_N70")
	require.True(t, ok)
	assert.Equal(t, 5.0, total)

	total, ok = idx.Total("Exide_DIN66")
	require.True(t, ok)
	assert.Equal(t, 0.0, total)

	_, ok = idx.Total("missing")
	assert.False(t, ok)

	require.Len(t, details, 4)
	assert.Equal(t, SalesDetail{
		ProductKey:    "AGS_N70",
		Brand:         "AGS",
		Series:        "N70",
		Quantity:      3,
		SaleDate:      day,
		TransactionID: "T1",
		Customer:      "Ali Motors",
	}, details[1])

	require.Len(t, warnings, 1)
	assert.Equal(t, WarningNegativeQuantity, warnings[0].Code)
	assert.Contains(t, warnings[0].Message, "T2")
}

func TestBuildSalesIndex_Empty(t *testing.T) {
	idx, details, warnings := BuildSalesIndex(nil, "_")
	assert.Equal(t, 0, idx.Len())
	assert.NotNil(t, details)
	assert.Empty(t, details)
	assert.Empty(t, warnings)
}
