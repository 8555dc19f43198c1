package reconcile

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaleRecord_UnmarshalLenient(t *testing.T) {
	var record SaleRecord
	err := json.Unmarshal([]byte(`{
		"transactionId": 1042,
		"date": "2026-01-04",
		"customer": "Budi",
		"lineItems": [
			{"brand": "AGS", "series": 70, "quantity": "2"},
			{"batteryDetails": {"brand": "Osaka", "series": 700}, "quantity": 1}
		]
	}`), &record)
	require.NoError(t, err)

	assert.Equal(t, "1042", record.TransactionID)
	assert.True(t, time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC).Equal(record.Date))
	require.Len(t, record.LineItems, 2)
	assert.Equal(t, "70", record.LineItems[0].Series)
	assert.Equal(t, "2", record.LineItems[0].Quantity)
	assert.Equal(t, "700", record.LineItems[1].BatteryDetails.Series)

	key, _, _ := ResolveLineItem(record.LineItems[0], "_")
	assert.Equal(t, "AGS_70", key)
}

func TestSaleRecord_UnmarshalDates(t *testing.T) {
	var record SaleRecord
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2026-01-04T10:30:00+07:00"}`), &record))
	assert.True(t, time.Date(2026, 1, 4, 3, 30, 0, 0, time.UTC).Equal(record.Date))

	record = SaleRecord{}
	require.NoError(t, json.Unmarshal([]byte(`{"transactionId":"TX-1"}`), &record))
	assert.True(t, record.Date.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"date":"last tuesday"}`), &record))
	assert.Error(t, json.Unmarshal([]byte(`{"date":12}`), &record))
}

func TestStockLedgerEntry_UnmarshalLenient(t *testing.T) {
	var entry StockLedgerEntry
	err := json.Unmarshal([]byte(`{"brand":"AGS","seriesEntries":[{"series":55,"soldCount":"4","unitCost":null}]}`), &entry)
	require.NoError(t, err)

	assert.Equal(t, "AGS", entry.Brand)
	require.Len(t, entry.SeriesEntries, 1)
	assert.Equal(t, "55", entry.SeriesEntries[0].Series)
	assert.Equal(t, "4", entry.SeriesEntries[0].SoldCount)
}
