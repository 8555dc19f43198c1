package reconciliation_test

import (
	"testing"
	"time"

	"sales-reconciler/core/database"
	"sales-reconciler/core/reconcile"
	"sales-reconciler/feature/reconciliation"
	"sales-reconciler/feature/reconciliation/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func day(d int) time.Time {
	return time.Date(2026, 1, d, 10, 0, 0, 0, time.UTC)
}

// newTestDB opens an in-memory database seeded with a small, partly inconsistent data set:
// AGS_N70 is synced, Osaka_IPS-700 is undercounted, Exide_DIN66 was never sold,
// Fujika_FX200 appears only in sales.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, reconciliation.Migrate(db))

	sales := []reconcile.SaleRecord{
		{TransactionID: "TX-1", Date: day(3), Customer: "Budi", LineItems: []reconcile.LineItem{
			{Brand: "AGS", Series: "N70", Quantity: 2},
			{BatteryDetails: &reconcile.BatteryDetails{Brand: "Osaka", Series: "IPS-700"}, Quantity: "1"},
		}},
		{TransactionID: "TX-2", Date: day(10), Customer: "Sari", LineItems: []reconcile.LineItem{
			{Brand: "AGS", Series: "N70", Quantity: 1},
		}},
		{TransactionID: "TX-3", Date: day(20), Customer: "Andi", LineItems: []reconcile.LineItem{
			{Brand: "Fujika", Series: "FX200", Quantity: 4},
		}},
	}
	for _, record := range sales {
		row, err := models.NewSale(record)
		require.NoError(t, err)
		require.NoError(t, db.Create(&row).Error)
	}

	stock := []reconcile.StockLedgerEntry{
		{Brand: "AGS", SeriesEntries: []reconcile.SeriesEntry{{Series: "N70", SoldCount: 3, InStock: 7}}},
		{Brand: "Osaka", SeriesEntries: []reconcile.SeriesEntry{{Series: "IPS-700", SoldCount: 9}}},
		{Brand: "Exide", SeriesEntries: []reconcile.SeriesEntry{{Series: "DIN66", SoldCount: 0}}},
	}
	for _, entry := range stock {
		row, err := models.NewStockLedger(entry)
		require.NoError(t, err)
		require.NoError(t, db.Create(&row).Error)
	}

	return db
}
