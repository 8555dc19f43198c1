package reconciliation_test

import (
	"testing"

	"sales-reconciler/core/database"
	"sales-reconciler/feature/reconciliation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSchema(t *testing.T) {
	t.Run("Migrated", func(t *testing.T) {
		report, err := reconciliation.CheckSchema(newTestDB(t))
		require.NoError(t, err)
		assert.True(t, report.Valid)
		require.Len(t, report.Tables, 2)
		assert.Equal(t, "sales", report.Tables[0].Table)
		assert.Empty(t, report.Tables[0].Missing)
	})

	t.Run("MissingColumns", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		require.NoError(t, db.Exec("CREATE TABLE sales (id INTEGER PRIMARY KEY, sale_date DATETIME)").Error)

		report, err := reconciliation.CheckSchema(db)
		require.NoError(t, err)
		assert.False(t, report.Valid)
		assert.Equal(t, []string{"transaction_id", "customer_name", "line_items"}, report.Tables[0].Missing)
		assert.Equal(t, []string{"id", "brand", "series"}, report.Tables[1].Missing)
	})

	t.Run("NoDatabase", func(t *testing.T) {
		_, err := reconciliation.CheckSchema(nil)
		assert.ErrorIs(t, err, reconciliation.ErrSourceUnavailable)
		assert.ErrorIs(t, reconciliation.Migrate(nil), reconciliation.ErrSourceUnavailable)
	})
}
