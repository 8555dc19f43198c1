package reconciliation

import (
	"context"
	"errors"

	"sales-reconciler/core/reconcile"
)

// ErrSourceUnavailable wraps every failure to obtain sales or stock records.
var ErrSourceUnavailable = errors.New("database unavailable")

// Source supplies the two record sets the engine compares.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	// FetchSales returns sale records whose date falls inside rng (all when rng is nil).
	FetchSales(ctx context.Context, rng *reconcile.DateRange) ([]reconcile.SaleRecord, error)
	// FetchStock returns the current stock ledger snapshot. It is never date filtered.
	FetchStock(ctx context.Context) ([]reconcile.StockLedgerEntry, error)
}
