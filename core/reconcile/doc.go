// Package reconcile detects drift between two independently maintained records of
// how much of a product has been sold: the sales transactions and the stock ledger.
//
// The package performs no I/O. Callers fetch both record sets (restricting sales to a
// date range if one was requested) and hand them to an Engine, which returns a Report.
//
// # Architecture
//
// 1. Normalization: ResolveLineItem and ResolveSeriesEntry turn loosely shaped upstream
//    documents into a canonical product key (brand + separator + series). Line items may
//    carry their identity directly or under a nested battery details object; the first
//    non-empty value wins.
//
// 2. Index Builder: BuildStockIndex and BuildSalesIndex traverse each record set once.
//    Numeric fields go through utils.ToNumber, so malformed values count as 0. Negative
//    sold counts and quantities are clamped to 0 and reported as Warnings.
//
// 3. Cross-Comparator: Engine.Reconcile walks stock keys, then sales-only keys, and emits
//    one Issue per anomalous product:
//   - stock-undercounted / stock-overcounted: both sides know the product but disagree
//   - missing-in-stock: sales exist with no ledger row (always high severity)
//   - missing-in-sales: the ledger records sold units but nothing matches in sales
//
// 4. ReportCache: optional TTL cache with singleflight, used by the service layer.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(cfg.Reconcile)
//	report := engine.Reconcile(sales, stock).WithDateRange(rng)
//	if !report.IsFullySynced {
//	    for _, issue := range report.SyncIssues { ... }
//	}
package reconcile
