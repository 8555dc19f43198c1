package reconcile

import "time"

// BatteryDetails is the nested product identity some sale documents carry
// instead of (or in addition to) the direct brand/series fields.
type BatteryDetails struct {
	Brand  string `json:"brand"`
	Series string `json:"series"`
}

// LineItem is one product line of a sale as it arrives from upstream.
// Quantity is kept loosely typed and coerced during indexing.
type LineItem struct {
	Brand          string          `json:"brand"`
	Series         string          `json:"series"`
	BatteryDetails *BatteryDetails `json:"batteryDetails,omitempty"`
	Quantity       any             `json:"quantity"`
}

// SaleRecord represents one completed transaction.
type SaleRecord struct {
	TransactionID string     `json:"transactionId"`
	Date          time.Time  `json:"date"`
	Customer      string     `json:"customer"`
	LineItems     []LineItem `json:"lineItems"`
}

// SeriesEntry is one series row of a stock ledger entry.
// Numeric fields are loosely typed and coerced during indexing.
type SeriesEntry struct {
	Series    string `json:"series"`
	SoldCount any    `json:"soldCount"`
	InStock   any    `json:"inStock"`
	UnitCost  any    `json:"unitCost"`
}

// StockLedgerEntry is the cumulative inventory state for one brand.
type StockLedgerEntry struct {
	Brand         string        `json:"brand"`
	SeriesEntries []SeriesEntry `json:"seriesEntries"`
}

// IssueKind classifies a reconciliation issue.
type IssueKind string

const (
	// IssueStockUndercounted means sales exceed the ledger's sold count.
	IssueStockUndercounted IssueKind = "stock-undercounted"
	// IssueStockOvercounted means the ledger's sold count exceeds sales.
	IssueStockOvercounted IssueKind = "stock-overcounted"
	// IssueMissingInStock means sales exist for a product with no ledger row.
	IssueMissingInStock IssueKind = "missing-in-stock"
	// IssueMissingInSales means the ledger records sold units but no sale matches.
	IssueMissingInSales IssueKind = "missing-in-sales"
)

// Severity ranks an issue for operator triage.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
)

// Issue is one detected anomaly for a product key.
type Issue struct {
	ProductKey      string    `json:"productKey"`
	BrandIdentifier string    `json:"brandIdentifier"`
	SeriesKey       string    `json:"seriesKey,omitempty"`
	StockSoldCount  float64   `json:"stockSoldCount"`
	ActualSales     float64   `json:"actualSales"`
	Difference      float64   `json:"difference"`
	IssueKind       IssueKind `json:"issueKind"`
	Severity        Severity  `json:"severity"`
	InStock         *float64  `json:"inStock,omitempty"`
	UnitCost        *float64  `json:"unitCost,omitempty"`
}

// SalesDetail is a flat per-line-item row used to trace which transactions
// contributed to a product's sales total.
type SalesDetail struct {
	ProductKey    string    `json:"productKey"`
	Brand         string    `json:"brand"`
	Series        string    `json:"series"`
	Quantity      float64   `json:"quantity"`
	SaleDate      time.Time `json:"saleDate"`
	TransactionID string    `json:"transactionId"`
	Customer      string    `json:"customer"`
}

// WarningCode identifies the kind of data-integrity anomaly a warning reports.
type WarningCode string

const (
	// WarningNegativeSoldCount is emitted when a stored sold count is below zero.
	WarningNegativeSoldCount WarningCode = "negative-sold-count"
	// WarningNegativeQuantity is emitted when a sale line item quantity is below zero.
	WarningNegativeQuantity WarningCode = "negative-quantity"
)

// Warning is a structured diagnostic produced while indexing.
// Warnings never abort a reconciliation.
type Warning struct {
	ProductKey string      `json:"productKey"`
	Code       WarningCode `json:"code"`
	Message    string      `json:"message"`
}

// Verification types reported in the summary.
const (
	VerificationAllTime   = "All Time"
	VerificationDateRange = "Date Range"
)

// Summary provides aggregate counts for a reconciliation.
type Summary struct {
	TotalProducts      int    `json:"totalProducts"`
	SyncedProducts     int    `json:"syncedProducts"`
	MismatchedProducts int    `json:"mismatchedProducts"`
	MissingInStock     int    `json:"missingInStock"`
	MissingInSales     int    `json:"missingInSales"`
	TotalSalesRecords  int    `json:"totalSalesRecords"`
	TotalStockRecords  int    `json:"totalStockRecords"`
	VerificationType   string `json:"verificationType"`
}

// Report is the serializable result of one reconciliation.
type Report struct {
	SyncSummary      Summary       `json:"syncSummary"`
	SyncIssues       []Issue       `json:"syncIssues"`
	SalesDetails     []SalesDetail `json:"salesDetails"`
	Warnings         []Warning     `json:"warnings"`
	IsFullySynced    bool          `json:"isFullySynced"`
	VerificationDate string        `json:"verificationDate"`
	DateRange        *DateRange    `json:"dateRange,omitempty"`
}

// WithDateRange labels the report with the range the sales were restricted to.
// A nil or unbounded range labels the report as covering all time.
func (r *Report) WithDateRange(rng *DateRange) *Report {
	if rng.IsZero() {
		r.DateRange = nil
		r.SyncSummary.VerificationType = VerificationAllTime
		return r
	}
	r.DateRange = rng
	r.SyncSummary.VerificationType = VerificationDateRange
	return r
}
