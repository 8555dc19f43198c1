package reconcile

import (
	"math"
	"time"
)

// Engine compares sales activity against the stock ledger.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	threshold float64
	separator string
	now       func() time.Time
}

// NewEngine creates an engine from the given settings.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		threshold: cfg.HighSeverityThreshold,
		separator: cfg.KeySeparator,
		now:       time.Now,
	}
}

// WithClock replaces the clock used for the verification date stamp.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	cp := *e
	cp.now = now
	return &cp
}

// Reconcile runs a reconciliation with DefaultConfig.
func Reconcile(sales []SaleRecord, stock []StockLedgerEntry) *Report {
	return NewEngine(DefaultConfig()).Reconcile(sales, stock)
}

// Reconcile builds both indices and cross-compares them.
// Stock keys are reported first in first-seen order, then sales-only keys,
// so identical input always yields identical output apart from the date stamp.
func (e *Engine) Reconcile(sales []SaleRecord, stock []StockLedgerEntry) *Report {
	stockIdx, warnings := BuildStockIndex(stock, e.separator)
	salesIdx, details, salesWarnings := BuildSalesIndex(sales, e.separator)
	warnings = append(warnings, salesWarnings...)
	if warnings == nil {
		warnings = []Warning{}
	}

	summary := Summary{
		TotalSalesRecords: len(sales),
		TotalStockRecords: len(stock),
		VerificationType:  VerificationAllTime,
	}
	issues := make([]Issue, 0)

	for _, key := range stockIdx.Keys() {
		facts, _ := stockIdx.Get(key)
		summary.TotalProducts++

		actual, inSales := salesIdx.Total(key)
		if !inSales {
			if facts.StockSoldCount > 0 {
				summary.MissingInSales++
				issues = append(issues, e.stockIssue(key, facts, 0, IssueMissingInSales, SeverityMedium))
			} else {
				summary.SyncedProducts++
			}
			continue
		}

		if actual == facts.StockSoldCount {
			summary.SyncedProducts++
			continue
		}

		summary.MismatchedProducts++
		kind := IssueStockOvercounted
		if actual > facts.StockSoldCount {
			kind = IssueStockUndercounted
		}
		issues = append(issues, e.stockIssue(key, facts, actual, kind, e.severity(actual-facts.StockSoldCount)))
	}

	for _, key := range salesIdx.Keys() {
		if _, inStock := stockIdx.Get(key); inStock {
			continue
		}
		actual, _ := salesIdx.Total(key)
		brand, series := salesIdx.label(key)
		summary.MissingInStock++
		issues = append(issues, Issue{
			ProductKey:      key,
			BrandIdentifier: brand,
			SeriesKey:       series,
			StockSoldCount:  0,
			ActualSales:     actual,
			Difference:      actual,
			IssueKind:       IssueMissingInStock,
			Severity:        SeverityHigh,
		})
	}

	return &Report{
		SyncSummary:      summary,
		SyncIssues:       issues,
		SalesDetails:     details,
		Warnings:         warnings,
		IsFullySynced:    len(issues) == 0,
		VerificationDate: e.now().UTC().Format(time.RFC3339),
	}
}

func (e *Engine) stockIssue(key string, facts StockFacts, actual float64, kind IssueKind, sev Severity) Issue {
	inStock := facts.InStock
	unitCost := facts.UnitCost
	return Issue{
		ProductKey:      key,
		BrandIdentifier: facts.BrandIdentifier,
		SeriesKey:       facts.SeriesKey,
		StockSoldCount:  facts.StockSoldCount,
		ActualSales:     actual,
		Difference:      actual - facts.StockSoldCount,
		IssueKind:       kind,
		Severity:        sev,
		InStock:         &inStock,
		UnitCost:        &unitCost,
	}
}

func (e *Engine) severity(difference float64) Severity {
	if math.Abs(difference) > e.threshold {
		return SeverityHigh
	}
	return SeverityMedium
}
