package reconcile

import "sales-reconciler/core/utils"

// ProductKey joins a brand and a series into the key shared by both record sets.
func ProductKey(brand, series, separator string) string {
	return brand + separator + series
}

// ResolveLineItem resolves the canonical brand, series and product key of a line item.
// Direct fields win over the nested battery details. The key is empty when neither
// brand nor series can be resolved.
func ResolveLineItem(item LineItem, separator string) (key, brand, series string) {
	var nestedBrand, nestedSeries string
	if item.BatteryDetails != nil {
		nestedBrand = item.BatteryDetails.Brand
		nestedSeries = item.BatteryDetails.Series
	}

	brand = utils.FirstNonEmpty(item.Brand, nestedBrand)
	series = utils.FirstNonEmpty(item.Series, nestedSeries)
	if brand == "" && series == "" {
		return "", "", ""
	}
	return ProductKey(brand, series, separator), brand, series
}

// ResolveSeriesEntry resolves the product key of a stock ledger row.
func ResolveSeriesEntry(brand string, entry SeriesEntry, separator string) (key, resolvedBrand, series string) {
	resolvedBrand = utils.FirstNonEmpty(brand)
	series = utils.FirstNonEmpty(entry.Series)
	if resolvedBrand == "" && series == "" {
		return "", "", ""
	}
	return ProductKey(resolvedBrand, series, separator), resolvedBrand, series
}
