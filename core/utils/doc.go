// Package utils provides common utility functions for the sales-reconciler application.
// It holds the single lenient coercion rule used for every numeric field that comes
// from loosely typed upstream documents, plus small string helpers shared by packages
// that normalize those documents.
package utils
