// Package reconciliation exposes the sales-to-stock reconciliation over HTTP and the CLI.
//
// Sales and stock ledgers are read through a Source (the application database or JSON
// exports in object storage), compared by the core reconcile engine, and optionally
// archived back to storage.
package reconciliation
