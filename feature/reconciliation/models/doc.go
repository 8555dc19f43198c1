// Package models defines the gorm tables reconciliation reads.
package models
