// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate queries used by the
// stats endpoint. Each function is context-aware and safe to call from
// services or handlers.
package repo

import (
	"context"

	"gorm.io/gorm"
)

// SubmissionStats is a snapshot of how many leads of each kind have been
// stored so far.
type SubmissionStats struct {
	Contacts int64 `json:"contacts"`
	Budgets  int64 `json:"budgets"`
}

// Stats returns the total number of contact and budget submissions. Two
// lightweight COUNT queries; both tables are insert-only so the numbers only
// ever grow.
func Stats(ctx context.Context, db *gorm.DB) (SubmissionStats, error) {
	var s SubmissionStats
	var err error
	if s.Contacts, err = CountContacts(ctx, db); err != nil {
		return SubmissionStats{}, err
	}
	if s.Budgets, err = CountBudgets(ctx, db); err != nil {
		return SubmissionStats{}, err
	}
	return s, nil
}
