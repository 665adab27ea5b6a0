// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Budget
// model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gesol/go-solar-backend/internal/domain"
)

// BudgetRow carries the fields of one budget request as decided by the
// service layer: raw client inputs plus the server-recomputed financial
// estimate in integer centavos. ID and CreatedAt are assigned here.
type BudgetRow struct {
	Name                         string
	Email                        string
	Phone                        string
	MonthlyConsumptionKwh        int
	RoofAreaM2                   int
	RoofType                     string
	Location                     string
	EstimatedCostCents           int64
	EstimatedMonthlySavingsCents int64
	PaybackPeriodMonths          int
}

// CreateBudget inserts a new budget request. The row ID is a randomly
// generated UUID and CreatedAt is set to UTC at insert time.
//
// On success, it returns the persisted Budget. On failure, it returns a DB
// error.
func CreateBudget(ctx context.Context, db *gorm.DB, in BudgetRow) (*domain.Budget, error) {
	b := &domain.Budget{
		ID:                           uuid.NewString(),
		Name:                         in.Name,
		Email:                        in.Email,
		Phone:                        in.Phone,
		MonthlyConsumptionKwh:        in.MonthlyConsumptionKwh,
		RoofAreaM2:                   in.RoofAreaM2,
		RoofType:                     in.RoofType,
		Location:                     in.Location,
		EstimatedCostCents:           in.EstimatedCostCents,
		EstimatedMonthlySavingsCents: in.EstimatedMonthlySavingsCents,
		PaybackPeriodMonths:          in.PaybackPeriodMonths,
		CreatedAt:                    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

// ListBudgets returns all budget requests in insertion order (created_at
// ascending, id as a tiebreak).
func ListBudgets(ctx context.Context, db *gorm.DB) ([]domain.Budget, error) {
	var out []domain.Budget
	err := db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

// CountBudgets returns the total number of budget requests.
func CountBudgets(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.Budget{}).Count(&n).Error
	return n, err
}
