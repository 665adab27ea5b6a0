// Package services – BudgetService
//
// This file implements the BudgetService, which backs both halves of the
// two-step quote flow: the free "what-if" estimate (Calculate) and the
// committed quote request (Submit). The service always recomputes the
// financial estimate server-side from the raw consumption/area inputs and
// ignores any client-supplied derived values, so stored figures cannot be
// tampered with from the browser.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/gesol/go-solar-backend/internal/domain"
	"github.com/gesol/go-solar-backend/internal/estimator"
	"github.com/gesol/go-solar-backend/internal/notify"
	"github.com/gesol/go-solar-backend/internal/repo"
)

// BudgetInput carries the raw fields of one quote request. Client-computed
// financial fields are deliberately absent: the wire layer may accept them
// for compatibility with older clients, but they never reach this type.
type BudgetInput struct {
	Name                  string
	Email                 string
	Phone                 string
	MonthlyConsumptionKwh int
	RoofAreaM2            int
	RoofType              string
	Location              string
}

// BudgetService implements the use-cases around budget requests. The service
// is context-aware and safe for concurrent use.
type BudgetService struct {
	// DB is the database handle used for all budget operations.
	DB *gorm.DB
	// Notifier receives the owner alert after each stored submission.
	Notifier notify.Notifier
}

// Calculate runs the estimator for a what-if preview without persisting
// anything. Non-positive inputs map to the matching validation sentinel.
func (s *BudgetService) Calculate(_ context.Context, monthlyConsumptionKwh, roofAreaM2 float64) (estimator.Result, error) {
	res, err := estimator.Estimate(monthlyConsumptionKwh, roofAreaM2)
	if err != nil {
		if errors.Is(err, estimator.ErrInvalidInput) {
			if monthlyConsumptionKwh <= 0 {
				return estimator.Result{}, ErrInvalidConsumption
			}
			return estimator.Result{}, ErrInvalidRoofArea
		}
		return estimator.Result{}, err
	}
	return res, nil
}

// Submit validates in, recomputes the estimate from the raw inputs, persists
// a new budget request with minor-unit monetary fields, and dispatches the
// owner alert.
//
// Semantics:
//   - Required strings, positive consumption/area, and a known roof type;
//     on a validation failure the matching sentinel is returned and nothing
//     is written.
//   - Derived financials are the integer-cent rounding of the estimator's
//     output for the same inputs, never client-supplied numbers.
//   - The write happens-before the notification; alert delivery is
//     best-effort and asynchronous.
func (s *BudgetService) Submit(ctx context.Context, in BudgetInput) (*domain.Budget, error) {
	if err := validateBudget(in); err != nil {
		return nil, err
	}

	est, err := estimator.Estimate(float64(in.MonthlyConsumptionKwh), float64(in.RoofAreaM2))
	if err != nil {
		// Unreachable after validateBudget, kept as a hard stop.
		return nil, ErrInvalidConsumption
	}

	b, err := repo.CreateBudget(ctx, s.DB, repo.BudgetRow{
		Name:                         in.Name,
		Email:                        in.Email,
		Phone:                        in.Phone,
		MonthlyConsumptionKwh:        in.MonthlyConsumptionKwh,
		RoofAreaM2:                   in.RoofAreaM2,
		RoofType:                     in.RoofType,
		Location:                     in.Location,
		EstimatedCostCents:           estimator.ToCents(est.EstimatedCost),
		EstimatedMonthlySavingsCents: estimator.ToCents(est.EstimatedMonthlySavings),
		PaybackPeriodMonths:          est.PaybackPeriodMonths,
	})
	if err != nil {
		return nil, err
	}

	notifyOwner(s.Notifier,
		"Novo orçamento solicitado",
		fmt.Sprintf("%s solicitou orçamento para %dm² de telhado em %s (custo estimado %s)",
			in.Name, in.RoofAreaM2, in.Location, estimator.FormatBRL(b.EstimatedCostCents)),
	)
	return b, nil
}

// List returns all stored budget requests in insertion order.
func (s *BudgetService) List(ctx context.Context) ([]domain.Budget, error) {
	return repo.ListBudgets(ctx, s.DB)
}

// Stats returns submission counters for the stats endpoint.
func (s *BudgetService) Stats(ctx context.Context) (repo.SubmissionStats, error) {
	return repo.Stats(ctx, s.DB)
}

func validateBudget(in BudgetInput) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return ErrNameRequired
	case !ValidEmail(in.Email):
		return ErrInvalidEmail
	case strings.TrimSpace(in.Phone) == "":
		return ErrPhoneRequired
	case in.MonthlyConsumptionKwh <= 0:
		return ErrInvalidConsumption
	case in.RoofAreaM2 <= 0:
		return ErrInvalidRoofArea
	case !domain.ValidRoofType(in.RoofType):
		return ErrInvalidRoofType
	case strings.TrimSpace(in.Location) == "":
		return ErrLocationRequired
	}
	return nil
}
