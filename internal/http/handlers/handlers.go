// Handler wiring and service contracts.
//
// Handlers depend on abstract service interfaces to keep transport concerns
// separate from business logic; implementations live in internal/services.
// All implementations must be safe for concurrent use and honor the provided
// context for cancellation and timeouts.
package handlers

import (
	"context"

	"github.com/gesol/go-solar-backend/internal/domain"
	"github.com/gesol/go-solar-backend/internal/estimator"
	"github.com/gesol/go-solar-backend/internal/repo"
	"github.com/gesol/go-solar-backend/internal/services"
)

// ContactService defines contact-form operations consumed by HTTP handlers.
type ContactService interface {
	// Submit validates and stores a contact message, then alerts the owner.
	Submit(ctx context.Context, in services.ContactInput) (*domain.Contact, error)
	// List returns all stored contact messages in insertion order.
	List(ctx context.Context) ([]domain.Contact, error)
}

// BudgetService defines quote-flow operations consumed by HTTP handlers.
type BudgetService interface {
	// Calculate runs a what-if estimate without persisting anything.
	Calculate(ctx context.Context, monthlyConsumptionKwh, roofAreaM2 float64) (estimator.Result, error)
	// Submit validates and stores a quote request, then alerts the owner.
	Submit(ctx context.Context, in services.BudgetInput) (*domain.Budget, error)
	// List returns all stored budget requests in insertion order.
	List(ctx context.Context) ([]domain.Budget, error)
	// Stats returns submission counters.
	Stats(ctx context.Context) (repo.SubmissionStats, error)
}

// UserService resolves session subjects to user records.
type UserService interface {
	// Get fetches a user by its opaque ID; repo.ErrNotFound when missing.
	Get(ctx context.Context, id string) (*domain.User, error)
}

// Handlers groups the HTTP endpoints for contacts, budgets, and auth.
type Handlers struct {
	contactSvc ContactService
	budgetSvc  BudgetService
	userSvc    UserService
	cookieName string
}

// New constructs a Handlers instance bound to the given services.
// cookieName is the session cookie cleared by Logout.
func New(contactSvc ContactService, budgetSvc BudgetService, userSvc UserService, cookieName string) *Handlers {
	return &Handlers{
		contactSvc: contactSvc,
		budgetSvc:  budgetSvc,
		userSvc:    userSvc,
		cookieName: cookieName,
	}
}
