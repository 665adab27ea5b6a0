// Package services – ContactService
//
// This file implements the ContactService, which governs contact-form
// submissions: field validation (defense in depth beyond handler-level
// binding), the durable write, and the best-effort owner alert. Validation
// sentinels (ErrNameRequired, ErrInvalidEmail, …) are returned for
// predictable cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/gesol/go-solar-backend/internal/domain"
	"github.com/gesol/go-solar-backend/internal/notify"
	"github.com/gesol/go-solar-backend/internal/repo"
)

// emailRE approximates the address syntax accepted by the public form:
// something@domain.tld, no whitespace. Intentionally loose; deliverability
// is not this system's problem.
var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s passes the submission email syntax check.
func ValidEmail(s string) bool { return emailRE.MatchString(s) }

// ContactInput carries the raw fields of one contact-form submission.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// ContactService implements the use-cases around contact messages. The
// service is context-aware and safe for concurrent use.
type ContactService struct {
	// DB is the database handle used for all contact operations.
	DB *gorm.DB
	// Notifier receives the owner alert after each stored submission.
	Notifier notify.Notifier
}

// Submit validates in, persists a new contact message, and dispatches the
// owner alert.
//
// Semantics:
//   - Every field is required; email must match address syntax. On a
//     validation failure the matching sentinel is returned and nothing is
//     written.
//   - The write happens-before the notification; if the write fails, no
//     alert is sent and the DB error is returned.
//   - Alert delivery is best-effort and asynchronous; its outcome never
//     affects the returned values.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*domain.Contact, error) {
	if err := validateContact(in); err != nil {
		return nil, err
	}

	c, err := repo.CreateContact(ctx, s.DB, in.Name, in.Email, in.Phone, in.Subject, in.Message)
	if err != nil {
		return nil, err
	}

	notifyOwner(s.Notifier,
		"Novo contato recebido",
		fmt.Sprintf("%s (%s) entrou em contato: %s", in.Name, in.Email, in.Subject),
	)
	return c, nil
}

// List returns all stored contact messages in insertion order.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	return repo.ListContacts(ctx, s.DB)
}

func validateContact(in ContactInput) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return ErrNameRequired
	case !ValidEmail(in.Email):
		return ErrInvalidEmail
	case strings.TrimSpace(in.Phone) == "":
		return ErrPhoneRequired
	case strings.TrimSpace(in.Subject) == "":
		return ErrSubjectRequired
	case strings.TrimSpace(in.Message) == "":
		return ErrMessageRequired
	}
	return nil
}
