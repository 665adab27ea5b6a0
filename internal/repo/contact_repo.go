// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Contact
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only persistence
// and query composition. Field validation happens in the services package;
// the NOT NULL / CHECK constraints in the schema are the last line of
// defense.
//
// Error semantics:
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated for the service layer to translate.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gesol/go-solar-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateContact inserts a new contact-form submission. The row ID is a
// randomly generated UUID and CreatedAt is set to UTC at insert time; both
// are server-assigned regardless of input.
//
// On success, it returns the persisted Contact. On failure, it returns a DB
// error.
func CreateContact(ctx context.Context, db *gorm.DB, name, email, phone, subject, message string) (*domain.Contact, error) {
	c := &domain.Contact{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Subject:   subject,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// ListContacts returns all contact submissions in insertion order
// (created_at ascending, id as a tiebreak so output is stable for rows
// sharing a timestamp).
func ListContacts(ctx context.Context, db *gorm.DB) ([]domain.Contact, error) {
	var out []domain.Contact
	err := db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

// CountContacts returns the total number of contact submissions.
func CountContacts(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.Contact{}).Count(&n).Error
	return n, err
}
