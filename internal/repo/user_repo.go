// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User model,
// consumed by the session/auth boundary.
package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gesol/go-solar-backend/internal/domain"
)

// GetUser fetches a user by its opaque ID. Returns ErrNotFound when the row
// does not exist.
func GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// TouchLastSignedIn bumps last_signed_in to now (UTC) for the given user.
// Missing rows are a no-op; the session middleware calls this on each
// authenticated request and the user may have been removed upstream.
func TouchLastSignedIn(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Update("last_signed_in", time.Now().UTC()).Error
}
