// Package services – UserService
//
// This file implements the UserService, the thin read side of the auth
// boundary. Accounts are created by the external OAuth server; this service
// only resolves session subjects to stored user records.
package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gesol/go-solar-backend/internal/domain"
	"github.com/gesol/go-solar-backend/internal/repo"
)

// UserService resolves user records for authenticated requests.
type UserService struct {
	// DB is the database handle used for all user lookups.
	DB *gorm.DB
}

// Get fetches the user with the given ID and bumps its last_signed_in
// timestamp. Returns repo.ErrNotFound when no such user exists, which callers
// treat as an anonymous session (the account may have been removed upstream).
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := repo.GetUser(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	if err := repo.TouchLastSignedIn(ctx, s.DB, id); err != nil {
		// The lookup already succeeded; a failed touch is not worth failing
		// the request over.
		log.Warn().Err(err).Str("user_id", id).Msg("failed to update last_signed_in")
	}
	return u, nil
}
