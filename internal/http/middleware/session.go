// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the session-cookie boundary. Login happens on an
// external OAuth server which issues an HS256-signed JWT in a cookie; this
// middleware verifies the signature and exposes the subject (user id) to
// handlers. A missing, expired, or tampered cookie simply leaves the request
// anonymous; every public endpoint works without a session, so there is no
// 401 path here.
package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// sessionUserKey is the Gin context key holding the authenticated user id.
const sessionUserKey = "sessionUserID"

// SessionOptions configures the Session middleware.
type SessionOptions struct {
	// CookieName is the cookie carrying the signed token.
	CookieName string
	// Secret is the HS256 signing key. Empty disables session parsing
	// entirely (all requests anonymous).
	Secret []byte
}

// Session returns a Gin middleware that verifies the session cookie and, on
// success, stores the token subject under the session context key. Invalid
// cookies are ignored, not rejected.
func Session(opt SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(opt.Secret) == 0 {
			c.Next()
			return
		}
		raw, err := c.Cookie(opt.CookieName)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return opt.Secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !tok.Valid {
			c.Next()
			return
		}

		if sub, err := tok.Claims.GetSubject(); err == nil && sub != "" {
			c.Set(sessionUserKey, sub)
		}
		c.Next()
	}
}

// SessionUserID returns the authenticated user id for the request, or ""
// when the request is anonymous.
func SessionUserID(c *gin.Context) string {
	if v, ok := c.Get(sessionUserKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// NewSessionToken mints a signed session token for userID. Used by tests and
// local tooling; production tokens come from the external auth server.
func NewSessionToken(secret []byte, userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
