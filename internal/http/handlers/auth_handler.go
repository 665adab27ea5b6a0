// Auth HTTP handlers.
//
// Login is delegated to an external OAuth server; this service only reads the
// signed session cookie (verified by middleware.Session) and exposes:
//   - GET  /auth/me      (current user, or null when anonymous)
//   - POST /auth/logout  (clear the session cookie)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gesol/go-solar-backend/internal/http/middleware"
	"github.com/gesol/go-solar-backend/internal/repo"
)

// Me godoc
// @ID          authMe
// @Summary     Current user
// @Description Returns the user referenced by the session cookie, or null when there is no valid session.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} domain.User
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /auth/me [get]
func (h *Handlers) Me(c *gin.Context) {
	uid := middleware.SessionUserID(c)
	if uid == "" {
		ok(c, http.StatusOK, nil) // anonymous: body is literal null
		return
	}

	u, err := h.userSvc.Get(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// Valid cookie but the account is gone upstream.
			ok(c, http.StatusOK, nil)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "failed to load user")
		return
	}
	ok(c, http.StatusOK, u)
}

// Logout godoc
// @ID          authLogout
// @Summary     Log out
// @Description Clears the session cookie. Always succeeds, even without a session.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} handlers.SubmitResponse
// @Router      /auth/logout [post]
func (h *Handlers) Logout(c *gin.Context) {
	// Expire the cookie immediately. Secure flag follows the request scheme
	// so local HTTP development still works.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", c.Request.TLS != nil, true)
	ok(c, http.StatusOK, SubmitResponse{Success: true, Message: "Sessão encerrada"})
}
