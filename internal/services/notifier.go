package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gesol/go-solar-backend/internal/notify"
)

// notifyDeadline bounds a single owner-alert delivery attempt once it has
// been handed off the request path.
const notifyDeadline = 10 * time.Second

// notifyOwner dispatches an owner alert off the request path. It is called
// strictly after a successful durable write; delivery failures are logged and
// swallowed so they can never affect the caller's result.
func notifyOwner(n notify.Notifier, title, content string) {
	if n == nil {
		return
	}
	go func() {
		// Detached from the request context: the alert should still go out
		// after the handler has responded.
		ctx, cancel := context.WithTimeout(context.Background(), notifyDeadline)
		defer cancel()
		if err := n.Notify(ctx, title, content); err != nil {
			log.Warn().Err(err).Str("title", title).Msg("owner notification failed")
		}
	}()
}
