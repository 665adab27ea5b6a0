// Package notify implements the owner-notification gateway: a best-effort
// alert sent to the business owner whenever a submission is stored.
//
// Semantics: persistence happens-before notification, and a notification
// failure must never surface to the end user once the record is durable.
// Callers therefore treat every error returned here as log-only.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Notifier delivers a short alert to the business owner. Implementations must
// be safe for concurrent use.
type Notifier interface {
	Notify(ctx context.Context, title, content string) error
}

// Webhook posts alerts as JSON to a configured endpoint (the hosting
// platform's notification API in production).
type Webhook struct {
	// URL is the endpoint receiving the alert payload.
	URL string
	// OwnerID routes the alert to the right recipient on the platform side.
	OwnerID string
	// Client is the HTTP client used for delivery. A short timeout is
	// recommended; delivery runs off the request path but should not linger.
	Client *http.Client
}

// NewWebhook builds a Webhook notifier with the given endpoint, owner id, and
// per-delivery timeout.
func NewWebhook(url, ownerID string, timeout time.Duration) *Webhook {
	return &Webhook{
		URL:     url,
		OwnerID: ownerID,
		Client:  &http.Client{Timeout: timeout},
	}
}

type webhookPayload struct {
	OwnerID string `json:"owner_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Notify posts {owner_id, title, content} to the configured URL. Any non-2xx
// response is an error. The caller decides what to do with failures; per the
// gateway contract they are logged and swallowed.
func (w *Webhook) Notify(ctx context.Context, title, content string) error {
	body, err := json.Marshal(webhookPayload{OwnerID: w.OwnerID, Title: title, Content: content})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notify: webhook returned %s", resp.Status)
	}
	return nil
}

// Nop is a Notifier that does nothing. Used when no webhook is configured
// (local development) so services can call the gateway unconditionally.
type Nop struct{}

// Notify implements Notifier as a no-op.
func (Nop) Notify(context.Context, string, string) error { return nil }

// FromConfig returns a Webhook when url is set, otherwise Nop. Logs which
// mode was selected so a misconfigured production deploy is visible at boot.
func FromConfig(url, ownerID string, timeout time.Duration) Notifier {
	if url == "" {
		log.Warn().Msg("owner notifications disabled: NOTIFY_WEBHOOK_URL not set")
		return Nop{}
	}
	log.Info().Str("url", url).Msg("owner notifications via webhook")
	return NewWebhook(url, ownerID, timeout)
}
