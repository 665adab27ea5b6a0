package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SubmitResult mirrors the API's submission envelope.
type SubmitResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// apiError mirrors the API's error envelope for rejected requests.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ContactSubmission is the payload of POST /contact.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// BudgetSubmission is the payload of POST /budget. Derived financial fields
// are deliberately absent: the server recomputes them.
type BudgetSubmission struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	MonthlyConsumption int    `json:"monthly_consumption"`
	RoofArea           int    `json:"roof_area"`
	RoofType           string `json:"roof_type"`
	Location           string `json:"location"`
}

// Client is a minimal typed client for the lead API.
type Client struct {
	// BaseURL is the API root including the base path, e.g.
	// "http://localhost:8080/api/v1".
	BaseURL string
	// HTTPClient defaults to a client with a 15s timeout when nil.
	HTTPClient *http.Client
}

// NewClient returns a Client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SubmitContact posts a contact-form submission.
func (c *Client) SubmitContact(ctx context.Context, in ContactSubmission) (SubmitResult, error) {
	return c.post(ctx, "/contact", in)
}

// SubmitBudget posts a quote request.
func (c *Client) SubmitBudget(ctx context.Context, in BudgetSubmission) (SubmitResult, error) {
	return c.post(ctx, "/budget", in)
}

// post sends body as JSON and decodes either envelope. A 400 with a
// validation message is returned as a non-success SubmitResult so the caller
// can show the localized message; transport and server faults return an error.
func (c *Client) post(ctx context.Context, path string, body any) (SubmitResult, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return SubmitResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	hc := c.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	resp, err := hc.Do(req)
	if err != nil {
		return SubmitResult{}, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var out SubmitResult
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return SubmitResult{}, fmt.Errorf("decode response: %w", err)
		}
		return out, nil
	case resp.StatusCode == http.StatusBadRequest:
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			return SubmitResult{}, fmt.Errorf("request rejected (HTTP %d)", resp.StatusCode)
		}
		return SubmitResult{Success: false, Message: apiErr.Message}, nil
	default:
		return SubmitResult{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
}
