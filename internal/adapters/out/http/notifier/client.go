// Package notifier implements the notifier port against the notification
// service's REST API.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// Client posts email notifications to the notification service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a notifier client. The API key authenticates this
// service to the notification sender. If httpClient is nil a default client
// with a 5 second timeout is used.
func NewClient(baseURL, apiKey string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, errs.NewValueIsRequiredError("apiKey")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}, nil
}

var _ ports.Notifier = (*Client)(nil)

type messageDTO struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// Send dispatches an email notification.
func (c *Client) Send(ctx context.Context, to, subject, body string) error {
	if to == "" {
		return errs.NewValueIsRequiredError("to")
	}
	if subject == "" {
		return errs.NewValueIsRequiredError("subject")
	}

	payload, err := json.Marshal(messageDTO{To: to, Subject: subject, Text: body})
	if err != nil {
		return fmt.Errorf("encode notification request: %w", err)
	}

	url := c.baseURL + "/api/notifications/email"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call notification service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("notification service returned status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return nil
}
