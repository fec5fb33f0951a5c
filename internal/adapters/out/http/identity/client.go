// Package identity implements the identity source port against the auth
// service's REST API.
package identity

import (
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

// Client fetches person records from the auth service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an identity client. If httpClient is nil a default
// client with a 5 second timeout is used.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}, nil
}

var _ ports.IdentitySource = (*Client)(nil)

type personDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// GetApprovedDrivers fetches every person approved with the delivery role.
// The auth service filters by role and approval status server-side.
func (c *Client) GetApprovedDrivers(ctx context.Context) ([]ports.IdentityRecord, error) {
	url := c.baseURL + "/api/users?role=DeliveryPerson&status=approved"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create auth service request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call auth service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("auth service returned status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var dtos []personDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("decode auth service response: %w", err)
	}

	records := make([]ports.IdentityRecord, 0, len(dtos))
	for _, dto := range dtos {
		records = append(records, ports.IdentityRecord{
			ID:     dto.ID,
			Name:   dto.Name,
			Email:  dto.Email,
			Phone:  dto.Phone,
			Role:   dto.Role,
			Status: dto.Status,
		})
	}
	return records, nil
}
