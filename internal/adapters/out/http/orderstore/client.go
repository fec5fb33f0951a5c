package orderstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// Client talks to the order service's REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an order store client. If httpClient is nil a default
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

var _ ports.OrderStore = (*Client)(nil)

// GetByID fetches a single order.
func (c *Client) GetByID(ctx context.Context, orderID string) (*order.Order, error) {
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderID")
	}

	var dto orderDTO
	if err := c.getJSON(ctx, "/api/orders/"+orderID, &dto); err != nil {
		return nil, err
	}
	return toDomain(dto)
}

// GetAll fetches every order known to the order service.
func (c *Client) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []orderDTO
	if err := c.getJSON(ctx, "/api/orders", &dtos); err != nil {
		return nil, err
	}
	return toDomainSlice(dtos)
}

// GetByCustomer fetches the orders placed by one customer.
func (c *Client) GetByCustomer(ctx context.Context, customerID string) ([]*order.Order, error) {
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerID")
	}

	var dtos []orderDTO
	if err := c.getJSON(ctx, "/api/orders/customer/"+customerID, &dtos); err != nil {
		return nil, err
	}
	return toDomainSlice(dtos)
}

// UpdateStatus writes a new lifecycle status for an order.
func (c *Client) UpdateStatus(ctx context.Context, orderID string, status order.Status) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}
	if err := status.Validate(); err != nil {
		return err
	}

	return c.putJSON(ctx, "/api/orders/"+orderID+"/status", statusDTO{
		OrderStatus: string(status),
	}, orderID)
}

// UpdateAssignment writes the order's assigned-driver fields and status.
func (c *Client) UpdateAssignment(ctx context.Context, ord *order.Order) error {
	if ord == nil {
		return errs.NewValueIsRequiredError("ord")
	}

	driverID := ord.AssignedDriverID()
	if driverID == nil {
		return errs.NewValueIsRequiredError("assignedDriverId")
	}

	return c.putJSON(ctx, "/api/orders/"+ord.ID()+"/assign-driver", assignmentDTO{
		OrderStatus:         string(ord.Status()),
		AssignedDriverID:    *driverID,
		AssignedDriverName:  ord.AssignedDriverName(),
		AssignedDriverPhone: ord.AssignedDriverPhone(),
	}, ord.ID())
}

// UpdateDelivery writes the order's delivered status and delivery time.
func (c *Client) UpdateDelivery(ctx context.Context, ord *order.Order) error {
	if ord == nil {
		return errs.NewValueIsRequiredError("ord")
	}

	deliveredTime := ord.DeliveredTime()
	if deliveredTime == nil {
		return errs.NewValueIsRequiredError("deliveredTime")
	}

	return c.putJSON(ctx, "/api/orders/"+ord.ID()+"/deliver", deliveryDTO{
		OrderStatus:   string(ord.Status()),
		DeliveredTime: *deliveredTime,
	}, ord.ID())
}

func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create order service request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call order service: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("decode order service response: %w", err)
		}
		return nil
	case http.StatusNotFound:
		return errs.NewObjectNotFoundError("order", pathResource(path))
	default:
		return unexpectedStatus(resp)
	}
}

func (c *Client) putJSON(ctx context.Context, path string, payload any, orderID string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode order service request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create order service request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call order service: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return errs.NewObjectNotFoundError("order", orderID)
	default:
		return unexpectedStatus(resp)
	}
}

func toDomainSlice(dtos []orderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		ord, err := toDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("restore order %s: %w", dto.ID, err)
		}
		orders = append(orders, ord)
	}
	return orders, nil
}

func unexpectedStatus(resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("order service returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
}

// pathResource extracts the trailing identifier of a request path, which for
// single-resource GETs is the order ID.
func pathResource(path string) string {
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
