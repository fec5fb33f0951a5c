package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type locationResponse struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

type driverResponse struct {
	UserID        string            `json:"userId"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Role          string            `json:"role"`
	Location      *locationResponse `json:"location"`
	IsAvailable   bool              `json:"isAvailable"`
	CurrentOrders int               `json:"currentOrders"`
}

type orderResponse struct {
	ID                  string     `json:"id"`
	CustomerID          string     `json:"customerId"`
	CustomerName        string     `json:"customerName"`
	RestaurantID        string     `json:"restaurantId"`
	RestaurantName      string     `json:"restaurantName"`
	Status              string     `json:"orderStatus"`
	PaymentStatus       string     `json:"paymentStatus"`
	TotalAmount         float64    `json:"totalAmount"`
	AssignedDriverID    *string    `json:"assignedDriverId"`
	AssignedDriverName  string     `json:"assignedDriverName,omitempty"`
	AssignedDriverPhone string     `json:"assignedDriverPhone,omitempty"`
	OrderDate           time.Time  `json:"orderDate"`
	DeliveredTime       *time.Time `json:"deliveredTime,omitempty"`
}

type assignmentResponse struct {
	OrderID  string `json:"orderId"`
	Assigned bool   `json:"assigned"`
	DriverID string `json:"driverId,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

type syncResponse struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Removed int `json:"removed"`
	Failed  int `json:"failed"`
}

type cancellationResponse struct {
	ID                 string    `json:"id"`
	OrderID            string    `json:"orderId"`
	Reason             string    `json:"reason"`
	StatusAtCancel     string    `json:"orderStatusAtCancellation"`
	DriverNotification string    `json:"driverNotification"`
	CreatedAt          time.Time `json:"createdAt"`
}

func toLocationResponse(point kernel.GeoPoint) *locationResponse {
	if point.Validate() != nil {
		return nil
	}
	return &locationResponse{Latitude: point.Latitude(), Longitude: point.Longitude()}
}

func toDriverResponse(d *driver.Driver) driverResponse {
	return driverResponse{
		UserID:        d.UserID(),
		Name:          d.Name(),
		Email:         d.Email(),
		Phone:         d.Phone(),
		Role:          d.Role(),
		Location:      toLocationResponse(d.Location()),
		IsAvailable:   d.IsAvailable(),
		CurrentOrders: d.CurrentOrders(),
	}
}

func toOrderResponse(ord *order.Order) orderResponse {
	return orderResponse{
		ID:                  ord.ID(),
		CustomerID:          ord.CustomerID(),
		CustomerName:        ord.CustomerName(),
		RestaurantID:        ord.RestaurantID(),
		RestaurantName:      ord.RestaurantName(),
		Status:              string(ord.Status()),
		PaymentStatus:       string(ord.PaymentStatus()),
		TotalAmount:         ord.TotalAmount(),
		AssignedDriverID:    ord.AssignedDriverID(),
		AssignedDriverName:  ord.AssignedDriverName(),
		AssignedDriverPhone: ord.AssignedDriverPhone(),
		OrderDate:           ord.OrderDate(),
		DeliveredTime:       ord.DeliveredTime(),
	}
}

func toOrderResponses(orders []*order.Order) []orderResponse {
	response := make([]orderResponse, len(orders))
	for i, ord := range orders {
		response[i] = toOrderResponse(ord)
	}
	return response
}

func toAssignmentResponse(result commands.AssignmentResult) assignmentResponse {
	return assignmentResponse{
		OrderID:  result.OrderID,
		Assigned: result.Assigned,
		DriverID: result.DriverID,
		Reason:   result.Reason,
	}
}

func toCancellationResponse(summary *commands.CancellationSummary) cancellationResponse {
	return cancellationResponse{
		ID:                 summary.Record.ID().String(),
		OrderID:            summary.Record.OrderID(),
		Reason:             summary.Record.Reason(),
		StatusAtCancel:     string(summary.Record.OrderStatusSnapshot()),
		DriverNotification: summary.DriverDescription,
		CreatedAt:          summary.Record.CreatedAt(),
	}
}

// respondError maps application errors to HTTP statuses: invalid input 400,
// ownership violations 403, missing objects 404, business-state conflicts 409,
// everything else 500. A failed driver match is a 404: the resource the
// caller asked for (an eligible driver) does not exist right now.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, commands.ErrNotOrderOwner):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, services.ErrNoSuitableDriver):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrOrderIsNotCancellable),
		errors.Is(err, order.ErrOrderIsNotAssignable),
		errors.Is(err, order.ErrOrderIsNotDeliverable):
		status = http.StatusConflict
	}

	return ctx.JSON(status, errorResponse{Code: status, Message: err.Error()})
}
