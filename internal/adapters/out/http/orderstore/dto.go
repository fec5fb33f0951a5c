// Package orderstore implements the order store port against the order
// service's REST API. Orders are owned by that service; this client restores
// them into domain aggregates and writes mutations back field by field.
package orderstore

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// geoPointDTO is the order service's JSON representation of a coordinate
// pair. A nil pointer in the payload means the location is unknown.
type geoPointDTO struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

type itemDTO struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// orderDTO mirrors the order service's order document.
type orderDTO struct {
	ID string `json:"id"`

	CustomerID    string `json:"customerId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	RestaurantID       string       `json:"restaurantId"`
	RestaurantName     string       `json:"restaurantName"`
	RestaurantPhone    string       `json:"restaurantPhone"`
	RestaurantLocation *geoPointDTO `json:"restaurantLocation"`

	DeliveryLocation *geoPointDTO `json:"deliveryLocation"`

	Items          []itemDTO `json:"items"`
	Subtotal       float64   `json:"subtotal"`
	DeliveryCharge float64   `json:"deliveryCharge"`
	TotalAmount    float64   `json:"totalAmount"`

	PaymentStatus string `json:"paymentStatus"`
	PaymentMethod string `json:"paymentMethod"`

	OrderStatus string `json:"orderStatus"`

	AssignedDriverID    *string `json:"assignedDriverId"`
	AssignedDriverName  string  `json:"assignedDriverName"`
	AssignedDriverPhone string  `json:"assignedDriverPhone"`

	OrderDate     time.Time  `json:"orderDate"`
	DeliveredTime *time.Time `json:"deliveredTime"`
	Notes         string     `json:"notes"`
}

// assignmentDTO is the write payload attaching a driver to an order.
type assignmentDTO struct {
	OrderStatus         string `json:"orderStatus"`
	AssignedDriverID    string `json:"assignedDriverId"`
	AssignedDriverName  string `json:"assignedDriverName"`
	AssignedDriverPhone string `json:"assignedDriverPhone"`
}

// statusDTO is the write payload for a bare status change.
type statusDTO struct {
	OrderStatus string `json:"orderStatus"`
}

// deliveryDTO is the write payload recording a completed delivery.
type deliveryDTO struct {
	OrderStatus   string    `json:"orderStatus"`
	DeliveredTime time.Time `json:"deliveredTime"`
}

// toDomain converts an order document into the Order aggregate.
func toDomain(dto orderDTO) (*order.Order, error) {
	params := order.RestoreOrderParams{
		ID:                  dto.ID,
		CustomerID:          dto.CustomerID,
		CustomerName:        dto.CustomerName,
		CustomerEmail:       dto.CustomerEmail,
		CustomerPhone:       dto.CustomerPhone,
		RestaurantID:        dto.RestaurantID,
		RestaurantName:      dto.RestaurantName,
		RestaurantPhone:     dto.RestaurantPhone,
		Subtotal:            dto.Subtotal,
		DeliveryCharge:      dto.DeliveryCharge,
		TotalAmount:         dto.TotalAmount,
		PaymentStatus:       order.PaymentStatus(dto.PaymentStatus),
		PaymentMethod:       dto.PaymentMethod,
		Status:              order.Status(dto.OrderStatus),
		AssignedDriverID:    dto.AssignedDriverID,
		AssignedDriverName:  dto.AssignedDriverName,
		AssignedDriverPhone: dto.AssignedDriverPhone,
		OrderDate:           dto.OrderDate,
		DeliveredTime:       dto.DeliveredTime,
		Notes:               dto.Notes,
	}

	if dto.RestaurantLocation != nil {
		point, err := kernel.NewGeoPoint(dto.RestaurantLocation.Latitude, dto.RestaurantLocation.Longitude)
		if err != nil {
			return nil, err
		}
		params.RestaurantLocation = point
	}
	if dto.DeliveryLocation != nil {
		point, err := kernel.NewGeoPoint(dto.DeliveryLocation.Latitude, dto.DeliveryLocation.Longitude)
		if err != nil {
			return nil, err
		}
		params.DeliveryLocation = point
	}

	if len(dto.Items) > 0 {
		items := make([]order.Item, 0, len(dto.Items))
		for _, item := range dto.Items {
			items = append(items, order.Item{
				ItemID:   item.ItemID,
				Name:     item.Name,
				Quantity: item.Quantity,
				Price:    item.Price,
			})
		}
		params.Items = items
	}

	return order.RestoreOrder(params)
}
