package order

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the RestoreOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")

	// ErrOrderIsNotCancellable is returned when a cancellation is attempted
	// against an order whose status is outside the cancellable set.
	ErrOrderIsNotCancellable = errors.New("order is not cancellable in its current status")

	// ErrOrderIsNotAssignable is returned when a driver assignment is
	// attempted against an order that is not pending, not paid, or already
	// has a driver.
	ErrOrderIsNotAssignable = errors.New("order is not eligible for driver assignment")

	// ErrOrderIsNotDeliverable is returned when a delivery completion is
	// recorded against an order that is not out for delivery.
	ErrOrderIsNotDeliverable = errors.New("order is not out for delivery")
)

// Item is a single order line as reported by the order store.
type Item struct {
	ItemID   string
	Name     string
	Quantity int
	Price    float64
}

// Order is the aggregate coordinating driver assignment, cancellation and
// delivery completion. Orders are owned by the external order store: they are
// restored from its payloads, mutated in memory through the methods below,
// and written back field by field. The aggregate is never persisted locally.
//
// Invariants:
//   - A driver may be assigned only while the order is pending, paid, and
//     unassigned.
//   - Status transitions triggered here follow the Status state machine.
//   - Restaurant and delivery locations may be unknown (zero GeoPoint); an
//     order without a restaurant location cannot be matched to a driver.
type Order struct {
	id string

	customerID    string
	customerName  string
	customerEmail string
	customerPhone string

	restaurantID       string
	restaurantName     string
	restaurantPhone    string
	restaurantLocation kernel.GeoPoint

	deliveryLocation kernel.GeoPoint

	items          []Item
	subtotal       float64
	deliveryCharge float64
	totalAmount    float64

	paymentStatus PaymentStatus
	paymentMethod string

	status Status

	assignedDriverID    *string
	assignedDriverName  string
	assignedDriverPhone string

	orderDate     time.Time
	deliveredTime *time.Time
	notes         string

	isConstructed bool
}

// RestoreOrderParams carries the order store's representation of an order
// into the domain. Optional locations stay at their zero value when unknown;
// AssignedDriverID is nil when no driver is assigned.
type RestoreOrderParams struct {
	ID string

	CustomerID    string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	RestaurantID       string
	RestaurantName     string
	RestaurantPhone    string
	RestaurantLocation kernel.GeoPoint

	DeliveryLocation kernel.GeoPoint

	Items          []Item
	Subtotal       float64
	DeliveryCharge float64
	TotalAmount    float64

	PaymentStatus PaymentStatus
	PaymentMethod string

	Status Status

	AssignedDriverID    *string
	AssignedDriverName  string
	AssignedDriverPhone string

	OrderDate     time.Time
	DeliveredTime *time.Time
	Notes         string
}

// RestoreOrder reconstructs an Order from an order-store payload, validating
// the fields this service depends on. The identifier, customer reference,
// order status and payment status must be present and valid; everything else
// is carried through as-is.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	if params.ID == "" {
		return nil, errs.NewValueIsRequiredError("orderId")
	}
	if params.CustomerID == "" {
		return nil, errs.NewValueIsRequiredError("customerId")
	}
	if err := errors.Join(params.Status.Validate(), params.PaymentStatus.Validate()); err != nil {
		return nil, err
	}
	if params.AssignedDriverID != nil && *params.AssignedDriverID == "" {
		return nil, errs.NewValueIsRequiredError("assignedDriverId")
	}

	return &Order{
		id:                  params.ID,
		customerID:          params.CustomerID,
		customerName:        params.CustomerName,
		customerEmail:       params.CustomerEmail,
		customerPhone:       params.CustomerPhone,
		restaurantID:        params.RestaurantID,
		restaurantName:      params.RestaurantName,
		restaurantPhone:     params.RestaurantPhone,
		restaurantLocation:  params.RestaurantLocation,
		deliveryLocation:    params.DeliveryLocation,
		items:               params.Items,
		subtotal:            params.Subtotal,
		deliveryCharge:      params.DeliveryCharge,
		totalAmount:         params.TotalAmount,
		paymentStatus:       params.PaymentStatus,
		paymentMethod:       params.PaymentMethod,
		status:              params.Status,
		assignedDriverID:    params.AssignedDriverID,
		assignedDriverName:  params.AssignedDriverName,
		assignedDriverPhone: params.AssignedDriverPhone,
		orderDate:           params.OrderDate,
		deliveredTime:       params.DeliveredTime,
		notes:               params.Notes,
		isConstructed:       true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through
// RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's identifier.
func (o *Order) ID() string {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() string {
	return o.customerID
}

// CustomerName returns the customer's display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerEmail returns the customer's email address.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// CustomerPhone returns the customer's phone number.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// RestaurantID returns the restaurant's identifier.
func (o *Order) RestaurantID() string {
	return o.restaurantID
}

// RestaurantName returns the restaurant's display name.
func (o *Order) RestaurantName() string {
	return o.restaurantName
}

// RestaurantPhone returns the restaurant's phone number.
func (o *Order) RestaurantPhone() string {
	return o.restaurantPhone
}

// RestaurantLocation returns the restaurant's pickup location.
// The zero value means the location is unknown.
func (o *Order) RestaurantLocation() kernel.GeoPoint {
	return o.restaurantLocation
}

// HasRestaurantLocation reports whether the pickup location is known.
func (o *Order) HasRestaurantLocation() bool {
	return o.restaurantLocation.Validate() == nil
}

// DeliveryLocation returns the customer's delivery location.
// The zero value means the location is unknown.
func (o *Order) DeliveryLocation() kernel.GeoPoint {
	return o.deliveryLocation
}

// Items returns the order lines.
func (o *Order) Items() []Item {
	return o.items
}

// Subtotal returns the pre-charge item total.
func (o *Order) Subtotal() float64 {
	return o.subtotal
}

// DeliveryCharge returns the delivery fee.
func (o *Order) DeliveryCharge() float64 {
	return o.deliveryCharge
}

// TotalAmount returns the full amount charged to the customer.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// PaymentStatus returns the payment state of the order.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// PaymentMethod returns the payment method chosen by the customer.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AssignedDriverID returns the assigned driver's identifier.
// Returns nil if no driver is assigned.
func (o *Order) AssignedDriverID() *string {
	return o.assignedDriverID
}

// AssignedDriverName returns the assigned driver's display name.
func (o *Order) AssignedDriverName() string {
	return o.assignedDriverName
}

// AssignedDriverPhone returns the assigned driver's phone number.
func (o *Order) AssignedDriverPhone() string {
	return o.assignedDriverPhone
}

// IsAssigned reports whether a driver is currently assigned.
func (o *Order) IsAssigned() bool {
	return o.assignedDriverID != nil
}

// OrderDate returns the time the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// DeliveredTime returns the delivery completion time.
// Returns nil if the order has not been delivered.
func (o *Order) DeliveredTime() *time.Time {
	return o.deliveredTime
}

// Notes returns the customer's free-text delivery notes.
func (o *Order) Notes() string {
	return o.notes
}

// CheckAssignable verifies the order may accept a driver without performing
// the assignment. An order is assignable while it is pending, its payment is
// confirmed, and no driver is attached.
func (o *Order) CheckAssignable() error {
	if o.status != Pending {
		return fmt.Errorf("%w: status is %s", ErrOrderIsNotAssignable, o.status)
	}
	if o.paymentStatus != PaymentPaid {
		return fmt.Errorf("%w: payment status is %s", ErrOrderIsNotAssignable, o.paymentStatus)
	}
	if o.IsAssigned() {
		return fmt.Errorf("%w: driver %s is already assigned", ErrOrderIsNotAssignable, *o.assignedDriverID)
	}
	return nil
}

// AssignDriver attaches a driver to the order and moves it to DriverAssigned.
//
// The order must be pending, paid, and unassigned. The driver identifier is
// required; name and phone are carried for the order store's denormalized
// driver fields.
func (o *Order) AssignDriver(driverID, driverName, driverPhone string) error {
	if driverID == "" {
		return errs.NewValueIsRequiredError("driverId")
	}
	if err := o.CheckAssignable(); err != nil {
		return err
	}

	o.status = DriverAssigned
	o.assignedDriverID = &driverID
	o.assignedDriverName = driverName
	o.assignedDriverPhone = driverPhone
	return nil
}

// Cancel moves the order to Cancelled.
//
// The order's current status must be in the cancellable set: pending,
// confirmed, preparing, readyForPickup, driverAssigned or driverAccepted.
func (o *Order) Cancel() error {
	if !o.status.IsCancellable() {
		return fmt.Errorf("%w: status is %s", ErrOrderIsNotCancellable, o.status)
	}

	o.status = Cancelled
	return nil
}

// Deliver marks the order as delivered at the given time.
//
// The order must be out for delivery.
func (o *Order) Deliver(at time.Time) error {
	if o.status != OutForDelivery {
		return fmt.Errorf("%w: status is %s", ErrOrderIsNotDeliverable, o.status)
	}

	o.status = Delivered
	o.deliveredTime = &at
	return nil
}
