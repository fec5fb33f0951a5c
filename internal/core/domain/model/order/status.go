package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions enforced by this service:
//
//	pending ──> driverAssigned ──> cancelled
//	   │              │
//	   └── (cancellable set) ──> cancelled
//	outForDelivery ──> delivered
//
// The remaining transitions (confirmation, preparation, pickup, driver
// acceptance) are driven by the order store and are accepted here as valid
// statuses without transition enforcement.
//
// Status values are stored and transmitted as strings, matching the order
// store's wire representation.
type Status string

const (
	// Pending is the initial status of a placed order. Orders in this status
	// with a confirmed payment are eligible for driver assignment.
	Pending Status = "pending"

	// Confirmed indicates the restaurant has accepted the order.
	Confirmed Status = "confirmed"

	// Preparing indicates the restaurant is preparing the order.
	Preparing Status = "preparing"

	// ReadyForPickup indicates the order awaits driver pickup.
	ReadyForPickup Status = "readyForPickup"

	// DriverAssigned indicates a driver has been matched to the order.
	DriverAssigned Status = "driverAssigned"

	// DriverAccepted indicates the assigned driver confirmed the delivery.
	DriverAccepted Status = "driverAccepted"

	// OutForDelivery indicates the driver picked up the order.
	OutForDelivery Status = "outForDelivery"

	// Delivered is a terminal status; the order reached the customer.
	Delivered Status = "delivered"

	// Cancelled is a terminal status; the order was cancelled.
	Cancelled Status = "cancelled"
)

// getValidStatuses returns the set of statuses the order store recognizes.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Pending:        {},
		Confirmed:      {},
		Preparing:      {},
		ReadyForPickup: {},
		DriverAssigned: {},
		DriverAccepted: {},
		OutForDelivery: {},
		Delivered:      {},
		Cancelled:      {},
	}
}

// getCancellableStatuses returns the statuses from which an order may still
// be cancelled by its customer.
func getCancellableStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Pending:        {},
		Confirmed:      {},
		Preparing:      {},
		ReadyForPickup: {},
		DriverAssigned: {},
		DriverAccepted: {},
	}
}

// NewStatus converts a raw string into a Status, rejecting any value outside
// the enumerated set.
func NewStatus(value string) (Status, error) {
	status := Status(value)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status belongs to the enumerated set.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderStatus",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsCancellable reports whether an order in this status may still be
// cancelled.
func (s Status) IsCancellable() bool {
	_, ok := getCancellableStatuses()[s]
	return ok
}

// PaymentStatus represents the payment state of an order as reported by the
// order store.
type PaymentStatus string

const (
	// PaymentPending indicates payment has not been confirmed yet.
	PaymentPending PaymentStatus = "Pending"

	// PaymentPaid indicates payment is confirmed. Only paid orders are
	// eligible for driver assignment.
	PaymentPaid PaymentStatus = "Paid"
)

// NewPaymentStatus converts a raw string into a PaymentStatus.
func NewPaymentStatus(value string) (PaymentStatus, error) {
	status := PaymentStatus(value)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the payment status is one of the known values.
func (s PaymentStatus) Validate() error {
	if s != PaymentPending && s != PaymentPaid {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%q is not a valid payment status", string(s)))
	}
	return nil
}

// String returns the wire representation of the payment status.
func (s PaymentStatus) String() string {
	return string(s)
}
