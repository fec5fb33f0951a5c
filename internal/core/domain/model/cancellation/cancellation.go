package cancellation

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// ReasonMinLength and ReasonMaxLength bound the cancellation reason.
	ReasonMinLength = 5
	ReasonMaxLength = 500

	// CommentsMaxLength bounds the optional additional comments.
	CommentsMaxLength = 1000
)

// Domain errors for cancellation records.
var (
	// ErrAcknowledgmentIsRequired is returned when the requester has not
	// acknowledged the cancellation terms.
	ErrAcknowledgmentIsRequired = errs.NewValueIsRequiredError("acknowledgment")
	// ErrCancellationIsNotConstructed is returned when using an improperly
	// initialized Cancellation.
	ErrCancellationIsNotConstructed = errors.New(
		"Cancellation must be created via NewCancellation or RestoreCancellation constructor")
)

// Cancellation is an immutable audit record of a cancellation attempt.
// One record is created per successful cancellation; it snapshots the order
// status at the moment of cancellation and is never modified afterwards.
type Cancellation struct {
	id                  uuid.UUID
	orderID             string
	userID              string
	reason              string
	additionalComments  string
	acknowledgment      bool
	orderStatusSnapshot order.Status
	createdAt           time.Time
	guard               guard.ConstructorGuard
}

// NewCancellation creates a cancellation record for an order the requester is
// cancelling right now.
//
// The reason must be 5 to 500 characters, comments are optional up to 1000
// characters, the acknowledgment flag must be true, and the snapshotted order
// status must belong to the cancellable set.
func NewCancellation(
	orderID, userID, reason, additionalComments string,
	acknowledgment bool,
	statusSnapshot order.Status,
) (*Cancellation, error) {
	record := &Cancellation{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		record.setOrderID(orderID),
		record.setUserID(userID),
		record.setReason(reason),
		record.setAdditionalComments(additionalComments),
		record.setAcknowledgment(acknowledgment),
		record.setStatusSnapshot(statusSnapshot),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// RestoreCancellation reconstructs a cancellation record from persistent
// storage.
func RestoreCancellation(
	id uuid.UUID,
	orderID, userID, reason, additionalComments string,
	acknowledgment bool,
	statusSnapshot order.Status,
	createdAt time.Time,
) (*Cancellation, error) {
	record := &Cancellation{
		id:        id,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("id")
	}

	if err := errors.Join(
		record.setOrderID(orderID),
		record.setUserID(userID),
		record.setReason(reason),
		record.setAdditionalComments(additionalComments),
		record.setAcknowledgment(acknowledgment),
		record.setStatusSnapshot(statusSnapshot),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// IsEqual compares two cancellation records by identifier.
func (c *Cancellation) IsEqual(other *Cancellation) bool {
	if other == nil {
		return false
	}
	return c.id == other.id
}

// Validate checks if the Cancellation was properly constructed.
func (c *Cancellation) Validate() error {
	if c == nil {
		return ErrCancellationIsNotConstructed
	}
	return c.guard.Validate(ErrCancellationIsNotConstructed)
}

// ID returns the record's generated identifier.
func (c *Cancellation) ID() uuid.UUID {
	return c.id
}

// OrderID returns the cancelled order's identifier.
func (c *Cancellation) OrderID() string {
	return c.orderID
}

// UserID returns the identifier of the requesting customer.
func (c *Cancellation) UserID() string {
	return c.userID
}

// Reason returns the cancellation reason supplied by the requester.
func (c *Cancellation) Reason() string {
	return c.reason
}

// AdditionalComments returns the optional free-text comments.
func (c *Cancellation) AdditionalComments() string {
	return c.additionalComments
}

// Acknowledgment reports whether the requester acknowledged the cancellation
// terms. Always true for a valid record.
func (c *Cancellation) Acknowledgment() bool {
	return c.acknowledgment
}

// OrderStatusSnapshot returns the order status at the time of cancellation.
func (c *Cancellation) OrderStatusSnapshot() order.Status {
	return c.orderStatusSnapshot
}

// CreatedAt returns the record creation time.
func (c *Cancellation) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Cancellation) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *Cancellation) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}

	c.userID = userID
	return nil
}

func (c *Cancellation) setReason(reason string) error {
	if length := len(reason); length < ReasonMinLength || length > ReasonMaxLength {
		return errs.NewValueIsOutOfRangeError(
			"cancellationReason length", len(reason), ReasonMinLength, ReasonMaxLength)
	}

	c.reason = reason
	return nil
}

func (c *Cancellation) setAdditionalComments(comments string) error {
	if len(comments) > CommentsMaxLength {
		return errs.NewValueIsOutOfRangeError(
			"additionalComments length", len(comments), 0, CommentsMaxLength)
	}

	c.additionalComments = comments
	return nil
}

func (c *Cancellation) setAcknowledgment(acknowledgment bool) error {
	if !acknowledgment {
		return ErrAcknowledgmentIsRequired
	}

	c.acknowledgment = acknowledgment
	return nil
}

func (c *Cancellation) setStatusSnapshot(statusSnapshot order.Status) error {
	if err := statusSnapshot.Validate(); err != nil {
		return err
	}
	if !statusSnapshot.IsCancellable() {
		return errs.NewValueIsInvalidErrorWithCause("orderStatusAtCancellation",
			fmt.Errorf("%s is not a cancellable status", statusSnapshot))
	}

	c.orderStatusSnapshot = statusSnapshot
	return nil
}
