package queries

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetCompletedOrdersQueryIsNotConstructed = errors.New(
	"GetCompletedOrdersQuery must be created via NewGetCompletedOrdersQuery constructor",
)

// GetCompletedOrdersQuery lists the delivered orders of one driver, newest
// delivery first.
type GetCompletedOrdersQuery struct {
	driverID string

	guard guard.ConstructorGuard
}

// NewGetCompletedOrdersQuery creates a validated completed-orders query.
func NewGetCompletedOrdersQuery(driverID string) (GetCompletedOrdersQuery, error) {
	if driverID == "" {
		return GetCompletedOrdersQuery{}, errs.NewValueIsRequiredError("driverId")
	}

	return GetCompletedOrdersQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCompletedOrdersQueryIsNotConstructed)
}

// DriverID returns the driver whose deliveries are listed.
func (q GetCompletedOrdersQuery) DriverID() string {
	return q.driverID
}
