package services

import (
	"errors"
	"math"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"
)

// ErrNoSuitableDriver is returned when no eligible driver can be matched to
// an order. This occurs when no drivers are provided, none is available with
// a known location, or (when contact identity is required) none carries the
// minimal contact fields.
var ErrNoSuitableDriver = errors.New("no suitable driver")

// DriverDispatcher is a domain service that selects the nearest available
// driver for an order using great-circle distance to the order's restaurant.
//
// Business rules:
//   - The order must be pending, paid and unassigned
//   - The order must carry a restaurant location
//   - Candidates must be available, hold the delivery role, and have a
//     reported location
//   - The driver at strictly minimal distance wins; the first seen wins on
//     exact ties
type DriverDispatcher struct{}

// NewDriverDispatcher creates a new DriverDispatcher instance.
func NewDriverDispatcher() DriverDispatcher {
	return DriverDispatcher{}
}

// Dispatch finds the nearest eligible driver for an order and assigns it.
//
// When requireContactIdentity is set (batch assignment), candidates without a
// name and email on record are skipped, since the assignment must produce a
// notifiable driver reference on the order.
//
// Returns ErrNoSuitableDriver when no candidate qualifies; the order is left
// untouched in that case.
func (d DriverDispatcher) Dispatch(
	ord *order.Order,
	drivers []*driver.Driver,
	requireContactIdentity bool,
) (*driver.Driver, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	if err := ord.CheckAssignable(); err != nil {
		return nil, err
	}

	if err := ord.RestaurantLocation().Validate(); err != nil {
		return nil, err
	}

	bestDriver, err := d.findNearestDriver(ord, drivers, requireContactIdentity)
	if err != nil {
		return nil, err
	}

	if err = ord.AssignDriver(bestDriver.UserID(), bestDriver.Name(), bestDriver.Phone()); err != nil {
		return nil, err
	}

	return bestDriver, nil
}

// findNearestDriver evaluates the candidates and returns the one at strictly
// minimal haversine distance from the order's restaurant. Iteration order
// decides exact ties: the first candidate seen at the minimal distance wins.
func (d DriverDispatcher) findNearestDriver(
	ord *order.Order,
	drivers []*driver.Driver,
	requireContactIdentity bool,
) (*driver.Driver, error) {
	var (
		bestDriver   *driver.Driver
		bestDistance = math.MaxFloat64
	)

	for _, candidate := range drivers {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if !candidate.IsAvailable() || candidate.Role() != driver.RoleDeliveryPerson {
			continue
		}
		if !candidate.HasLocation() {
			continue
		}
		if requireContactIdentity && !candidate.HasContactIdentity() {
			continue
		}

		distance, err := candidate.Location().DistanceKm(ord.RestaurantLocation())
		if err != nil {
			return nil, err
		}

		if distance < bestDistance {
			bestDistance = distance
			bestDriver = candidate
		}
	}

	if bestDriver == nil {
		return nil, ErrNoSuitableDriver
	}

	return bestDriver, nil
}
