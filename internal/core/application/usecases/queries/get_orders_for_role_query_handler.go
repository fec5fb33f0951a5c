package queries

import (
	"context"
	"fmt"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// GetOrdersForRoleQueryHandler lists orders scoped to the caller's role.
// Orders live in the external order store, so this query goes through the
// store client rather than the local database.
type GetOrdersForRoleQueryHandler struct {
	orderStore ports.OrderStore
}

// NewGetOrdersForRoleQueryHandler creates a handler for role-scoped listings.
func NewGetOrdersForRoleQueryHandler(orderStore ports.OrderStore) GetOrdersForRoleQueryHandler {
	return GetOrdersForRoleQueryHandler{orderStore: orderStore}
}

// Handle executes the listing. An unrecognized role is rejected as invalid
// input rather than silently returning an empty list.
func (h GetOrdersForRoleQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersForRoleQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	switch query.Role() {
	case RoleCustomer:
		return h.orderStore.GetByCustomer(ctx, query.UserID())
	case driver.RoleDeliveryPerson:
		return h.activeAssignedOrders(ctx, query.UserID())
	case RoleRestaurantOwner:
		return h.restaurantOrders(ctx, query.UserID())
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("unknown role %q", query.Role()))
	}
}

// activeAssignedOrders returns the caller's assigned orders that are still in
// flight. Delivered and cancelled orders are excluded; the completed-orders
// listing covers the delivered ones.
func (h GetOrdersForRoleQueryHandler) activeAssignedOrders(
	ctx context.Context,
	driverID string,
) ([]*order.Order, error) {
	orders, err := h.orderStore.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	assigned := make([]*order.Order, 0)
	for _, ord := range orders {
		if !ord.IsAssigned() || *ord.AssignedDriverID() != driverID {
			continue
		}
		if ord.Status().IsTerminal() {
			continue
		}
		assigned = append(assigned, ord)
	}

	return assigned, nil
}

func (h GetOrdersForRoleQueryHandler) restaurantOrders(
	ctx context.Context,
	restaurantID string,
) ([]*order.Order, error) {
	orders, err := h.orderStore.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	scoped := make([]*order.Order, 0)
	for _, ord := range orders {
		if ord.RestaurantID() == restaurantID {
			scoped = append(scoped, ord)
		}
	}

	return scoped, nil
}
