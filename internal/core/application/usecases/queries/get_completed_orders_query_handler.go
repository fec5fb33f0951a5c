package queries

import (
	"context"
	"sort"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// GetCompletedOrdersQueryHandler lists a driver's delivered orders.
type GetCompletedOrdersQueryHandler struct {
	orderStore ports.OrderStore
}

// NewGetCompletedOrdersQueryHandler creates a handler for completed-order
// listings.
func NewGetCompletedOrdersQueryHandler(orderStore ports.OrderStore) GetCompletedOrdersQueryHandler {
	return GetCompletedOrdersQueryHandler{orderStore: orderStore}
}

// Handle executes the listing, newest delivery first. Orders without a
// recorded delivery time sort last.
func (h GetCompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCompletedOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderStore.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	completed := make([]*order.Order, 0)
	for _, ord := range orders {
		if !ord.IsAssigned() || *ord.AssignedDriverID() != query.DriverID() {
			continue
		}
		if ord.Status() != order.Delivered {
			continue
		}
		completed = append(completed, ord)
	}

	sort.SliceStable(completed, func(i, j int) bool {
		left, right := completed[i].DeliveredTime(), completed[j].DeliveredTime()
		if left == nil {
			return false
		}
		if right == nil {
			return true
		}
		return left.After(*right)
	})

	return completed, nil
}
