package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/order"
)

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) GetByID(ctx context.Context, orderID string) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderStore) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderStore) GetByCustomer(ctx context.Context, customerID string) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderStore) UpdateStatus(ctx context.Context, orderID string, status order.Status) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockOrderStore) UpdateAssignment(ctx context.Context, ord *order.Order) error {
	args := m.Called(ctx, ord)
	return args.Error(0)
}

func (m *MockOrderStore) UpdateDelivery(ctx context.Context, ord *order.Order) error {
	args := m.Called(ctx, ord)
	return args.Error(0)
}

// storedOrder builds an order in the given status, optionally assigned to a
// driver and optionally stamped with a delivery time.
func storedOrder(
	t *testing.T,
	orderID, customerID, restaurantID string,
	status order.Status,
	driverID string,
	deliveredAt *time.Time,
) *order.Order {
	t.Helper()

	params := order.RestoreOrderParams{
		ID:            orderID,
		CustomerID:    customerID,
		RestaurantID:  restaurantID,
		PaymentStatus: order.PaymentPaid,
		Status:        status,
		OrderDate:     time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		DeliveredTime: deliveredAt,
	}
	if driverID != "" {
		params.AssignedDriverID = &driverID
	}

	ord, err := order.RestoreOrder(params)
	require.NoError(t, err)
	return ord
}
