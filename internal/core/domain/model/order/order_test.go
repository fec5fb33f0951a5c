package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

func validRestoreParams(t *testing.T) order.RestoreOrderParams {
	t.Helper()

	restaurantLocation, err := kernel.NewGeoPoint(40.7580, -73.9855)
	require.NoError(t, err)
	deliveryLocation, err := kernel.NewGeoPoint(40.7128, -74.0060)
	require.NoError(t, err)

	return order.RestoreOrderParams{
		ID:                 "order-1",
		CustomerID:         "customer-1",
		CustomerName:       "Alice Smith",
		CustomerEmail:      "alice@example.com",
		CustomerPhone:      "+15550100",
		RestaurantID:       "restaurant-1",
		RestaurantName:     "Midtown Pizza",
		RestaurantLocation: restaurantLocation,
		DeliveryLocation:   deliveryLocation,
		Items: []order.Item{
			{ItemID: "item-1", Name: "Margherita", Quantity: 2, Price: 12.5},
		},
		Subtotal:       25,
		DeliveryCharge: 4,
		TotalAmount:    29,
		PaymentStatus:  order.PaymentPaid,
		PaymentMethod:  "card",
		Status:         order.Pending,
		OrderDate:      time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestRestoreOrder(t *testing.T) {
	t.Run("valid params", func(t *testing.T) {
		params := validRestoreParams(t)

		o, err := order.RestoreOrder(params)
		require.NoError(t, err)

		assert.NoError(t, o.Validate())
		assert.Equal(t, "order-1", o.ID())
		assert.Equal(t, "customer-1", o.CustomerID())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		assert.False(t, o.IsAssigned())
		assert.Nil(t, o.AssignedDriverID())
		assert.Nil(t, o.DeliveredTime())
		assert.True(t, o.HasRestaurantLocation())
		assert.Len(t, o.Items(), 1)
		assert.InDelta(t, 29.0, o.TotalAmount(), 0)
	})

	t.Run("missing order id", func(t *testing.T) {
		params := validRestoreParams(t)
		params.ID = ""

		_, err := order.RestoreOrder(params)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing customer id", func(t *testing.T) {
		params := validRestoreParams(t)
		params.CustomerID = ""

		_, err := order.RestoreOrder(params)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid status", func(t *testing.T) {
		params := validRestoreParams(t)
		params.Status = order.Status("shipped")

		_, err := order.RestoreOrder(params)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid payment status", func(t *testing.T) {
		params := validRestoreParams(t)
		params.PaymentStatus = order.PaymentStatus("refunded")

		_, err := order.RestoreOrder(params)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty assigned driver id", func(t *testing.T) {
		params := validRestoreParams(t)
		empty := ""
		params.AssignedDriverID = &empty

		_, err := order.RestoreOrder(params)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown locations are allowed", func(t *testing.T) {
		params := validRestoreParams(t)
		params.RestaurantLocation = kernel.GeoPoint{}
		params.DeliveryLocation = kernel.GeoPoint{}

		o, err := order.RestoreOrder(params)
		require.NoError(t, err)
		assert.False(t, o.HasRestaurantLocation())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("restored order", func(t *testing.T) {
		o, err := order.RestoreOrder(validRestoreParams(t))
		require.NoError(t, err)
		assert.NoError(t, o.Validate())
	})

	t.Run("zero value order", func(t *testing.T) {
		var o order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("nil order", func(t *testing.T) {
		var o *order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_AssignDriver(t *testing.T) {
	t.Run("pending paid unassigned order accepts a driver", func(t *testing.T) {
		o, err := order.RestoreOrder(validRestoreParams(t))
		require.NoError(t, err)

		err = o.AssignDriver("driver-1", "Bob Jones", "+15550111")
		require.NoError(t, err)

		assert.Equal(t, order.DriverAssigned, o.Status())
		require.NotNil(t, o.AssignedDriverID())
		assert.Equal(t, "driver-1", *o.AssignedDriverID())
		assert.Equal(t, "Bob Jones", o.AssignedDriverName())
		assert.Equal(t, "+15550111", o.AssignedDriverPhone())
	})

	t.Run("missing driver id", func(t *testing.T) {
		o, err := order.RestoreOrder(validRestoreParams(t))
		require.NoError(t, err)

		err = o.AssignDriver("", "Bob Jones", "+15550111")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("non-pending order", func(t *testing.T) {
		params := validRestoreParams(t)
		params.Status = order.Preparing

		o, err := order.RestoreOrder(params)
		require.NoError(t, err)

		err = o.AssignDriver("driver-1", "Bob Jones", "+15550111")
		require.ErrorIs(t, err, order.ErrOrderIsNotAssignable)
		assert.False(t, o.IsAssigned())
	})

	t.Run("unpaid order", func(t *testing.T) {
		params := validRestoreParams(t)
		params.PaymentStatus = order.PaymentPending

		o, err := order.RestoreOrder(params)
		require.NoError(t, err)

		err = o.AssignDriver("driver-1", "Bob Jones", "+15550111")
		require.ErrorIs(t, err, order.ErrOrderIsNotAssignable)
	})

	t.Run("already assigned order", func(t *testing.T) {
		params := validRestoreParams(t)
		existing := "driver-0"
		params.AssignedDriverID = &existing

		o, err := order.RestoreOrder(params)
		require.NoError(t, err)

		err = o.AssignDriver("driver-1", "Bob Jones", "+15550111")
		require.ErrorIs(t, err, order.ErrOrderIsNotAssignable)
		assert.Equal(t, "driver-0", *o.AssignedDriverID())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancellable statuses", func(t *testing.T) {
		cancellable := []order.Status{
			order.Pending, order.Confirmed, order.Preparing,
			order.ReadyForPickup, order.DriverAssigned, order.DriverAccepted,
		}

		for _, status := range cancellable {
			params := validRestoreParams(t)
			params.Status = status
			if status == order.DriverAssigned || status == order.DriverAccepted {
				driverID := "driver-1"
				params.AssignedDriverID = &driverID
			}

			o, err := order.RestoreOrder(params)
			require.NoError(t, err)

			require.NoError(t, o.Cancel(), status)
			assert.Equal(t, order.Cancelled, o.Status())
		}
	})

	t.Run("non-cancellable statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.OutForDelivery, order.Delivered, order.Cancelled} {
			params := validRestoreParams(t)
			params.Status = status

			o, err := order.RestoreOrder(params)
			require.NoError(t, err)

			err = o.Cancel()
			require.ErrorIs(t, err, order.ErrOrderIsNotCancellable, status)
			assert.Equal(t, status, o.Status())
		}
	})
}

func TestOrder_Deliver(t *testing.T) {
	deliveredAt := time.Date(2025, 3, 10, 13, 30, 0, 0, time.UTC)

	t.Run("out for delivery order", func(t *testing.T) {
		params := validRestoreParams(t)
		params.Status = order.OutForDelivery
		driverID := "driver-1"
		params.AssignedDriverID = &driverID

		o, err := order.RestoreOrder(params)
		require.NoError(t, err)

		require.NoError(t, o.Deliver(deliveredAt))
		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.DeliveredTime())
		assert.Equal(t, deliveredAt, *o.DeliveredTime())
	})

	t.Run("order not out for delivery", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.DriverAssigned, order.Delivered} {
			params := validRestoreParams(t)
			params.Status = status

			o, err := order.RestoreOrder(params)
			require.NoError(t, err)

			err = o.Deliver(deliveredAt)
			require.ErrorIs(t, err, order.ErrOrderIsNotDeliverable, status)
			assert.Nil(t, o.DeliveredTime())
		}
	})
}

func TestOrder_IsEqual(t *testing.T) {
	o1, err := order.RestoreOrder(validRestoreParams(t))
	require.NoError(t, err)

	params2 := validRestoreParams(t)
	params2.Status = order.Confirmed
	o2, err := order.RestoreOrder(params2)
	require.NoError(t, err)

	params3 := validRestoreParams(t)
	params3.ID = "order-2"
	o3, err := order.RestoreOrder(params3)
	require.NoError(t, err)

	assert.True(t, o1.IsEqual(o2))
	assert.False(t, o1.IsEqual(o3))
	assert.False(t, o1.IsEqual(nil))
}
