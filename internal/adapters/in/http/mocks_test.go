package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	adapterhttp "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/cancellationrepo"
	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

const (
	testJWTSecret     = "test-signing-secret"
	testPaymentSecret = "payment-callback-secret"
)

type MockOrderStore struct {
	mock.Mock
}

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

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

type MockIdentitySource struct {
	mock.Mock
}

func (m *MockIdentitySource) GetApprovedDrivers(ctx context.Context) ([]ports.IdentityRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.IdentityRecord), args.Error(1)
}

type funcDriverUoWFactory func() commands.DriverUoW

func (f funcDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type funcUoWFactory func() commands.UoW

func (f funcUoWFactory) Create() commands.UoW {
	return f()
}

// fixture hosts the full HTTP surface over an in-memory registry, with the
// external collaborators mocked.
type fixture struct {
	e          *echo.Echo
	db         *gorm.DB
	orderStore *MockOrderStore
	notifier   *MockNotifier
	identity   *MockIdentitySource
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&driverrepo.DriverDTO{},
		&cancellationrepo.CancellationDTO{},
	))

	uowFactory := postgres.NewGormUnitOfWorkFactory(db)
	driverFactory := funcDriverUoWFactory(func() commands.DriverUoW {
		return uowFactory.Create()
	})
	fullFactory := funcUoWFactory(func() commands.UoW {
		return uowFactory.Create()
	})

	logger := slog.New(slog.DiscardHandler)
	orderStore := new(MockOrderStore)
	notifier := new(MockNotifier)
	identity := new(MockIdentitySource)

	handlers := adapterhttp.Handlers{
		ReportLocation:    commands.NewReportLocationCommandHandler(driverFactory),
		SyncDrivers:       commands.NewSyncDriversCommandHandler(driverFactory, identity, logger),
		AssignDrivers:     commands.NewAssignDriversCommandHandler(driverFactory, orderStore, notifier, logger),
		AssignDriver:      commands.NewAssignDriverCommandHandler(driverFactory, orderStore, notifier, logger),
		UpdateOrderStatus: commands.NewUpdateOrderStatusCommandHandler(orderStore),
		CancelOrder:       commands.NewCancelOrderCommandHandler(fullFactory, orderStore, notifier, logger),
		CompleteDelivery:  commands.NewCompleteDeliveryCommandHandler(driverFactory, orderStore, logger),
		SendNotification:  commands.NewSendNotificationCommandHandler(notifier),

		GetAllDrivers:      queries.NewGetAllDriversQueryHandler(db),
		GetOrdersForRole:   queries.NewGetOrdersForRoleQueryHandler(orderStore),
		GetCompletedOrders: queries.NewGetCompletedOrdersQueryHandler(orderStore),
	}

	e := echo.New()
	server := adapterhttp.NewServer(handlers, testPaymentSecret)
	server.RegisterRoutes(e, adapterhttp.NewAuthMiddleware([]byte(testJWTSecret)))

	return &fixture{
		e:          e,
		db:         db,
		orderStore: orderStore,
		notifier:   notifier,
		identity:   identity,
	}
}

func (f *fixture) token(t *testing.T, userID, email, role string) string {
	t.Helper()

	claims := adapterhttp.Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func (f *fixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var decoded T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return decoded
}

func pendingPaidOrder(t *testing.T, orderID, customerID string) *order.Order {
	t.Helper()

	location, err := kernel.NewGeoPoint(40.0, -74.0)
	require.NoError(t, err)

	ord, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:                 orderID,
		CustomerID:         customerID,
		CustomerName:       "John Doe",
		CustomerEmail:      "john@example.com",
		RestaurantID:       "restaurant-1",
		RestaurantName:     "Pizza Palace",
		RestaurantLocation: location,
		Status:             order.Pending,
		PaymentStatus:      order.PaymentPaid,
		TotalAmount:        29.0,
		OrderDate:          time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return ord
}

func outForDeliveryOrder(t *testing.T, orderID, driverID string) *order.Order {
	t.Helper()

	ord, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:                 orderID,
		CustomerID:         "customer-1",
		RestaurantID:       "restaurant-1",
		Status:             order.OutForDelivery,
		PaymentStatus:      order.PaymentPaid,
		TotalAmount:        29.0,
		AssignedDriverID:   &driverID,
		AssignedDriverName: "Driver " + driverID,
		OrderDate:          time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return ord
}
