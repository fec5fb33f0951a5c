// Package http exposes the dispatch service's REST API on echo. Handlers
// translate between JSON payloads and application commands and queries; they
// hold no business logic of their own.
package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/driver"
)

// Handlers bundles the application entry points the server routes to.
type Handlers struct {
	ReportLocation    commands.ReportLocationCommandHandler
	SyncDrivers       commands.SyncDriversCommandHandler
	AssignDrivers     commands.AssignDriversCommandHandler
	AssignDriver      commands.AssignDriverCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler
	CompleteDelivery  commands.CompleteDeliveryCommandHandler
	SendNotification  commands.SendNotificationCommandHandler

	GetAllDrivers      queries.GetAllDriversQueryHandler
	GetOrdersForRole   queries.GetOrdersForRoleQueryHandler
	GetCompletedOrders queries.GetCompletedOrdersQueryHandler
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	handlers      Handlers
	paymentSecret string
}

// NewServer creates the HTTP server. The payment secret authenticates the
// payment service's order-confirmation callback.
func NewServer(handlers Handlers, paymentSecret string) *Server {
	return &Server{
		handlers:      handlers,
		paymentSecret: paymentSecret,
	}
}

// RegisterRoutes wires all routes onto the echo instance. Everything under
// /api/v1 requires a bearer token except the payment callback, which carries
// its own shared secret.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *AuthMiddleware) {
	e.Validator = NewValidator()

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/assignments/payment-confirmed", s.ConfirmPayment)

	secured := api.Group("", auth.Bearer)
	secured.PUT("/drivers/location", s.ReportLocation, auth.RequireRole(driver.RoleDeliveryPerson))
	secured.POST("/drivers/sync", s.SyncDrivers)
	secured.GET("/drivers", s.GetDrivers)
	secured.POST("/assignments/auto", s.AutoAssign)
	secured.GET("/orders", s.GetOrders)
	secured.GET("/orders/completed/:driverId", s.GetCompletedOrders)
	secured.PUT("/orders/:id/status", s.UpdateOrderStatus)
	secured.POST("/orders/:id/cancel", s.CancelOrder, auth.RequireRole(queries.RoleCustomer))
	secured.POST("/deliveries", s.CompleteDelivery)
	secured.POST("/notifications", s.SendNotification)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// ReportLocation handles PUT /api/v1/drivers/location. The caller's identity
// comes from the bearer claims; the payload carries the coordinates.
func (s *Server) ReportLocation(ctx echo.Context) error {
	claims, _ := ClaimsFrom(ctx)

	var request reportLocationRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReportLocationCommand(
		claims.UserID, request.Name, claims.Email, request.Phone,
		*request.Latitude, *request.Longitude,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.ReportLocation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDriverResponse(updated))
}

// SyncDrivers handles POST /api/v1/drivers/sync.
func (s *Server) SyncDrivers(ctx echo.Context) error {
	result, err := s.handlers.SyncDrivers.Handle(
		ctx.Request().Context(), commands.NewSyncDriversCommand())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, syncResponse{
		Added:   result.Added,
		Updated: result.Updated,
		Removed: result.Removed,
		Failed:  result.Failed,
	})
}

// GetDrivers handles GET /api/v1/drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	drivers, err := s.handlers.GetAllDrivers.Handle(
		ctx.Request().Context(), queries.NewGetAllDriversQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]driverResponse, len(drivers))
	for i, d := range drivers {
		response[i] = driverResponse{
			UserID:        d.UserID,
			Name:          d.Name,
			Email:         d.Email,
			Phone:         d.Phone,
			Role:          d.Role,
			IsAvailable:   d.IsAvailable,
			CurrentOrders: d.CurrentOrders,
		}
		if d.HasLocation {
			response[i].Location = toLocationResponse(d.Location)
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// AutoAssign handles POST /api/v1/assignments/auto. It sweeps every eligible
// order and reports a per-order outcome.
func (s *Server) AutoAssign(ctx echo.Context) error {
	results, err := s.handlers.AssignDrivers.Handle(
		ctx.Request().Context(), commands.NewAssignDriversCommand())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]assignmentResponse, len(results))
	for i, result := range results {
		response[i] = toAssignmentResponse(result)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ConfirmPayment handles POST /api/v1/assignments/payment-confirmed, the
// payment service's callback after a successful charge. Authenticated by a
// shared secret instead of a bearer token.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	var request paymentConfirmedRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return respondError(ctx, err)
	}

	if subtle.ConstantTimeCompare([]byte(request.Secret), []byte(s.paymentSecret)) != 1 {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Invalid payment secret",
		})
	}

	cmd, err := commands.NewAssignDriverCommand(request.OrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.AssignDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAssignmentResponse(result))
}

// GetOrders handles GET /api/v1/orders. The caller's role decides the slice
// of orders returned.
func (s *Server) GetOrders(ctx echo.Context) error {
	claims, _ := ClaimsFrom(ctx)

	query, err := queries.NewGetOrdersForRoleQuery(claims.UserID, claims.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.GetOrdersForRole.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetCompletedOrders handles GET /api/v1/orders/completed/:driverId.
func (s *Server) GetCompletedOrders(ctx echo.Context) error {
	query, err := queries.NewGetCompletedOrdersQuery(ctx.Param("driverId"))
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.GetCompletedOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var request updateStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(ctx.Param("id"), request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel. Only the customer who
// placed the order may cancel it.
func (s *Server) CancelOrder(ctx echo.Context) error {
	claims, _ := ClaimsFrom(ctx)

	var request cancelOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(
		ctx.Param("id"), claims.UserID,
		request.Reason, request.AdditionalComments, request.Acknowledgment,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	summary, err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCancellationResponse(summary))
}

// CompleteDelivery handles POST /api/v1/deliveries.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	var request completeDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(request.OrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	ord, err := s.handlers.CompleteDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(ord))
}

// SendNotification handles POST /api/v1/notifications, a thin relay to the
// notification service.
func (s *Server) SendNotification(ctx echo.Context) error {
	var request sendNotificationRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSendNotificationCommand(request.To, request.Subject, request.Text)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.SendNotification.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusAccepted)
}
