package queries

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Caller roles recognized by the role-scoped order listing. DeliveryPerson
// lives in the driver package; the other two only exist as bearer claims.
const (
	RoleCustomer        = "Customer"
	RoleRestaurantOwner = "RestaurantOwner"
)

var ErrGetOrdersForRoleQueryIsNotConstructed = errors.New(
	"GetOrdersForRoleQuery must be created via NewGetOrdersForRoleQuery constructor",
)

// GetOrdersForRoleQuery lists the orders visible to one caller:
//
//   - a customer sees the orders they placed,
//   - a delivery person sees their active assigned orders,
//   - a restaurant owner sees the orders of their restaurant.
//
// The user identifier is the caller's subject from the bearer claims; for a
// restaurant owner it is the restaurant identifier their account is bound to.
type GetOrdersForRoleQuery struct {
	userID string
	role   string

	guard guard.ConstructorGuard
}

// NewGetOrdersForRoleQuery creates a validated role-scoped listing query.
func NewGetOrdersForRoleQuery(userID, role string) (GetOrdersForRoleQuery, error) {
	if userID == "" {
		return GetOrdersForRoleQuery{}, errs.NewValueIsRequiredError("userId")
	}
	if role == "" {
		return GetOrdersForRoleQuery{}, errs.NewValueIsRequiredError("role")
	}

	return GetOrdersForRoleQuery{
		userID: userID,
		role:   role,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersForRoleQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersForRoleQueryIsNotConstructed)
}

// UserID returns the caller's identifier.
func (q GetOrdersForRoleQuery) UserID() string {
	return q.userID
}

// Role returns the caller's role claim.
func (q GetOrdersForRoleQuery) Role() string {
	return q.role
}
