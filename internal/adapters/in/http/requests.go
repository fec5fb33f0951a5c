package http

import (
	"github.com/go-playground/validator/v10"

	"dispatch/internal/pkg/errs"
)

// Validator adapts go-playground/validator to echo's binding hook. Failures
// come back as invalid-value errors so respondError renders them in the same
// envelope as every other 400.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return nil
}

// Latitude and longitude are pointers so a literal 0 still satisfies the
// required rule.
type reportLocationRequest struct {
	Latitude  *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
}

type paymentConfirmedRequest struct {
	OrderID string `json:"orderId" validate:"required"`
	Secret  string `json:"secret" validate:"required"`
}

type updateStatusRequest struct {
	Status string `json:"orderStatus" validate:"required"`
}

type cancelOrderRequest struct {
	Reason             string `json:"reason" validate:"required,min=5,max=500"`
	AdditionalComments string `json:"additionalComments" validate:"max=1000"`
	Acknowledgment     bool   `json:"acknowledgment"`
}

type completeDeliveryRequest struct {
	OrderID string `json:"orderId" validate:"required"`
}

type sendNotificationRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Text    string `json:"text" validate:"required"`
}
