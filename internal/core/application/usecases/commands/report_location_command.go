package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrReportLocationCommandIsNotConstructed = errors.New(
		"ReportLocationCommand must be created via NewReportLocationCommand constructor",
	)
	ErrUserIDIsRequired = errors.New("userID is required")
)

// ReportLocationCommand records a driver's position ping. The first ping a
// driver ever sends registers the driver; later pings update the location and
// opportunistically refresh the contact identity carried in the bearer
// claims.
type ReportLocationCommand struct {
	userID   string
	name     string
	email    string
	phone    string
	location kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewReportLocationCommand creates a validated location report.
// The user identifier and a valid coordinate pair are required; identity
// fields are optional and never degrade the stored record when empty.
func NewReportLocationCommand(
	userID, name, email, phone string,
	latitude, longitude float64,
) (ReportLocationCommand, error) {
	if userID == "" {
		return ReportLocationCommand{}, ErrUserIDIsRequired
	}

	location, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return ReportLocationCommand{}, err
	}

	return ReportLocationCommand{
		userID:   userID,
		name:     name,
		email:    email,
		phone:    phone,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c *ReportLocationCommand) Validate() error {
	return c.guard.Validate(ErrReportLocationCommandIsNotConstructed)
}

// UserID returns the reporting driver's identity-store reference.
func (c *ReportLocationCommand) UserID() string {
	return c.userID
}

// Name returns the driver name carried with the report, possibly empty.
func (c *ReportLocationCommand) Name() string {
	return c.name
}

// Email returns the driver email carried with the report, possibly empty.
func (c *ReportLocationCommand) Email() string {
	return c.email
}

// Phone returns the driver phone carried with the report, possibly empty.
func (c *ReportLocationCommand) Phone() string {
	return c.phone
}

// Location returns the reported position.
func (c *ReportLocationCommand) Location() kernel.GeoPoint {
	return c.location
}
