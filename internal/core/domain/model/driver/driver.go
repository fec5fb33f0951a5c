package driver

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// RoleDeliveryPerson is the identity-store role that marks a person as an
// approved driver. Only records carrying this role are registered.
const RoleDeliveryPerson = "DeliveryPerson"

// Domain errors for driver operations.
var (
	// ErrUserIDIsRequired is returned when attempting to create a driver
	// without an identity-store reference.
	ErrUserIDIsRequired = errs.NewValueIsRequiredError("userId")
	// ErrDriverIsNotConstructed is returned when using an improperly
	// initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")
)

// Driver represents a delivery person registered with the dispatch service.
// It is an aggregate root tracking the driver's contact identity, last
// reported location, and delivery load.
//
// Key responsibilities:
//   - Carrying identity fields (name, email, phone) synced from the identity
//     store, refreshed opportunistically and never degraded to empty values
//   - Tracking the last reported location used for nearest-driver matching
//   - Tracking availability and the in-flight delivery counter
//
// Business rules:
//   - userId must be present; it references the person in the identity store
//   - currentOrders never goes below zero
//   - Marking busy clears availability; marking free restores it
type Driver struct {
	// userID references the person record in the identity store
	userID string
	name   string
	email  string
	phone  string
	role   string
	// location is the last reported position; the zero value means the
	// driver has never reported a location
	location      kernel.GeoPoint
	isAvailable   bool
	currentOrders int
	guard         guard.ConstructorGuard
}

// NewDriver registers a new driver with no reported location yet.
// Fresh drivers start available with no in-flight deliveries and the
// DeliveryPerson role.
func NewDriver(userID, name, email, phone string) (*Driver, error) {
	driver := &Driver{
		role:        RoleDeliveryPerson,
		isAvailable: true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := driver.setUserID(userID); err != nil {
		return nil, err
	}
	driver.RefreshIdentity(name, email, phone)

	return driver, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage,
// preserving its availability and load at the time of persistence.
//
// The location stays at the zero value when the driver has never reported
// one. A negative currentOrders counter is rejected.
func RestoreDriver(
	userID, name, email, phone, role string,
	location kernel.GeoPoint,
	isAvailable bool,
	currentOrders int,
) (*Driver, error) {
	driver := &Driver{
		name:        name,
		email:       email,
		phone:       phone,
		role:        role,
		location:    location,
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setUserID(userID),
		driver.setCurrentOrders(currentOrders),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// IsEqual compares two drivers by their identity-store reference.
func (d *Driver) IsEqual(other *Driver) bool {
	if other == nil {
		return false
	}
	return d.userID == other.userID
}

// Validate checks if the Driver was properly constructed.
// The zero value of Driver is invalid and will fail this validation.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// UserID returns the driver's identity-store reference.
func (d *Driver) UserID() string {
	return d.userID
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// Email returns the driver's notification email address.
func (d *Driver) Email() string {
	return d.email
}

// Phone returns the driver's phone number.
func (d *Driver) Phone() string {
	return d.phone
}

// Role returns the identity-store role of the driver.
func (d *Driver) Role() string {
	return d.role
}

// Location returns the driver's last reported position.
// The zero value means no location has been reported yet.
func (d *Driver) Location() kernel.GeoPoint {
	return d.location
}

// HasLocation reports whether the driver has ever reported a position.
func (d *Driver) HasLocation() bool {
	return d.location.Validate() == nil
}

// IsAvailable reports whether the driver can accept new deliveries.
func (d *Driver) IsAvailable() bool {
	return d.isAvailable
}

// CurrentOrders returns the number of in-flight deliveries.
func (d *Driver) CurrentOrders() int {
	return d.currentOrders
}

// HasContactIdentity reports whether the driver carries the minimal contact
// fields required for batch assignment (name and email).
func (d *Driver) HasContactIdentity() bool {
	return d.name != "" && d.email != ""
}

// UpdateLocation records a new position reported by the driver.
// The point must be a properly constructed coordinate pair.
func (d *Driver) UpdateLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	d.location = location
	return nil
}

// RefreshIdentity updates contact fields from the latest known values.
// Empty incoming values never overwrite existing non-empty fields, so a
// partial identity payload cannot degrade the record.
func (d *Driver) RefreshIdentity(name, email, phone string) {
	if name != "" {
		d.name = name
	}
	if email != "" {
		d.email = email
	}
	if phone != "" {
		d.phone = phone
	}
}

// MarkBusy records an accepted delivery: the driver becomes unavailable and
// the in-flight counter grows by one.
func (d *Driver) MarkBusy() {
	d.isAvailable = false
	d.currentOrders++
}

// MarkFree records a finished or released delivery: the driver becomes
// available and the in-flight counter shrinks by one, never below zero.
func (d *Driver) MarkFree() {
	d.isAvailable = true
	if d.currentOrders > 0 {
		d.currentOrders--
	}
}

// setUserID sets the identity-store reference with validation.
func (d *Driver) setUserID(userID string) error {
	if userID == "" {
		return ErrUserIDIsRequired
	}

	d.userID = userID
	return nil
}

// setCurrentOrders sets the in-flight counter with validation.
func (d *Driver) setCurrentOrders(currentOrders int) error {
	if currentOrders < 0 {
		return errs.NewValueIsOutOfRangeError("currentOrders", currentOrders, 0, int(^uint(0)>>1))
	}

	d.currentOrders = currentOrders
	return nil
}
