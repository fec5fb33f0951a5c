package ports

import "context"

// IdentityRecord is a person record as reported by the identity store.
type IdentityRecord struct {
	ID     string
	Name   string
	Email  string
	Phone  string
	Role   string
	Status string
}

// IdentitySource is the client contract for the external identity store.
// The driver registry is reconciled against its approved delivery-role
// records.
type IdentitySource interface {
	// GetApprovedDrivers fetches every person currently approved with the
	// delivery role.
	GetApprovedDrivers(ctx context.Context) ([]IdentityRecord, error)
}
