package queries

import (
	"context"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/kernel"
)

// GetAllDriversQueryHandler retrieves all driver records from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDriversQueryHandler creates a handler for driver registry queries.
// Requires a GORM database connection for query execution.
func NewGetAllDriversQueryHandler(db *gorm.DB) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{db: db}
}

// Handle executes the query to retrieve all drivers.
// Returns a slice of driver read models sorted by name.
func (h GetAllDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAllDriversQuery,
) ([]GetAllDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetAllDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			user_id,
			name,
			email,
			phone,
			role,
			latitude,
			longitude,
			has_location,
			is_available,
			current_orders
		FROM drivers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllDriversQueryResponse
		var latitude, longitude float64

		err = rows.Scan(
			&resp.UserID,
			&resp.Name,
			&resp.Email,
			&resp.Phone,
			&resp.Role,
			&latitude,
			&longitude,
			&resp.HasLocation,
			&resp.IsAvailable,
			&resp.CurrentOrders,
		)
		if err != nil {
			return nil, err
		}

		if resp.HasLocation {
			location, locErr := kernel.NewGeoPoint(latitude, longitude)
			if locErr != nil {
				return nil, locErr
			}
			resp.Location = location
		}

		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
