// Package driverrepo provides data transfer objects and mapping functions for
// driver persistence. This package implements the repository pattern for the
// driver aggregate, handling the conversion between domain entities and
// database representations.
package driverrepo

import (
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// DriverDTO represents the database structure for persisting driver
// aggregates. The primary key is the identity store's user identifier, so one
// person maps to exactly one registry row.
type DriverDTO struct {
	UserID        string  `gorm:"type:varchar(64);primaryKey"`
	Name          string  `gorm:"type:varchar(255)"`
	Email         string  `gorm:"type:varchar(255)"`
	Phone         string  `gorm:"type:varchar(32)"`
	Role          string  `gorm:"type:varchar(64);not null"`
	Latitude      float64 `gorm:"type:double precision"`
	Longitude     float64 `gorm:"type:double precision"`
	HasLocation   bool    `gorm:"not null;default:false"`
	IsAvailable   bool    `gorm:"not null;default:true"`
	CurrentOrders int     `gorm:"type:int;not null;default:0"`
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers" instead of
// "driver_dtos".
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver aggregate to its database representation.
// An unknown location is stored as HasLocation=false with zero coordinates.
func fromDomain(d *driver.Driver) DriverDTO {
	dto := DriverDTO{
		UserID:        d.UserID(),
		Name:          d.Name(),
		Email:         d.Email(),
		Phone:         d.Phone(),
		Role:          d.Role(),
		IsAvailable:   d.IsAvailable(),
		CurrentOrders: d.CurrentOrders(),
	}

	if d.HasLocation() {
		dto.Latitude = d.Location().Latitude()
		dto.Longitude = d.Location().Longitude()
		dto.HasLocation = true
	}

	return dto
}

// toDomain converts a database DTO to a driver aggregate using RestoreDriver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	var location kernel.GeoPoint
	if dto.HasLocation {
		point, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
		if err != nil {
			return nil, err
		}
		location = point
	}

	return driver.RestoreDriver(
		dto.UserID,
		dto.Name,
		dto.Email,
		dto.Phone,
		dto.Role,
		location,
		dto.IsAvailable,
		dto.CurrentOrders,
	)
}
