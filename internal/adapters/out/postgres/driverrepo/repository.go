package driverrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/pkg/errs"
)

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Upsert persists a driver record, creating the row on first contact and
// replacing all fields afterwards.
func (r *GormDriverRepository) Upsert(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// Update saves an existing driver record.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", aggregate.UserID())
	}

	return nil
}

// Get retrieves a driver by their identity-store reference.
func (r *GormDriverRepository) Get(ctx context.Context, userID string) (*driver.Driver, error) {
	if userID == "" {
		return nil, errs.NewValueIsRequiredError("userId")
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", userID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every registered driver.
func (r *GormDriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllAvailable retrieves drivers eligible for assignment: available, in the
// delivery role, and with a reported location.
func (r *GormDriverRepository) GetAllAvailable(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).
		Where("is_available = ? AND role = ? AND has_location = ?",
			true, driver.RoleDeliveryPerson, true).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// MarkBusy clears availability and increments the in-flight counter in one
// statement, so concurrent assignments cannot lose an increment.
func (r *GormDriverRepository) MarkBusy(ctx context.Context, userID string) error {
	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"is_available":   false,
			"current_orders": gorm.Expr("current_orders + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", userID)
	}

	return nil
}

// MarkFree restores availability and decrements the in-flight counter in one
// statement, never below zero.
func (r *GormDriverRepository) MarkFree(ctx context.Context, userID string) error {
	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"is_available":   true,
			"current_orders": gorm.Expr("CASE WHEN current_orders > 0 THEN current_orders - 1 ELSE 0 END"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", userID)
	}

	return nil
}

// Remove deletes a driver record.
func (r *GormDriverRepository) Remove(ctx context.Context, userID string) error {
	result := r.db.WithContext(ctx).Delete(&DriverDTO{}, "user_id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", userID)
	}

	return nil
}

func toDomainSlice(dtos []DriverDTO) ([]*driver.Driver, error) {
	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, nil
}
