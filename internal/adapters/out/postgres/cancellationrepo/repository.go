package cancellationrepo

import (
	"context"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/cancellation"
	"dispatch/internal/pkg/errs"
)

// GormCancellationRepository implements ports.CancellationRepository using
// GORM.
type GormCancellationRepository struct {
	db *gorm.DB
}

// NewGormCancellationRepository creates a new GORM cancellation repository.
func NewGormCancellationRepository(db *gorm.DB) *GormCancellationRepository {
	return &GormCancellationRepository{db: db}
}

// Add persists a new cancellation record.
func (r *GormCancellationRepository) Add(ctx context.Context, record *cancellation.Cancellation) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByOrderID retrieves all cancellation records for an order, newest first.
func (r *GormCancellationRepository) GetByOrderID(
	ctx context.Context,
	orderID string,
) ([]*cancellation.Cancellation, error) {
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderId")
	}

	var dtos []CancellationDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]*cancellation.Cancellation, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
