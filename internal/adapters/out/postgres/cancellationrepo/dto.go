// Package cancellationrepo persists the immutable cancellation audit records.
package cancellationrepo

import (
	"time"

	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/cancellation"
	"dispatch/internal/core/domain/model/order"
)

// CancellationDTO represents the database structure for persisting
// cancellation records. Rows are insert-only.
type CancellationDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID             string    `gorm:"type:varchar(64);not null;index"`
	UserID              string    `gorm:"type:varchar(64);not null"`
	Reason              string    `gorm:"type:varchar(500);not null"`
	AdditionalComments  string    `gorm:"type:varchar(1000)"`
	Acknowledgment      bool      `gorm:"not null"`
	OrderStatusSnapshot string    `gorm:"type:varchar(32);not null"`
	CreatedAt           time.Time `gorm:"not null"`
}

// TableName specifies the database table name for cancellation records.
func (CancellationDTO) TableName() string {
	return "cancellations"
}

// fromDomain converts a cancellation record to its database representation.
func fromDomain(record *cancellation.Cancellation) CancellationDTO {
	return CancellationDTO{
		ID:                  record.ID(),
		OrderID:             record.OrderID(),
		UserID:              record.UserID(),
		Reason:              record.Reason(),
		AdditionalComments:  record.AdditionalComments(),
		Acknowledgment:      record.Acknowledgment(),
		OrderStatusSnapshot: record.OrderStatusSnapshot().String(),
		CreatedAt:           record.CreatedAt(),
	}
}

// toDomain converts a database DTO back to a cancellation record.
func toDomain(dto CancellationDTO) (*cancellation.Cancellation, error) {
	statusSnapshot, err := order.NewStatus(dto.OrderStatusSnapshot)
	if err != nil {
		return nil, err
	}

	return cancellation.RestoreCancellation(
		dto.ID,
		dto.OrderID,
		dto.UserID,
		dto.Reason,
		dto.AdditionalComments,
		dto.Acknowledgment,
		statusSnapshot,
		dto.CreatedAt,
	)
}
