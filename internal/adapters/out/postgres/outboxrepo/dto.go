// Package outboxrepo persists order status events in the transactional
// outbox. Events are written in the same transaction as the status change
// they describe and drained later by the notification dispatcher, so every
// committed transition is eventually announced exactly once.
package outboxrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// StatusEventDTO represents one outbox row. A null published_at marks the
// event as still undelivered.
type StatusEventDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;index"`
	CustomerID  uuid.UUID  `gorm:"type:uuid"`
	VendorID    uuid.UUID  `gorm:"type:uuid"`
	RiderID     *uuid.UUID `gorm:"type:uuid"`
	FromStatus  string
	ToStatus    string
	OccurredAt  time.Time
	PublishedAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox events.
func (StatusEventDTO) TableName() string {
	return "status_events"
}

// fromDomain converts a status-changed event to its database representation.
func fromDomain(event order.StatusChanged) StatusEventDTO {
	var riderID *uuid.UUID
	if id := event.RiderID; id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	return StatusEventDTO{
		ID:         event.EventID.Bytes(),
		OrderID:    event.OrderID.Bytes(),
		CustomerID: event.CustomerID.Bytes(),
		VendorID:   event.VendorID.Bytes(),
		RiderID:    riderID,
		FromStatus: event.From.String(),
		ToStatus:   event.To.String(),
		OccurredAt: event.OccurredAt,
	}
}

// toDomain converts a database DTO to a status-changed event.
func toDomain(dto StatusEventDTO) (order.StatusChanged, error) {
	eventID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.StatusChanged{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.StatusChanged{}, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return order.StatusChanged{}, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return order.StatusChanged{}, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rid, ridErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if ridErr != nil {
			return order.StatusChanged{}, ridErr
		}
		riderID = &rid
	}

	from, err := order.ParseStatus(dto.FromStatus)
	if err != nil {
		return order.StatusChanged{}, err
	}
	to, err := order.ParseStatus(dto.ToStatus)
	if err != nil {
		return order.StatusChanged{}, err
	}

	return order.StatusChanged{
		EventID:    eventID,
		OrderID:    orderID,
		CustomerID: customerID,
		VendorID:   vendorID,
		RiderID:    riderID,
		From:       from,
		To:         to,
		OccurredAt: dto.OccurredAt,
	}, nil
}
