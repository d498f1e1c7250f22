// Package notificationrepo provides data transfer objects and mapping
// functions for in-app notification persistence.
package notificationrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting
// notifications.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	Kind      string
	Title     string
	Message   string
	OrderID   *uuid.UUID `gorm:"type:uuid"`
	Read      bool
	CreatedAt time.Time
}

// TableName specifies the database table name for notifications.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification to its database representation.
func fromDomain(n *notification.Notification) NotificationDTO {
	var orderID *uuid.UUID
	if id := n.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return NotificationDTO{
		ID:        n.ID().Bytes(),
		UserID:    n.UserID().Bytes(),
		Kind:      n.Kind().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		OrderID:   orderID,
		Read:      n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}
}

// toDomain converts a database DTO to a notification.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oid, oidErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if oidErr != nil {
			return nil, oidErr
		}
		orderID = &oid
	}

	return notification.RestoreNotification(
		id, userID, notification.KindOrderUpdate,
		dto.Title, dto.Message, orderID, dto.Read, dto.CreatedAt,
	)
}
