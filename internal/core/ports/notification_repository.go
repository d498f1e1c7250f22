package ports

import (
	"context"

	"marketplace/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for in-app
// notifications. Rows are written by the outbox dispatcher and read back
// through the notification query.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, aggregate *notification.Notification) error
}
