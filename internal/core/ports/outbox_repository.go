package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OutboxRepository defines the persistence contract for the status event
// outbox. Events are appended in the same transaction as the order update
// and drained later by the notification dispatcher, so notification delivery
// never sits inside the financial transaction.
type OutboxRepository interface {
	// Add appends a status change event to the outbox.
	Add(ctx context.Context, event order.StatusChanged) error

	// GetUnpublished returns up to limit events that have not been
	// dispatched yet, oldest first.
	GetUnpublished(ctx context.Context, limit int) ([]order.StatusChanged, error)

	// MarkPublished stamps the event as dispatched. Dispatch is best effort:
	// an event is marked even when a downstream sink failed, so there is no
	// automatic redelivery.
	MarkPublished(ctx context.Context, eventID kernel.UUID) error
}
