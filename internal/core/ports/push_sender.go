package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// PushSender delivers a notification to the recipient's devices. Delivery is
// best effort: the dispatcher logs failures and moves on, it never retries
// and never fails the transition that produced the notification.
type PushSender interface {
	Send(ctx context.Context, userID kernel.UUID, title, message string, data map[string]string) error
}
