package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/ports"
)

// ErrNoUnpublishedEvents signals an empty outbox. Callers treat this as a
// normal idle tick, not a failure.
var ErrNoUnpublishedEvents = errors.New("no unpublished events found")

// ErrPushDeliveryIncomplete signals that the batch was dispatched and marked
// published, but one or more push sends failed. In-app notifications were
// still written; push delivery is best effort and is not retried.
var ErrPushDeliveryIncomplete = errors.New("push delivery incomplete")

// DispatchNotificationsCommandHandler drains the status event outbox. For each
// event it fans out in-app notifications to the interested parties, pushes
// them over the message broker, and stamps the event as published in the same
// transaction as the notification writes. A push failure never blocks the
// batch: the event is marked published regardless, so a flaky broker cannot
// wedge the outbox.
type DispatchNotificationsCommandHandler struct {
	uowFactory DispatchUoWFactory
	pushSender ports.PushSender
}

// NewDispatchNotificationsCommandHandler creates a handler for outbox dispatch.
func NewDispatchNotificationsCommandHandler(
	uowFactory DispatchUoWFactory,
	pushSender ports.PushSender,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		uowFactory: uowFactory,
		pushSender: pushSender,
	}
}

// Handle drains one batch of unpublished events, oldest first. Returns
// ErrNoUnpublishedEvents when the outbox is empty and
// ErrPushDeliveryIncomplete when the batch committed but some pushes failed.
func (h *DispatchNotificationsCommandHandler) Handle(ctx context.Context, cmd DispatchNotificationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outboxRepo := uow.OutboxRepository()
	events, err := outboxRepo.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return ErrNoUnpublishedEvents
	}

	notificationRepo := uow.NotificationRepository()

	var pushErr error
	now := time.Now()
	for _, event := range events {
		for _, route := range notification.Routes(event) {
			orderID := event.OrderID
			aggregate, err := notification.NewNotification(
				kernel.NewUUID(),
				route.RecipientID,
				notification.KindOrderUpdate,
				route.Title,
				route.Message,
				&orderID,
				now,
			)
			if err != nil {
				return err
			}

			if err = notificationRepo.Add(ctx, aggregate); err != nil {
				return err
			}

			data := map[string]string{
				"order_id": event.OrderID.String(),
				"status":   event.To.String(),
			}
			if err = h.pushSender.Send(ctx, route.RecipientID, route.Title, route.Message, data); err != nil {
				pushErr = errors.Join(pushErr, err)
			}
		}

		if err = outboxRepo.MarkPublished(ctx, event.EventID); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if pushErr != nil {
		return errors.Join(ErrPushDeliveryIncomplete, pushErr)
	}
	return nil
}
