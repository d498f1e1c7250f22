package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler handles the business logic for order status
// transitions. The transition table and identity rules live on the aggregate;
// this handler loads the current state, applies the change, and persists it
// conditionally on the status it loaded, so two racing transitions cannot
// both win. The outbox event is appended in the same transaction.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command. On an illegal transition the
// order is untouched; on a lost race the caller gets ConcurrencyConflict and
// must refetch before deciding whether to retry.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now()
	from := aggregate.Status()
	if err = aggregate.TransitionTo(cmd.To(), cmd.Actor(), cmd.ActorID(), now); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, aggregate, from); err != nil {
		return err
	}

	if err = uow.OutboxRepository().Add(ctx, order.NewStatusChanged(aggregate, from, now)); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
