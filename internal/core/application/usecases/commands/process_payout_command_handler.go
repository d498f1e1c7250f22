package commands

import (
	"context"
	"time"
)

// ProcessPayoutCommandHandler records an administrator's decision on a payout
// request. The aggregate enforces that a request is decided exactly once;
// "processed" only records that the transfer was made out of band, no money
// moves here.
type ProcessPayoutCommandHandler struct {
	uowFactory PayoutUoWFactory
}

// NewProcessPayoutCommandHandler creates a handler for payout decisions.
func NewProcessPayoutCommandHandler(uowFactory PayoutUoWFactory) ProcessPayoutCommandHandler {
	return ProcessPayoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payout decision command.
func (h *ProcessPayoutCommandHandler) Handle(ctx context.Context, cmd ProcessPayoutCommand) error {
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

	payoutRepo := uow.PayoutRepository()
	request, err := payoutRepo.Get(ctx, cmd.PayoutID())
	if err != nil {
		return err
	}

	if err = request.Process(cmd.Decision(), cmd.Notes(), time.Now()); err != nil {
		return err
	}

	if err = payoutRepo.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
