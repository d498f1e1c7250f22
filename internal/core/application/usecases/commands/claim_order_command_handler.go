package commands

import (
	"context"
	"time"
)

// ClaimOrderCommandHandler handles the business logic for rider claims.
// The aggregate checks the domain rules (order is Ready for Pickup and
// unassigned); the repository's conditional update decides the race, so of
// any number of concurrent claimants exactly one succeeds and the rest get
// ConcurrencyConflict. Claiming does not change the order status.
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClaimOrderCommandHandler creates a handler for claim operations.
func NewClaimOrderCommandHandler(uowFactory OrderUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command. A lost race surfaces as
// ConcurrencyConflict; the rider must refetch the order list rather than
// retry blindly.
func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
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

	if err = aggregate.Claim(cmd.RiderID(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Claim(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
