package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payout"
	"marketplace/internal/core/domain/services"
)

// RequestPayoutCommandHandler handles the business logic for payout requests.
// It recomputes the earner's available balance inside the transaction that
// writes the request, so two racing requests cannot both reserve the same
// funds: lifetime delivered earnings minus processed minus pending payouts.
type RequestPayoutCommandHandler struct {
	uowFactory PayoutUoWFactory
	calculator services.SettlementCalculator
}

// NewRequestPayoutCommandHandler creates a handler for payout requests.
func NewRequestPayoutCommandHandler(
	uowFactory PayoutUoWFactory,
	calculator services.SettlementCalculator,
) RequestPayoutCommandHandler {
	return RequestPayoutCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle processes the payout request command. An amount exceeding the
// recomputed available balance fails with InsufficientBalance and nothing is
// written.
func (h *RequestPayoutCommandHandler) Handle(ctx context.Context, cmd RequestPayoutCommand) error {
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

	earnings, err := h.earnings(ctx, uow, cmd)
	if err != nil {
		return err
	}

	payoutRepo := uow.PayoutRepository()
	processed, err := payoutRepo.SumByStatus(ctx, cmd.UserID(), payout.Processed)
	if err != nil {
		return err
	}
	pending, err := payoutRepo.SumByStatus(ctx, cmd.UserID(), payout.Pending)
	if err != nil {
		return err
	}

	if err = h.calculator.CheckWithdrawal(cmd.UserID(), cmd.Amount(), earnings, processed, pending); err != nil {
		return err
	}

	request, err := payout.NewRequest(
		cmd.PayoutID(), cmd.UserID(), cmd.EarnerType(),
		cmd.Amount(), cmd.BankDetails(), time.Now())
	if err != nil {
		return err
	}

	if err = payoutRepo.Add(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// earnings returns the earner's lifetime delivered earnings for their role.
func (h *RequestPayoutCommandHandler) earnings(
	ctx context.Context, uow PayoutUoW, cmd RequestPayoutCommand,
) (kernel.Money, error) {
	if cmd.EarnerType() == payout.EarnerRider {
		return uow.OrderRepository().SumRiderEarnings(ctx, cmd.UserID())
	}
	return uow.OrderRepository().SumVendorEarnings(ctx, cmd.UserID())
}
