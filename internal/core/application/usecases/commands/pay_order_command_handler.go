package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// PayOrderCommandHandler settles a deferred order from the customer's wallet.
// The wallet debit, the status move to Pending Acceptance, and the outbox
// event commit atomically; an insufficient balance leaves both the wallet and
// the order untouched.
type PayOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewPayOrderCommandHandler creates a handler for deferred order payments.
func NewPayOrderCommandHandler(uowFactory CheckoutUoWFactory) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the wallet payment command.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
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

	wallet, err := uow.WalletRepository().GetByUser(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	now := time.Now()
	from := aggregate.Status()

	// TransitionTo also rejects callers who are not the order's customer.
	if err = aggregate.TransitionTo(order.PendingAcceptance, order.ActorCustomer, cmd.CustomerID(), now); err != nil {
		return err
	}

	expectedBalance := wallet.Balance()
	entry, err := wallet.Debit(aggregate.TotalAmount(), aggregate.ID(), now)
	if err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, aggregate, from); err != nil {
		return err
	}

	if err = uow.WalletRepository().Update(ctx, wallet, expectedBalance, entry); err != nil {
		return err
	}

	if err = uow.OutboxRepository().Add(ctx, order.NewStatusChanged(aggregate, from, now)); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
