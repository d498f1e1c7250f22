package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/wallet"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for checkout. It
// reconciles the client's claimed prices against the catalog, settles the
// payment, and persists the order, all before anything is visible to the
// vendor.
//
// Settlement per payment method:
//   - wallet: the wallet debit and the order write commit in one transaction;
//     an insufficient balance aborts before any write
//   - card: the gateway charge is verified first, with no transaction open;
//     the order is only created after the gateway confirmed the money, and
//     the consumed reference is recorded in the ledger so it cannot be
//     replayed through another checkout or a top-up
//   - deferred: the order is created unpaid in NewOrder status and settled
//     later through the wallet payment operation
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	validator  *services.PricingValidator
	gateway    ports.PaymentGateway
}

// NewPlaceOrderCommandHandler creates a handler for checkout operations.
func NewPlaceOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	validator *services.PricingValidator,
	gateway ports.PaymentGateway,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		gateway:    gateway,
	}
}

// Handle processes the checkout command. On any rejection (integrity, funds,
// gateway) no order exists and no money has moved.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, total, err := h.validator.Validate(
		ctx, cmd.VendorID(), cmd.Lines(), cmd.DeliveryFee(), cmd.ClaimedTotal())
	if err != nil {
		return err
	}

	// Gateway verification happens before the transaction opens so a slow
	// provider never holds database locks.
	if cmd.Payment() == PaymentCard {
		if err = h.verifyCharge(ctx, cmd.GatewayReference(), total); err != nil {
			return err
		}
	}

	now := time.Now()
	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerID(), cmd.VendorID(), items,
		cmd.DeliveryFee(), cmd.DeliveryAddress(), cmd.DeliveryLocation(), now)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	switch cmd.Payment() {
	case PaymentWallet:
		err = h.settleFromWallet(ctx, uow, newOrder, now)
	case PaymentCard:
		err = h.settleByCard(ctx, uow, newOrder, cmd.GatewayReference(), now)
	default:
		err = uow.OrderRepository().Add(ctx, newOrder)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// settleFromWallet debits the customer's wallet and records the paid order.
func (h *PlaceOrderCommandHandler) settleFromWallet(
	ctx context.Context, uow CheckoutUoW, newOrder *order.Order, now time.Time,
) error {
	wallet, err := uow.WalletRepository().GetByUser(ctx, newOrder.CustomerID())
	if err != nil {
		return err
	}

	expectedBalance := wallet.Balance()
	entry, err := wallet.Debit(newOrder.TotalAmount(), newOrder.ID(), now)
	if err != nil {
		return err
	}

	if err = h.settle(ctx, uow, newOrder, now); err != nil {
		return err
	}

	return uow.WalletRepository().Update(ctx, wallet, expectedBalance, entry)
}

// settleByCard records the paid order together with a ledger entry for the
// consumed gateway reference. The entry touches no balance; it exists so the
// reference check on top-ups and other checkouts sees the charge as spent.
func (h *PlaceOrderCommandHandler) settleByCard(
	ctx context.Context, uow CheckoutUoW, newOrder *order.Order, reference string, now time.Time,
) error {
	walletRepo := uow.WalletRepository()
	used, err := walletRepo.HasTransactionWithReference(ctx, reference)
	if err != nil {
		return err
	}
	if used {
		return errs.NewGatewayVerificationFailedErrorWithCause(reference,
			errors.New("gateway reference has already been consumed"))
	}

	if err = h.settle(ctx, uow, newOrder, now); err != nil {
		return err
	}

	entry, err := wallet.NewTransaction(
		kernel.NewUUID(), newOrder.CustomerID(), wallet.Debit, newOrder.TotalAmount(),
		"card payment for order "+newOrder.ID().String(), reference, now,
	)
	if err != nil {
		return err
	}
	return walletRepo.AppendTransaction(ctx, entry)
}

// settle marks the order paid and persists it together with its status event.
func (h *PlaceOrderCommandHandler) settle(
	ctx context.Context, uow CheckoutUoW, newOrder *order.Order, now time.Time,
) error {
	from := newOrder.Status()
	if err := newOrder.TransitionTo(order.PendingAcceptance, order.ActorCustomer, newOrder.CustomerID(), now); err != nil {
		return err
	}

	if err := uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.OutboxRepository().Add(ctx, order.NewStatusChanged(newOrder, from, now))
}

// verifyCharge confirms the gateway charge succeeded and covers the
// server-computed total.
func (h *PlaceOrderCommandHandler) verifyCharge(ctx context.Context, reference string, total kernel.Money) error {
	result, err := h.gateway.Verify(ctx, reference)
	if err != nil {
		return err
	}
	if !result.Success {
		return errs.NewGatewayVerificationFailedError(reference)
	}
	if total.GreaterThan(result.Amount) && !total.WithinToleranceOf(result.Amount) {
		return errs.NewGatewayVerificationFailedErrorWithCause(reference,
			fmt.Errorf("charged %s is less than order total %s", result.Amount, total))
	}
	return nil
}
