package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// VerifyTopUpCommandHandler confirms a gateway charge and credits the wallet
// exactly once. The gateway call happens outside the database transaction;
// the reference check is repeated inside it, so a concurrent duplicate of the
// same verification cannot double-credit.
type VerifyTopUpCommandHandler struct {
	uowFactory WalletUoWFactory
	gateway    ports.PaymentGateway
}

// NewVerifyTopUpCommandHandler creates a handler for top-up verification.
func NewVerifyTopUpCommandHandler(uowFactory WalletUoWFactory, gateway ports.PaymentGateway) VerifyTopUpCommandHandler {
	return VerifyTopUpCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the top-up verification command and returns the holder's
// balance after it. A reference with an existing ledger entry is a no-op
// success returning the current balance; this covers both a repeated
// verification and a reference already consumed by a card checkout, so one
// gateway charge can never pay for an order and fund a top-up. A gateway
// rejection creates nothing.
func (h *VerifyTopUpCommandHandler) Handle(ctx context.Context, cmd VerifyTopUpCommand) (kernel.Money, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.Money{}, err
	}

	consumed, balance, err := h.referenceConsumed(ctx, cmd)
	if err != nil {
		return kernel.Money{}, err
	}
	if consumed {
		return balance, nil
	}

	result, err := h.gateway.Verify(ctx, cmd.Reference())
	if err != nil {
		return kernel.Money{}, err
	}
	if !result.Success {
		return kernel.Money{}, errs.NewGatewayVerificationFailedError(cmd.Reference())
	}

	return h.credit(ctx, cmd, result)
}

// referenceConsumed reports whether the reference already has a ledger entry,
// returning the holder's current balance alongside a positive answer.
func (h *VerifyTopUpCommandHandler) referenceConsumed(
	ctx context.Context, cmd VerifyTopUpCommand,
) (bool, kernel.Money, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, kernel.Money{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	walletRepo := uow.WalletRepository()
	consumed, err := walletRepo.HasTransactionWithReference(ctx, cmd.Reference())
	if err != nil || !consumed {
		return false, kernel.Money{}, err
	}

	balance, err := h.balanceFor(ctx, walletRepo, cmd.UserID())
	return true, balance, err
}

// credit applies the verified amount inside a fresh transaction, re-checking
// the reference now that writes are serialized against other verifications.
// Returns the holder's balance after the credit.
func (h *VerifyTopUpCommandHandler) credit(
	ctx context.Context, cmd VerifyTopUpCommand, result ports.VerifyResult,
) (kernel.Money, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.Money{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	walletRepo := uow.WalletRepository()
	credited, err := walletRepo.HasTransactionWithReference(ctx, cmd.Reference())
	if err != nil {
		return kernel.Money{}, err
	}
	if credited {
		return h.balanceFor(ctx, walletRepo, cmd.UserID())
	}

	holder, err := h.walletFor(ctx, walletRepo, cmd.UserID())
	if err != nil {
		return kernel.Money{}, err
	}

	now := time.Now()
	expectedBalance := holder.Balance()
	entry, err := holder.Credit(result.Amount, "wallet top-up", cmd.Reference(), now)
	if err != nil {
		return kernel.Money{}, err
	}

	if err = walletRepo.Update(ctx, holder, expectedBalance, entry); err != nil {
		return kernel.Money{}, err
	}

	if result.Card.AuthorizationCode != "" {
		card := wallet.SavedCard{
			ID:                kernel.NewUUID(),
			UserID:            cmd.UserID(),
			AuthorizationCode: result.Card.AuthorizationCode,
			Last4:             result.Card.Last4,
			CardType:          result.Card.CardType,
			Bank:              result.Card.Bank,
			ExpMonth:          result.Card.ExpMonth,
			ExpYear:           result.Card.ExpYear,
			CreatedAt:         now,
		}
		if err = walletRepo.SaveCard(ctx, card); err != nil {
			return kernel.Money{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.Money{}, err
	}
	return holder.Balance(), nil
}

// balanceFor reads the holder's current balance. A holder without a wallet
// yet has a zero balance.
func (h *VerifyTopUpCommandHandler) balanceFor(
	ctx context.Context, walletRepo ports.WalletRepository, userID kernel.UUID,
) (kernel.Money, error) {
	holder, err := walletRepo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return kernel.Money{}, nil
		}
		return kernel.Money{}, err
	}
	return holder.Balance(), nil
}

// walletFor loads the holder's wallet, creating it on first top-up.
func (h *VerifyTopUpCommandHandler) walletFor(
	ctx context.Context, walletRepo ports.WalletRepository, userID kernel.UUID,
) (*wallet.Wallet, error) {
	holder, err := walletRepo.GetByUser(ctx, userID)
	if err == nil {
		return holder, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	holder, err = wallet.NewWallet(kernel.NewUUID(), userID)
	if err != nil {
		return nil, err
	}
	if err = walletRepo.Add(ctx, holder); err != nil {
		return nil, err
	}
	return holder, nil
}
