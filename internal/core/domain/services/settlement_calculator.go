package services

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// SettlementCalculator is the domain service that decides how much an earner
// may withdraw. The figure is always recomputed server-side from delivered
// orders and the payout history; a client-displayed balance is never trusted.
type SettlementCalculator struct{}

// NewSettlementCalculator creates a new SettlementCalculator instance.
func NewSettlementCalculator() SettlementCalculator {
	return SettlementCalculator{}
}

// Available returns the withdrawable balance: lifetime delivered earnings
// minus payouts already processed minus payouts still pending. Pending
// requests reserve their amount so an earner cannot raise overlapping
// requests against the same funds. The result is clamped at zero.
func (c SettlementCalculator) Available(earnings, processed, pending kernel.Money) kernel.Money {
	available := earnings.Sub(processed).Sub(pending)
	if available.IsNegative() {
		return kernel.Money{}
	}
	return available
}

// CheckWithdrawal verifies that the requested amount fits within the
// recomputed available balance, returning InsufficientBalance otherwise.
func (c SettlementCalculator) CheckWithdrawal(
	userID kernel.UUID,
	requested kernel.Money,
	earnings, processed, pending kernel.Money,
) error {
	if !requested.IsPositive() {
		return errs.NewValueIsInvalidError("payout amount")
	}

	available := c.Available(earnings, processed, pending)
	if requested.GreaterThan(available) {
		return errs.NewInsufficientBalanceError(userID.String(), requested.String(), available.String())
	}
	return nil
}
