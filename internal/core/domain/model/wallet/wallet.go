package wallet

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrWalletIsNotConstructed is returned when a Wallet was not created via
	// NewWallet or RestoreWallet.
	ErrWalletIsNotConstructed = errors.New("Wallet must be created via NewWallet or RestoreWallet constructor")
)

// Wallet holds one account holder's spendable balance. The balance only
// changes through Debit and Credit, each of which emits the paired ledger
// Transaction; persistence applies the balance change and the transaction
// append as one atomic unit. A debit can never push the balance negative.
type Wallet struct {
	id      kernel.UUID
	userID  kernel.UUID
	balance kernel.Money

	guard guard.ConstructorGuard
}

// NewWallet creates an empty wallet for the given account holder.
func NewWallet(id kernel.UUID, userID kernel.UUID) (*Wallet, error) {
	w := &Wallet{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setUserID(userID),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWallet reconstructs a wallet from persistence.
func RestoreWallet(id kernel.UUID, userID kernel.UUID, balance kernel.Money) (*Wallet, error) {
	w, err := NewWallet(id, userID)
	if err != nil {
		return nil, err
	}
	if balance.IsNegative() {
		return nil, errs.NewValueIsInvalidError("balance")
	}

	w.balance = balance
	return w, nil
}

// Validate ensures the Wallet instance was properly constructed.
func (w *Wallet) Validate() error {
	if w == nil {
		return ErrWalletIsNotConstructed
	}
	return w.guard.Validate(ErrWalletIsNotConstructed)
}

// ID returns the wallet's unique identifier.
func (w *Wallet) ID() kernel.UUID {
	return w.id
}

// UserID returns the owning account holder's identifier.
func (w *Wallet) UserID() kernel.UUID {
	return w.userID
}

// Balance returns the current spendable balance.
func (w *Wallet) Balance() kernel.Money {
	return w.balance
}

// Debit removes funds from the wallet for an order payment and returns the
// paired ledger entry. An amount exceeding the balance fails with
// InsufficientBalance before any state changes; no debit is attempted.
func (w *Wallet) Debit(amount kernel.Money, orderID kernel.UUID, now time.Time) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, errs.NewValueIsInvalidError("debit amount")
	}
	if err := orderID.Validate(); err != nil {
		return Transaction{}, err
	}
	if amount.GreaterThan(w.balance) {
		return Transaction{}, errs.NewInsufficientBalanceError(
			w.userID.String(), amount.String(), w.balance.String())
	}

	tx, err := NewTransaction(
		kernel.NewUUID(), w.userID, Debit, amount,
		"payment for order "+orderID.String(), orderID.String(), now,
	)
	if err != nil {
		return Transaction{}, err
	}

	w.balance = w.balance.Sub(amount)
	return tx, nil
}

// Credit adds funds to the wallet and returns the paired ledger entry.
// Reference is the gateway reference for top-ups (the idempotency key) or a
// payout/order identifier for internal credits.
func (w *Wallet) Credit(amount kernel.Money, description, reference string, now time.Time) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, errs.NewValueIsInvalidError("credit amount")
	}

	tx, err := NewTransaction(kernel.NewUUID(), w.userID, Credit, amount, description, reference, now)
	if err != nil {
		return Transaction{}, err
	}

	w.balance = w.balance.Add(amount)
	return tx, nil
}

func (w *Wallet) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Wallet) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	w.userID = userID
	return nil
}
