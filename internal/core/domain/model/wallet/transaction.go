package wallet

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrTransactionIsNotConstructed is returned when a Transaction was not created
// via NewTransaction.
var ErrTransactionIsNotConstructed = errors.New("Transaction must be created via NewTransaction constructor")

// TransactionType distinguishes money entering a wallet from money leaving it.
type TransactionType int

const (
	// TransactionTypeUnknown represents an invalid or undefined type.
	TransactionTypeUnknown TransactionType = iota

	// Credit is money entering the wallet.
	Credit

	// Debit is money leaving the wallet.
	Debit
)

// String returns the lower-case name of the transaction type.
func (t TransactionType) String() string {
	switch t {
	case Credit:
		return "credit"
	case Debit:
		return "debit"
	default:
		return "unknown"
	}
}

// Validate checks that the type is one of the defined values.
func (t TransactionType) Validate() error {
	if t != Credit && t != Debit {
		return errs.NewValueIsInvalidError("transaction type")
	}
	return nil
}

// Transaction is one append-only ledger entry. Every balance change on a
// Wallet produces exactly one Transaction; entries are never updated or
// deleted. Reference carries the order id or gateway reference that caused
// the entry, and is the idempotency key for gateway top-ups.
type Transaction struct { //nolint:recvcheck //using for validation
	id          kernel.UUID
	userID      kernel.UUID
	txType      TransactionType
	amount      kernel.Money
	description string
	reference   string
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewTransaction creates a validated ledger entry.
func NewTransaction(
	id kernel.UUID,
	userID kernel.UUID,
	txType TransactionType,
	amount kernel.Money,
	description string,
	reference string,
	createdAt time.Time,
) (Transaction, error) {
	tx := Transaction{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tx.setID(id),
		tx.setUserID(userID),
		tx.setType(txType),
		tx.setAmount(amount),
		tx.setDescription(description),
	); err != nil {
		return Transaction{}, err
	}

	tx.reference = reference
	tx.createdAt = createdAt
	return tx, nil
}

// Validate ensures the transaction was created through NewTransaction.
func (t Transaction) Validate() error {
	return t.guard.Validate(ErrTransactionIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (t Transaction) ID() kernel.UUID {
	return t.id
}

// UserID returns the wallet owner the entry belongs to.
func (t Transaction) UserID() kernel.UUID {
	return t.userID
}

// Type returns whether the entry is a credit or a debit.
func (t Transaction) Type() TransactionType {
	return t.txType
}

// Amount returns the absolute amount moved.
func (t Transaction) Amount() kernel.Money {
	return t.amount
}

// Description returns the human-readable reason for the entry.
func (t Transaction) Description() string {
	return t.description
}

// Reference returns the linked order id or gateway reference, if any.
func (t Transaction) Reference() string {
	return t.reference
}

// CreatedAt returns when the entry was recorded.
func (t Transaction) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Transaction) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transaction) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	t.userID = userID
	return nil
}

func (t *Transaction) setType(txType TransactionType) error {
	if err := txType.Validate(); err != nil {
		return err
	}
	t.txType = txType
	return nil
}

func (t *Transaction) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("transaction amount")
	}
	t.amount = amount
	return nil
}

func (t *Transaction) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("transaction description")
	}
	t.description = description
	return nil
}
