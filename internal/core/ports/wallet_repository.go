package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"
)

// WalletRepository defines the persistence contract for wallets and their
// append-only transaction ledger. Balance updates are conditional on the
// previously loaded balance so concurrent spenders cannot produce a lost
// update.
type WalletRepository interface {
	// Add persists a new wallet.
	Add(ctx context.Context, aggregate *wallet.Wallet) error

	// GetByUser retrieves the wallet owned by the given account holder.
	// Returns ObjectNotFound when the holder has no wallet yet.
	GetByUser(ctx context.Context, userID kernel.UUID) (*wallet.Wallet, error)

	// Update persists the wallet's new balance and appends the paired ledger
	// entry in one transaction. The balance write is conditional on the row
	// still holding expectedBalance; losing the race surfaces
	// ConcurrencyConflict and nothing is written.
	Update(ctx context.Context, aggregate *wallet.Wallet, expectedBalance kernel.Money, entry wallet.Transaction) error

	// AppendTransaction appends a ledger entry without touching any balance.
	// Records gateway charges consumed at card checkout, so their reference
	// is visible to HasTransactionWithReference and cannot be replayed as a
	// top-up. The unique index on reference backs this at the database level.
	AppendTransaction(ctx context.Context, entry wallet.Transaction) error

	// HasTransactionWithReference reports whether a ledger entry already
	// carries the given reference. Used as the idempotency check for
	// gateway top-ups and the replay check for card checkout references.
	HasTransactionWithReference(ctx context.Context, reference string) (bool, error)

	// SaveCard stores gateway card metadata captured during a top-up.
	SaveCard(ctx context.Context, card wallet.SavedCard) error
}
