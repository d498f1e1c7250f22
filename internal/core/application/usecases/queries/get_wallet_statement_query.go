package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetWalletStatementQueryIsNotConstructed = errors.New(
	"GetWalletStatementQuery must be created via NewGetWalletStatementQuery constructor",
)

// GetWalletStatementQuery retrieves a holder's balance and ledger history.
type GetWalletStatementQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWalletStatementQuery creates a wallet statement query.
func NewGetWalletStatementQuery(userID kernel.UUID) (GetWalletStatementQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetWalletStatementQuery{}, err
	}
	return GetWalletStatementQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWalletStatementQuery) Validate() error {
	return q.guard.Validate(ErrGetWalletStatementQueryIsNotConstructed)
}

// UserID returns the wallet holder.
func (q GetWalletStatementQuery) UserID() kernel.UUID {
	return q.userID
}

// TransactionResponse is one ledger entry in the read model.
// Amounts are in minor currency units.
type TransactionResponse struct {
	ID          kernel.UUID
	Type        string
	Amount      int64
	Description string
	Reference   string
	CreatedAt   time.Time
}

// GetWalletStatementQueryResponse represents a wallet and its history in the
// read model. A holder without a wallet yet gets a zero balance and an empty
// history rather than an error.
type GetWalletStatementQueryResponse struct {
	UserID       kernel.UUID
	Balance      int64
	Transactions []TransactionResponse
}
