package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWalletStatementQueryHandler retrieves a wallet balance and its ledger
// from the database. Uses direct SQL queries for optimal read performance in
// the CQRS pattern.
type GetWalletStatementQueryHandler struct {
	db *gorm.DB
}

// NewGetWalletStatementQueryHandler creates a handler for wallet statement queries.
func NewGetWalletStatementQueryHandler(db *gorm.DB) GetWalletStatementQueryHandler {
	return GetWalletStatementQueryHandler{db: db}
}

// Handle executes the query to retrieve the balance and ledger entries,
// newest entry first.
func (h GetWalletStatementQueryHandler) Handle(
	ctx context.Context,
	query GetWalletStatementQuery,
) (GetWalletStatementQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWalletStatementQueryResponse{}, err
	}

	response := GetWalletStatementQueryResponse{
		UserID:       query.UserID(),
		Transactions: make([]TransactionResponse, 0),
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT balance
		FROM wallets
		WHERE user_id = ?
	`, query.UserID().Bytes()).Row().Scan(&response.Balance)
	if errors.Is(err, sql.ErrNoRows) {
		return response, nil
	}
	if err != nil {
		return GetWalletStatementQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tx_type,
			amount,
			description,
			COALESCE(reference, ''),
			created_at
		FROM transactions
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return GetWalletStatementQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry TransactionResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&entry.Type,
			&entry.Amount,
			&entry.Description,
			&entry.Reference,
			&entry.CreatedAt,
		)
		if err != nil {
			return GetWalletStatementQueryResponse{}, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetWalletStatementQueryResponse{}, err
		}
		response.Transactions = append(response.Transactions, entry)
	}

	if err = rows.Err(); err != nil {
		return GetWalletStatementQueryResponse{}, err
	}

	return response, nil
}
