package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingPayoutsQueryHandler retrieves the pending payout queue from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetPendingPayoutsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingPayoutsQueryHandler creates a handler for pending payout queries.
func NewGetPendingPayoutsQueryHandler(db *gorm.DB) GetPendingPayoutsQueryHandler {
	return GetPendingPayoutsQueryHandler{db: db}
}

// Handle executes the query to retrieve pending requests, oldest first, so
// administrators work the queue in arrival order.
func (h GetPendingPayoutsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingPayoutsQuery,
) ([]GetPendingPayoutsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	payouts := make([]GetPendingPayoutsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			earner_type,
			amount,
			bank_name,
			account_number,
			account_name,
			requested_at
		FROM payout_requests
		WHERE status = 'pending'
		ORDER BY requested_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var payoutRow GetPendingPayoutsQueryResponse
		var id, userID uuid.UUID

		err = rows.Scan(
			&id,
			&userID,
			&payoutRow.EarnerType,
			&payoutRow.Amount,
			&payoutRow.BankName,
			&payoutRow.AccountNumber,
			&payoutRow.AccountName,
			&payoutRow.RequestedAt,
		)
		if err != nil {
			return nil, err
		}

		if payoutRow.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if payoutRow.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		payouts = append(payouts, payoutRow)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payouts, nil
}
