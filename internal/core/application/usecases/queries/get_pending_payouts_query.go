package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetPendingPayoutsQueryIsNotConstructed = errors.New(
	"GetPendingPayoutsQuery must be created via NewGetPendingPayoutsQuery constructor",
)

// GetPendingPayoutsQuery retrieves every payout request awaiting an
// administrator's decision.
type GetPendingPayoutsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingPayoutsQuery creates a query for the pending payout queue.
func NewGetPendingPayoutsQuery() GetPendingPayoutsQuery {
	return GetPendingPayoutsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingPayoutsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingPayoutsQueryIsNotConstructed)
}

// GetPendingPayoutsQueryResponse represents one pending payout request in the
// read model. The amount is in minor currency units.
type GetPendingPayoutsQueryResponse struct {
	ID            kernel.UUID
	UserID        kernel.UUID
	EarnerType    string
	Amount        int64
	BankName      string
	AccountNumber string
	AccountName   string
	RequestedAt   time.Time
}
