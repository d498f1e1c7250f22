package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payout"
)

// PayoutRepository defines the persistence contract for payout requests.
type PayoutRepository interface {
	// Add persists a new payout request.
	Add(ctx context.Context, aggregate *payout.Request) error

	// Get retrieves a payout request by its unique identifier.
	// Returns ObjectNotFound when no such request exists.
	Get(ctx context.Context, id kernel.UUID) (*payout.Request, error)

	// Update persists an administrator's decision on a request.
	Update(ctx context.Context, aggregate *payout.Request) error

	// SumByStatus returns the total amount of the earner's requests in the
	// given status. Settlement subtracts the processed and pending sums from
	// lifetime earnings.
	SumByStatus(ctx context.Context, userID kernel.UUID, status payout.Status) (kernel.Money, error)
}
