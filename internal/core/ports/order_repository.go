package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Mutations that can race (status changes, rider claims) are conditional
// updates: the repository applies them only when the stored row still matches
// the state the caller loaded, and surfaces ConcurrencyConflict otherwise.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFound when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus persists a status transition conditionally: the row is
	// updated only while its stored status still equals from. Losing the
	// race surfaces ConcurrencyConflict and the caller must refetch.
	UpdateStatus(ctx context.Context, aggregate *order.Order, from order.Status) error

	// Claim persists a rider assignment conditionally: the row is updated
	// only while rider_id is still null, so exactly one racing rider wins.
	Claim(ctx context.Context, aggregate *order.Order) error

	// SumVendorEarnings returns the vendor's lifetime earnings: the sum of
	// totalAmount minus deliveryFee over its delivered orders.
	SumVendorEarnings(ctx context.Context, vendorID kernel.UUID) (kernel.Money, error)

	// SumRiderEarnings returns the rider's lifetime earnings: the sum of
	// deliveryFee over the delivered orders it carried.
	SumRiderEarnings(ctx context.Context, riderID kernel.UUID) (kernel.Money, error)
}
