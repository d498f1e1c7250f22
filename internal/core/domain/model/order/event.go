package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// StatusChanged is the domain event recorded whenever an order moves between
// lifecycle states. It is appended to the outbox in the same transaction as
// the order update and consumed independently by the notification dispatcher,
// so the financial core never depends on notification-transport success.
type StatusChanged struct {
	EventID    kernel.UUID
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	VendorID   kernel.UUID

	// RiderID is the rider assigned at the time of the transition, if any.
	RiderID *kernel.UUID

	From Status
	To   Status

	OccurredAt time.Time
}

// NewStatusChanged captures the transition the order just performed.
// Call it after a successful TransitionTo, passing the pre-transition status.
func NewStatusChanged(o *Order, from Status, occurredAt time.Time) StatusChanged {
	var riderID *kernel.UUID
	if id := o.RiderID(); id != nil {
		rid := *id
		riderID = &rid
	}

	return StatusChanged{
		EventID:    kernel.NewUUID(),
		OrderID:    o.ID(),
		CustomerID: o.CustomerID(),
		VendorID:   o.VendorID(),
		RiderID:    riderID,
		From:       from,
		To:         o.Status(),
		OccurredAt: occurredAt,
	}
}
