package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root of the transactional core. It holds the
// snapshotted line items, the server-trusted money figures, and the current
// lifecycle status, and it is the only place that mutates them.
//
// Order maintains these invariants:
//   - totalAmount equals the sum of item subtotals plus the delivery fee,
//     within the one-minor-unit rounding tolerance
//   - line items are immutable after construction
//   - status only changes through the central transition table
//   - riderID is set exactly once, by a claim on a Ready for Pickup order
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	vendorID   kernel.UUID

	// riderID is nil until a rider claims the order.
	riderID *kernel.UUID

	items       []Item
	totalAmount kernel.Money
	deliveryFee kernel.Money
	status      Status

	deliveryAddress  string
	deliveryLocation *kernel.GeoPoint

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order from server-trusted items and delivery fee.
// The total amount is computed here, never taken from the client; the pricing
// validator has already reconciled the client's claim before this point.
// The order starts in NewOrder status with no rider assigned.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	items []Item,
	deliveryFee kernel.Money,
	deliveryAddress string,
	deliveryLocation *kernel.GeoPoint,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:    StatusNewOrder,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setVendorID(vendorID),
		o.setItems(items),
		o.setDeliveryFee(deliveryFee),
		o.setDeliveryAddress(deliveryAddress),
		o.setDeliveryLocation(deliveryLocation),
	); err != nil {
		return nil, err
	}

	o.totalAmount = o.itemsSubtotal().Add(o.deliveryFee)
	return o, nil
}

// RestoreOrder reconstructs an order from persistence. It revalidates the
// money invariant so a corrupted row cannot re-enter the domain unnoticed.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	riderID *kernel.UUID,
	items []Item,
	totalAmount kernel.Money,
	deliveryFee kernel.Money,
	status Status,
	deliveryAddress string,
	deliveryLocation *kernel.GeoPoint,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setVendorID(vendorID),
		o.setItems(items),
		o.setDeliveryFee(deliveryFee),
		o.setDeliveryAddress(deliveryAddress),
		o.setDeliveryLocation(deliveryLocation),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	if riderID != nil {
		if err := riderID.Validate(); err != nil {
			return nil, err
		}
		rid := *riderID
		o.riderID = &rid
	}

	recomputed := o.itemsSubtotal().Add(deliveryFee)
	if !totalAmount.WithinToleranceOf(recomputed) {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("stored total %s differs from item sum %s", totalAmount, recomputed))
	}
	o.totalAmount = totalAmount

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the buyer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// VendorID returns the owning merchant's identifier.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// RiderID returns the claiming rider's identifier, or nil if unclaimed.
func (o *Order) RiderID() *kernel.UUID {
	return o.riderID
}

// Items returns a copy of the snapshotted line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the server-trusted order total, delivery fee included.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// DeliveryFee returns the delivery fee portion of the total.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// VendorEarning returns the vendor's share of a delivered order.
func (o *Order) VendorEarning() kernel.Money {
	return o.totalAmount.Sub(o.deliveryFee)
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryAddress returns the destination address text.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DeliveryLocation returns the optional destination coordinates, or nil.
func (o *Order) DeliveryLocation() *kernel.GeoPoint {
	return o.deliveryLocation
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// TransitionTo moves the order to the target status on behalf of the given
// actor. The transition table decides whether the (from, to, role) triple is
// legal, and identity rules bind the actor to the order:
//   - a customer must be the order's customer
//   - a vendor must be the order's vendor
//   - a rider must be the order's claiming rider
//
// The current, server-held status is authoritative; callers never supply a
// "from" state. On rejection the order is untouched.
func (o *Order) TransitionTo(to Status, actor Actor, actorID kernel.UUID, now time.Time) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if err := o.authorize(actor, actorID, to); err != nil {
		return err
	}

	newStatus, err := o.status.Transition(to, actor)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Claim associates a rider with an unassigned Ready for Pickup order.
// Claiming does not change the status; the rider moves the order to In Transit
// as a separate transition. Exclusivity against concurrent claimants is
// additionally enforced by the repository's conditional update, so losing a
// race surfaces as a ConcurrencyConflict even when this check passed.
func (o *Order) Claim(riderID kernel.UUID, now time.Time) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if o.status != ReadyForPickup {
		return errs.NewInvalidTransitionError(o.status.String(), ReadyForPickup.String(), ActorRider.String())
	}
	if o.riderID != nil {
		return errs.NewConcurrencyConflictError("order", o.id.String())
	}

	o.riderID = &riderID
	o.updatedAt = now
	return nil
}

func (o *Order) authorize(actor Actor, actorID kernel.UUID, to Status) error {
	switch actor {
	case ActorCustomer:
		if !actorID.IsEqual(o.customerID) {
			return errs.NewInvalidTransitionError(o.status.String(), to.String(), actor.String())
		}
	case ActorVendor:
		if !actorID.IsEqual(o.vendorID) {
			return errs.NewInvalidTransitionError(o.status.String(), to.String(), actor.String())
		}
	case ActorRider:
		if o.riderID == nil || !actorID.IsEqual(*o.riderID) {
			return errs.NewInvalidTransitionError(o.status.String(), to.String(), actor.String())
		}
	case ActorAdmin:
		// Admin authority is role-based, not identity-based.
	default:
		return errs.NewValueIsInvalidError("actor")
	}
	return nil
}

func (o *Order) itemsSubtotal() kernel.Money {
	var subtotal kernel.Money
	for _, item := range o.items {
		subtotal = subtotal.Add(item.Subtotal())
	}
	return subtotal
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	o.vendorID = vendorID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryFee(fee kernel.Money) error {
	if fee.IsNegative() {
		return errs.NewValueIsInvalidError("deliveryFee")
	}
	o.deliveryFee = fee
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setDeliveryLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	loc := *location
	o.deliveryLocation = &loc
	return nil
}
