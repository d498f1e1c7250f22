package order

import (
	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with one central transition table so that no call site compares
// status strings ad hoc.
//
// State transitions:
//
//	New Order ──> Pending Acceptance ──> Preparing ──> Ready for Pickup ──> In Transit ──> Delivered
//	    │                 │                  │                │
//	    └─────────────────┴──────────────────┴────────────────┴──> Canceled
//
// Delivered and Canceled are terminal. Canceled is unreachable once the order
// is In Transit.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// StatusNewOrder is the initial status of a placed order whose payment is
	// still outstanding.
	StatusNewOrder

	// PendingAcceptance indicates payment is settled and the order awaits the
	// vendor's decision.
	PendingAcceptance

	// Preparing indicates the vendor accepted the order and is preparing it.
	Preparing

	// ReadyForPickup indicates the order can be claimed by a rider.
	ReadyForPickup

	// InTransit indicates the assigned rider picked the order up.
	InTransit

	// Delivered is the successful terminal state.
	Delivered

	// Canceled is the alternate terminal state, reachable from any state
	// before InTransit.
	Canceled
)

// Actor identifies the kind of principal attempting an order mutation.
// Transition authority is checked against the server-held actor role, never a
// client-supplied one.
type Actor int

const (
	// ActorUnknown represents an invalid or undefined actor.
	ActorUnknown Actor = iota

	// ActorCustomer is the buyer who placed the order.
	ActorCustomer

	// ActorVendor is the merchant that owns the order's products.
	ActorVendor

	// ActorRider is a courier; only the claiming rider may move a claimed order.
	ActorRider

	// ActorAdmin is an operator with override authority on pre-transit states.
	ActorAdmin
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "Unknown",
		StatusNewOrder:    "New Order",
		PendingAcceptance: "Pending Acceptance",
		Preparing:         "Preparing",
		ReadyForPickup:    "Ready for Pickup",
		InTransit:         "In Transit",
		Delivered:         "Delivered",
		Canceled:          "Canceled",
	}
}

func getActorStrings() map[Actor]string {
	return map[Actor]string{
		ActorUnknown:  "unknown",
		ActorCustomer: "customer",
		ActorVendor:   "vendor",
		ActorRider:    "rider",
		ActorAdmin:    "admin",
	}
}

// transitionKey is an edge of the status graph.
type transitionKey struct {
	from Status
	to   Status
}

// transitionTable is the single authoritative map of legal transitions and the
// actor roles permitted to trigger each one. Any (from, to, actor) triple
// absent from this table is rejected.
func transitionTable() map[transitionKey][]Actor {
	return map[transitionKey][]Actor{
		// Payment settlement moves a placed order into the vendor's queue.
		{StatusNewOrder, PendingAcceptance}: {ActorCustomer, ActorAdmin},

		// Vendor accepts.
		{StatusNewOrder, Preparing}:    {ActorVendor},
		{PendingAcceptance, Preparing}: {ActorVendor},

		// Vendor finishes preparation.
		{Preparing, ReadyForPickup}: {ActorVendor},

		// Assigned rider moves the order out and delivers it.
		{ReadyForPickup, InTransit}: {ActorRider},
		{InTransit, Delivered}:      {ActorRider},

		// Cancellation, only before transit. Customers may back out while the
		// vendor has not started preparing; vendors and admins any time before
		// pickup is underway.
		{StatusNewOrder, Canceled}:    {ActorCustomer, ActorVendor, ActorAdmin},
		{PendingAcceptance, Canceled}: {ActorCustomer, ActorVendor, ActorAdmin},
		{Preparing, Canceled}:         {ActorVendor, ActorAdmin},
		{ReadyForPickup, Canceled}:    {ActorVendor, ActorAdmin},
	}
}

// ParseStatus converts a wire-format status name into the closed enum.
// "Processing" is accepted as a legacy alias of Pending Acceptance.
func ParseStatus(s string) (Status, error) {
	if s == "Processing" {
		return PendingAcceptance, nil
	}
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status " + s)
}

// ParseActor converts a wire-format role name into the Actor enum.
func ParseActor(s string) (Actor, error) {
	for actor, name := range getActorStrings() {
		if actor != ActorUnknown && name == s {
			return actor, nil
		}
	}
	return ActorUnknown, errs.NewValueIsInvalidError("actor " + s)
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the Status holds one of the defined lifecycle values.
func (s Status) Validate() error {
	if s <= Unknown || s > Canceled {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// CanTransition reports whether the given actor role may move an order from
// the current status to the target status.
func (s Status) CanTransition(to Status, actor Actor) bool {
	allowed, ok := transitionTable()[transitionKey{from: s, to: to}]
	if !ok {
		return false
	}
	for _, a := range allowed {
		if a == actor {
			return true
		}
	}
	return false
}

// Transition returns the target status if the move is legal for the actor,
// or an InvalidTransitionError leaving the current status untouched.
func (s Status) Transition(to Status, actor Actor) (Status, error) {
	if !s.CanTransition(to, actor) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), to.String(), actor.String())
	}
	return to, nil
}

// String returns the lower-case role name of the actor.
func (a Actor) String() string {
	if str, ok := getActorStrings()[a]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the Actor holds one of the defined roles.
func (a Actor) Validate() error {
	if a <= ActorUnknown || a > ActorAdmin {
		return errs.NewValueIsInvalidError("actor")
	}
	return nil
}
