// Package order contains the Order aggregate and its lifecycle state machine.
//
// The aggregate snapshots line items and money figures at creation time and
// guards every mutation behind the central transition table in status.go, so
// no other part of the system can skip states, double-claim a rider, or edit
// an amount after the fact. Status changes emit StatusChanged events that the
// notification dispatcher consumes out of band.
package order
