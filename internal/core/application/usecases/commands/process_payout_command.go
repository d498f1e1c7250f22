package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payout"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrProcessPayoutCommandIsNotConstructed = errors.New(
	"ProcessPayoutCommand must be created via NewProcessPayoutCommand constructor",
)

// ProcessPayoutCommand represents an administrator's decision on a pending
// payout request. Only administrators reach this command; the transport layer
// enforces the role.
type ProcessPayoutCommand struct { //nolint:recvcheck //using for validation
	payoutID kernel.UUID
	decision payout.Status
	notes    string

	guard guard.ConstructorGuard
}

// NewProcessPayoutCommand creates a payout decision command. The decision
// must be processed or rejected, and a rejection requires notes.
func NewProcessPayoutCommand(payoutID kernel.UUID, decision payout.Status, notes string) (ProcessPayoutCommand, error) {
	cmd := ProcessPayoutCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPayoutID(payoutID),
		cmd.setDecision(decision, notes),
	); err != nil {
		return ProcessPayoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessPayoutCommand) Validate() error {
	return c.guard.Validate(ErrProcessPayoutCommandIsNotConstructed)
}

// PayoutID returns the request being decided.
func (c ProcessPayoutCommand) PayoutID() kernel.UUID {
	return c.payoutID
}

// Decision returns the administrator's verdict.
func (c ProcessPayoutCommand) Decision() payout.Status {
	return c.decision
}

// Notes returns the administrator's notes.
func (c ProcessPayoutCommand) Notes() string {
	return c.notes
}

func (c *ProcessPayoutCommand) setPayoutID(payoutID kernel.UUID) error {
	if err := payoutID.Validate(); err != nil {
		return err
	}
	c.payoutID = payoutID
	return nil
}

func (c *ProcessPayoutCommand) setDecision(decision payout.Status, notes string) error {
	if decision != payout.Processed && decision != payout.Rejected {
		return errs.NewValueIsInvalidError("decision")
	}
	if decision == payout.Rejected && notes == "" {
		return errs.NewValueIsRequiredError("notes")
	}
	c.decision = decision
	return nil
}
