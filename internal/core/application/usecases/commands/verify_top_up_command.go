package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrVerifyTopUpCommandIsNotConstructed = errors.New(
	"VerifyTopUpCommand must be created via NewVerifyTopUpCommand constructor",
)

// VerifyTopUpCommand represents a request to confirm a gateway charge and
// credit the holder's wallet. The gateway reference doubles as the
// idempotency key: resubmitting the same reference never credits twice.
type VerifyTopUpCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	reference string

	guard guard.ConstructorGuard
}

// NewVerifyTopUpCommand creates a top-up verification command.
func NewVerifyTopUpCommand(userID kernel.UUID, reference string) (VerifyTopUpCommand, error) {
	cmd := VerifyTopUpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setReference(reference),
	); err != nil {
		return VerifyTopUpCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyTopUpCommand) Validate() error {
	return c.guard.Validate(ErrVerifyTopUpCommandIsNotConstructed)
}

// UserID returns the wallet holder.
func (c VerifyTopUpCommand) UserID() kernel.UUID {
	return c.userID
}

// Reference returns the gateway charge reference.
func (c VerifyTopUpCommand) Reference() string {
	return c.reference
}

func (c *VerifyTopUpCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *VerifyTopUpCommand) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	c.reference = reference
	return nil
}
