package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrDispatchNotificationsCommandIsNotConstructed = errors.New(
	"DispatchNotificationsCommand must be created via NewDispatchNotificationsCommand constructor",
)

const maxDispatchBatchSize = 500

// DispatchNotificationsCommand asks the dispatcher to drain one batch of
// unpublished status events from the outbox.
type DispatchNotificationsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewDispatchNotificationsCommand creates a dispatch command for one batch.
func NewDispatchNotificationsCommand(batchSize int) (DispatchNotificationsCommand, error) {
	cmd := DispatchNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBatchSize(batchSize); err != nil {
		return DispatchNotificationsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationsCommandIsNotConstructed)
}

// BatchSize returns the maximum number of events drained per run.
func (c DispatchNotificationsCommand) BatchSize() int {
	return c.batchSize
}

func (c *DispatchNotificationsCommand) setBatchSize(batchSize int) error {
	if batchSize < 1 || batchSize > maxDispatchBatchSize {
		return errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, maxDispatchBatchSize)
	}
	c.batchSize = batchSize
	return nil
}
