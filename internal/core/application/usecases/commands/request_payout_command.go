package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payout"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRequestPayoutCommandIsNotConstructed = errors.New(
	"RequestPayoutCommand must be created via NewRequestPayoutCommand constructor",
)

// RequestPayoutCommand represents an earner asking to withdraw settled
// earnings to a bank account. The requested amount is checked against the
// server-side settlement recomputation, never against a client-displayed
// balance.
type RequestPayoutCommand struct { //nolint:recvcheck //using for validation
	payoutID    kernel.UUID
	userID      kernel.UUID
	earnerType  payout.EarnerType
	amount      kernel.Money
	bankDetails payout.BankDetails

	guard guard.ConstructorGuard
}

// NewRequestPayoutCommand creates a payout request command.
func NewRequestPayoutCommand(
	payoutID kernel.UUID,
	userID kernel.UUID,
	earnerType payout.EarnerType,
	amount kernel.Money,
	bankDetails payout.BankDetails,
) (RequestPayoutCommand, error) {
	cmd := RequestPayoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPayoutID(payoutID),
		cmd.setUserID(userID),
		cmd.setEarnerType(earnerType),
		cmd.setAmount(amount),
		cmd.setBankDetails(bankDetails),
	); err != nil {
		return RequestPayoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestPayoutCommand) Validate() error {
	return c.guard.Validate(ErrRequestPayoutCommandIsNotConstructed)
}

// PayoutID returns the identifier for the new request.
func (c RequestPayoutCommand) PayoutID() kernel.UUID {
	return c.payoutID
}

// UserID returns the withdrawing earner.
func (c RequestPayoutCommand) UserID() kernel.UUID {
	return c.userID
}

// EarnerType returns whether a vendor or a rider is withdrawing.
func (c RequestPayoutCommand) EarnerType() payout.EarnerType {
	return c.earnerType
}

// Amount returns the requested withdrawal amount.
func (c RequestPayoutCommand) Amount() kernel.Money {
	return c.amount
}

// BankDetails returns the destination account.
func (c RequestPayoutCommand) BankDetails() payout.BankDetails {
	return c.bankDetails
}

func (c *RequestPayoutCommand) setPayoutID(payoutID kernel.UUID) error {
	if err := payoutID.Validate(); err != nil {
		return err
	}
	c.payoutID = payoutID
	return nil
}

func (c *RequestPayoutCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *RequestPayoutCommand) setEarnerType(earnerType payout.EarnerType) error {
	if err := earnerType.Validate(); err != nil {
		return err
	}
	c.earnerType = earnerType
	return nil
}

func (c *RequestPayoutCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount")
	}
	c.amount = amount
	return nil
}

func (c *RequestPayoutCommand) setBankDetails(bankDetails payout.BankDetails) error {
	if err := bankDetails.Validate(); err != nil {
		return err
	}
	c.bankDetails = bankDetails
	return nil
}
