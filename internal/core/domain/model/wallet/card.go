package wallet

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// SavedCard is gateway card metadata captured after a successful top-up so
// the holder can be charged again without re-entering details. Only the
// gateway's authorization code and display metadata are stored, never the
// card number.
type SavedCard struct {
	ID                kernel.UUID
	UserID            kernel.UUID
	AuthorizationCode string
	Last4             string
	CardType          string
	Bank              string
	ExpMonth          string
	ExpYear           string
	CreatedAt         time.Time
}

// Validate checks that the card carries the fields needed to reuse it.
func (c SavedCard) Validate() error {
	if err := c.ID.Validate(); err != nil {
		return err
	}
	if err := c.UserID.Validate(); err != nil {
		return err
	}
	if c.AuthorizationCode == "" {
		return errs.NewValueIsRequiredError("authorizationCode")
	}
	if c.Last4 == "" {
		return errs.NewValueIsRequiredError("last4")
	}
	return nil
}
