// Package payoutrepo provides data transfer objects and mapping functions for
// payout request persistence.
package payoutrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payout"

	"github.com/google/uuid"
)

// PayoutRequestDTO represents the database structure for persisting payout
// requests. The amount holds minor currency units; earner_type and status hold
// the wire-format names so aggregate sums can filter on them directly.
type PayoutRequestDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;index"`
	EarnerType    string
	Amount        int64
	BankName      string
	AccountNumber string
	AccountName   string
	Status        string `gorm:"index"`
	Notes         string
	RequestedAt   time.Time
	ProcessedAt   *time.Time
}

// TableName specifies the database table name for payout requests.
func (PayoutRequestDTO) TableName() string {
	return "payout_requests"
}

// fromDomain converts a payout request aggregate to its database representation.
func fromDomain(aggregate *payout.Request) PayoutRequestDTO {
	var processedAt *time.Time
	if at := aggregate.ProcessedAt(); at != nil {
		copied := *at
		processedAt = &copied
	}

	details := aggregate.BankDetails()
	return PayoutRequestDTO{
		ID:            aggregate.ID().Bytes(),
		UserID:        aggregate.UserID().Bytes(),
		EarnerType:    aggregate.EarnerType().String(),
		Amount:        aggregate.Amount().MinorUnits(),
		BankName:      details.BankName,
		AccountNumber: details.AccountNumber,
		AccountName:   details.AccountName,
		Status:        aggregate.Status().String(),
		Notes:         aggregate.Notes(),
		RequestedAt:   aggregate.RequestedAt(),
		ProcessedAt:   processedAt,
	}
}

// toDomain converts a database DTO to a payout request aggregate.
func toDomain(dto PayoutRequestDTO) (*payout.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	earnerType, err := payout.ParseEarnerType(dto.EarnerType)
	if err != nil {
		return nil, err
	}
	status, err := parseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return payout.RestoreRequest(
		id, userID, earnerType,
		kernel.MoneyFromMinorUnits(dto.Amount),
		payout.BankDetails{
			BankName:      dto.BankName,
			AccountNumber: dto.AccountNumber,
			AccountName:   dto.AccountName,
		},
		status, dto.Notes, dto.RequestedAt, dto.ProcessedAt,
	)
}

func parseStatus(s string) (payout.Status, error) {
	for _, status := range []payout.Status{payout.Pending, payout.Processed, payout.Rejected} {
		if status.String() == s {
			return status, nil
		}
	}
	return payout.StatusUnknown, payout.StatusUnknown.Validate()
}
