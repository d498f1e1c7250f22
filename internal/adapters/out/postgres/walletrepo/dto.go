// Package walletrepo provides data transfer objects and mapping functions for
// wallet persistence: the balance row, the append-only transaction ledger,
// and saved gateway cards.
package walletrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"

	"github.com/google/uuid"
)

// WalletDTO represents the database structure for persisting wallets.
// The balance holds minor currency units.
type WalletDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Balance int64
}

// TableName specifies the database table name for wallets.
func (WalletDTO) TableName() string {
	return "wallets"
}

// TransactionDTO represents one ledger entry row. The reference column is
// unique among non-null values, which makes it the database-level idempotency
// guard for gateway top-ups.
type TransactionDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	TxType      string
	Amount      int64
	Description string
	Reference   *string `gorm:"uniqueIndex"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for ledger entries.
func (TransactionDTO) TableName() string {
	return "transactions"
}

// SavedCardDTO represents stored gateway card metadata.
type SavedCardDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID `gorm:"type:uuid;index"`
	AuthorizationCode string
	Last4             string
	CardType          string
	Bank              string
	ExpMonth          string
	ExpYear           string
	CreatedAt         time.Time
}

// TableName specifies the database table name for saved cards.
func (SavedCardDTO) TableName() string {
	return "saved_cards"
}

// fromDomain converts a wallet domain aggregate to its database representation.
func fromDomain(aggregate *wallet.Wallet) WalletDTO {
	return WalletDTO{
		ID:      aggregate.ID().Bytes(),
		UserID:  aggregate.UserID().Bytes(),
		Balance: aggregate.Balance().MinorUnits(),
	}
}

// toDomain converts a database DTO to a wallet domain aggregate.
func toDomain(dto WalletDTO) (*wallet.Wallet, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return wallet.RestoreWallet(id, userID, kernel.MoneyFromMinorUnits(dto.Balance))
}

// transactionFromDomain converts a ledger entry to its database representation.
func transactionFromDomain(entry wallet.Transaction) TransactionDTO {
	var reference *string
	if ref := entry.Reference(); ref != "" {
		reference = &ref
	}

	return TransactionDTO{
		ID:          entry.ID().Bytes(),
		UserID:      entry.UserID().Bytes(),
		TxType:      entry.Type().String(),
		Amount:      entry.Amount().MinorUnits(),
		Description: entry.Description(),
		Reference:   reference,
		CreatedAt:   entry.CreatedAt(),
	}
}

// cardFromDomain converts saved card metadata to its database representation.
func cardFromDomain(card wallet.SavedCard) SavedCardDTO {
	return SavedCardDTO{
		ID:                card.ID.Bytes(),
		UserID:            card.UserID.Bytes(),
		AuthorizationCode: card.AuthorizationCode,
		Last4:             card.Last4,
		CardType:          card.CardType,
		Bank:              card.Bank,
		ExpMonth:          card.ExpMonth,
		ExpYear:           card.ExpYear,
		CreatedAt:         card.CreatedAt,
	}
}
