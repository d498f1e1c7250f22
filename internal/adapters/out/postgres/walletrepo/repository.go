package walletrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWalletRepository implements WalletRepository using GORM. The balance
// write is a compare-and-swap on the previously loaded balance, and the
// paired ledger entry is appended in the same call, so a lost race writes
// neither.
type GormWalletRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWalletRepository creates a new GORM wallet repository.
func NewGormWalletRepository(db *gorm.DB, tracker aggregateTracker) *GormWalletRepository {
	return &GormWalletRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new wallet to the database.
func (r *GormWalletRepository) Add(ctx context.Context, aggregate *wallet.Wallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByUser retrieves the wallet owned by the given account holder.
func (r *GormWalletRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*wallet.Wallet, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto WalletDTO
	err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("wallet", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update persists the new balance conditionally on the row still holding
// expectedBalance and appends the paired ledger entry. Zero affected rows
// means a concurrent writer changed the balance first; nothing is written
// and the caller must refetch.
func (r *GormWalletRepository) Update(
	ctx context.Context, aggregate *wallet.Wallet, expectedBalance kernel.Money, entry wallet.Transaction,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&WalletDTO{}).
		Where("id = ? AND balance = ?", aggregate.ID().Bytes(), expectedBalance.MinorUnits()).
		Update("balance", aggregate.Balance().MinorUnits())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("wallet", aggregate.ID().String())
	}

	entryDTO := transactionFromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&entryDTO).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AppendTransaction appends a ledger entry that is not paired with a balance
// change, such as the record of a card charge consumed at checkout.
func (r *GormWalletRepository) AppendTransaction(ctx context.Context, entry wallet.Transaction) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := transactionFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// HasTransactionWithReference reports whether a ledger entry already carries
// the given reference.
func (r *GormWalletRepository) HasTransactionWithReference(ctx context.Context, reference string) (bool, error) {
	if reference == "" {
		return false, errs.NewValueIsRequiredError("reference")
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&TransactionDTO{}).
		Where("reference = ?", reference).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// SaveCard stores gateway card metadata captured during a top-up.
func (r *GormWalletRepository) SaveCard(ctx context.Context, card wallet.SavedCard) error {
	if err := card.Validate(); err != nil {
		return err
	}

	dto := cardFromDomain(card)
	return r.db.WithContext(ctx).Create(&dto).Error
}
