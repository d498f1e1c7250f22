package payoutrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payout"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPayoutRepository implements PayoutRepository using GORM.
type GormPayoutRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPayoutRepository creates a new GORM payout repository.
func NewGormPayoutRepository(db *gorm.DB, tracker aggregateTracker) *GormPayoutRepository {
	return &GormPayoutRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payout request to the database.
func (r *GormPayoutRepository) Add(ctx context.Context, aggregate *payout.Request) error {
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

// Get retrieves a payout request by ID.
func (r *GormPayoutRepository) Get(ctx context.Context, id kernel.UUID) (*payout.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PayoutRequestDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payout request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update persists the state of an existing payout request.
func (r *GormPayoutRepository) Update(ctx context.Context, aggregate *payout.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Save(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// SumByStatus returns the total amount of the user's payout requests in the
// given status. Settlement reads it inside the same transaction that inserts
// a new request, so concurrent withdrawals cannot both count the same funds
// as available.
func (r *GormPayoutRepository) SumByStatus(
	ctx context.Context, userID kernel.UUID, status payout.Status,
) (kernel.Money, error) {
	if err := userID.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if err := status.Validate(); err != nil {
		return kernel.Money{}, err
	}

	var sum int64
	err := r.db.WithContext(ctx).
		Model(&PayoutRequestDTO{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND status = ?", userID.Bytes(), status.String()).
		Scan(&sum).Error
	if err != nil {
		return kernel.Money{}, err
	}

	return kernel.MoneyFromMinorUnits(sum), nil
}
