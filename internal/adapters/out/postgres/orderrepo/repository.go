package orderrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM. Status changes
// and rider claims are conditional updates: the WHERE clause re-checks the
// state the caller loaded, and zero affected rows means a concurrent writer
// got there first.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Get retrieves an order with its line items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus persists a status transition, conditional on the row still
// holding the status the caller loaded. Zero affected rows means the
// transition lost a race and nothing was written.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, from order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), from.String()).
		Updates(map[string]any{
			"status":     aggregate.Status().String(),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Claim persists a rider assignment, conditional on the row still being
// unassigned and Ready for Pickup. First writer wins; everyone else gets
// ConcurrencyConflict.
func (r *GormOrderRepository) Claim(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	riderID := aggregate.RiderID()
	if riderID == nil {
		return errs.NewValueIsRequiredError("riderID")
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND rider_id IS NULL AND status = ?",
			aggregate.ID().Bytes(), order.ReadyForPickup.String()).
		Updates(map[string]any{
			"rider_id":   riderID.Bytes(),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// SumVendorEarnings returns the vendor's share over its delivered orders.
func (r *GormOrderRepository) SumVendorEarnings(ctx context.Context, vendorID kernel.UUID) (kernel.Money, error) {
	if err := vendorID.Validate(); err != nil {
		return kernel.Money{}, err
	}

	var sum int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("COALESCE(SUM(total_amount - delivery_fee), 0)").
		Where("vendor_id = ? AND status = ?", vendorID.Bytes(), order.Delivered.String()).
		Scan(&sum).Error
	if err != nil {
		return kernel.Money{}, err
	}

	return kernel.MoneyFromMinorUnits(sum), nil
}

// SumRiderEarnings returns the delivery fees over the rider's delivered orders.
func (r *GormOrderRepository) SumRiderEarnings(ctx context.Context, riderID kernel.UUID) (kernel.Money, error) {
	if err := riderID.Validate(); err != nil {
		return kernel.Money{}, err
	}

	var sum int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("COALESCE(SUM(delivery_fee), 0)").
		Where("rider_id = ? AND status = ?", riderID.Bytes(), order.Delivered.String()).
		Scan(&sum).Error
	if err != nil {
		return kernel.Money{}, err
	}

	return kernel.MoneyFromMinorUnits(sum), nil
}
