package outboxrepo

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add appends a status-changed event to the outbox.
func (r *GormOutboxRepository) Add(ctx context.Context, event order.StatusChanged) error {
	if err := event.EventID.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetUnpublished returns up to limit undelivered events, oldest first.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]order.StatusChanged, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsInvalidError("limit")
	}

	var dtos []StatusEventDTO
	err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("occurred_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]order.StatusChanged, 0, len(dtos))
	for _, dto := range dtos {
		event, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		events = append(events, event)
	}

	return events, nil
}

// MarkPublished stamps the event as delivered so the dispatcher never picks
// it up again.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, eventID kernel.UUID) error {
	if err := eventID.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&StatusEventDTO{}).
		Where("id = ?", eventID.Bytes()).
		Update("published_at", &now).Error
}
