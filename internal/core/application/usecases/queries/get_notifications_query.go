package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves a recipient's in-app notifications.
type GetNotificationsQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a notification list query.
func NewGetNotificationsQuery(userID kernel.UUID) (GetNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetNotificationsQuery{}, err
	}
	return GetNotificationsQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// UserID returns the recipient.
func (q GetNotificationsQuery) UserID() kernel.UUID {
	return q.userID
}

// GetNotificationsQueryResponse represents one notification in the read model.
type GetNotificationsQueryResponse struct {
	ID        kernel.UUID
	Kind      string
	Title     string
	Message   string
	OrderID   *kernel.UUID
	Read      bool
	CreatedAt time.Time
}
