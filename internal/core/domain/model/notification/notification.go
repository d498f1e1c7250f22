package notification

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrNotificationIsNotConstructed is returned when a Notification was not
// created via NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification or RestoreNotification constructor")

// Kind classifies what a notification is about.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindOrderUpdate informs a party about an order lifecycle change.
	KindOrderUpdate
)

// String returns the wire-format name of the kind.
func (k Kind) String() string {
	if k == KindOrderUpdate {
		return "order_update"
	}
	return "unknown"
}

// Validate checks that the kind is one of the defined values.
func (k Kind) Validate() error {
	if k != KindOrderUpdate {
		return errs.NewValueIsInvalidError("notification kind")
	}
	return nil
}

// Notification is one in-app message addressed to a single recipient. It is
// written by the dispatcher when it drains the outbox and flipped to read by
// the recipient; delivery to push transports is best effort and never blocks
// the order flow.
type Notification struct {
	id        kernel.UUID
	userID    kernel.UUID
	kind      Kind
	title     string
	message   string
	orderID   *kernel.UUID
	read      bool
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewNotification creates an unread notification for the given recipient.
func NewNotification(
	id kernel.UUID,
	userID kernel.UUID,
	kind Kind,
	title string,
	message string,
	orderID *kernel.UUID,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setUserID(userID),
		n.setKind(kind),
		n.setTitle(title),
		n.setMessage(message),
		n.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	userID kernel.UUID,
	kind Kind,
	title string,
	message string,
	orderID *kernel.UUID,
	read bool,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, userID, kind, title, message, orderID, createdAt)
	if err != nil {
		return nil, err
	}

	n.read = read
	return n, nil
}

// Validate ensures the Notification instance was properly constructed.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// UserID returns the recipient.
func (n *Notification) UserID() kernel.UUID {
	return n.userID
}

// Kind returns what the notification is about.
func (n *Notification) Kind() Kind {
	return n.kind
}

// Title returns the short headline.
func (n *Notification) Title() string {
	return n.title
}

// Message returns the body text.
func (n *Notification) Message() string {
	return n.message
}

// OrderID returns the related order, if any.
func (n *Notification) OrderID() *kernel.UUID {
	return n.orderID
}

// IsRead reports whether the recipient has seen the notification.
func (n *Notification) IsRead() bool {
	return n.read
}

// CreatedAt returns when the notification was written.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead flips the notification to read. Marking twice is a no-op.
func (n *Notification) MarkRead() {
	n.read = true
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	n.userID = userID
	return nil
}

func (n *Notification) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	n.kind = kind
	return nil
}

func (n *Notification) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	n.title = title
	return nil
}

func (n *Notification) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}

func (n *Notification) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	id := *orderID
	n.orderID = &id
	return nil
}
