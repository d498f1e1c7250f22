package notification

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// Route is one recipient-message pair derived from a status event.
type Route struct {
	RecipientID kernel.UUID
	Title       string
	Message     string
}

// Routes maps an order status transition to the parties that must hear about
// it. Customers follow the whole lifecycle, vendors hear about intake and
// completion, and the rider is told when an order they can carry is ready.
// Transitions with no interested party return an empty slice.
func Routes(event order.StatusChanged) []Route {
	code := shortCode(event.OrderID)

	switch event.To {
	case order.PendingAcceptance:
		return []Route{{
			RecipientID: event.VendorID,
			Title:       "New order received",
			Message:     fmt.Sprintf("Order %s has been paid and awaits your acceptance.", code),
		}}
	case order.Preparing:
		return []Route{{
			RecipientID: event.CustomerID,
			Title:       "Order accepted",
			Message:     fmt.Sprintf("Order %s is being prepared.", code),
		}}
	case order.ReadyForPickup:
		routes := []Route{{
			RecipientID: event.CustomerID,
			Title:       "Order ready",
			Message:     fmt.Sprintf("Order %s is ready and awaiting pickup.", code),
		}}
		if event.RiderID != nil {
			routes = append(routes, Route{
				RecipientID: *event.RiderID,
				Title:       "Pickup available",
				Message:     fmt.Sprintf("Order %s is ready for pickup.", code),
			})
		}
		return routes
	case order.InTransit:
		return []Route{{
			RecipientID: event.CustomerID,
			Title:       "Order on the way",
			Message:     fmt.Sprintf("Order %s is on its way to you.", code),
		}}
	case order.Delivered:
		return []Route{
			{
				RecipientID: event.CustomerID,
				Title:       "Order delivered",
				Message:     fmt.Sprintf("Order %s has been delivered. Enjoy!", code),
			},
			{
				RecipientID: event.VendorID,
				Title:       "Order completed",
				Message:     fmt.Sprintf("Order %s has been delivered to the customer.", code),
			},
		}
	case order.Canceled:
		return []Route{
			{
				RecipientID: event.CustomerID,
				Title:       "Order canceled",
				Message:     fmt.Sprintf("Order %s has been canceled.", code),
			},
			{
				RecipientID: event.VendorID,
				Title:       "Order canceled",
				Message:     fmt.Sprintf("Order %s has been canceled.", code),
			},
		}
	default:
		return nil
	}
}

// shortCode renders the human-facing order reference used in message bodies.
func shortCode(id kernel.UUID) string {
	return "#" + id.String()[:8]
}
