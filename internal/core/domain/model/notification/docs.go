// Package notification contains in-app notifications and the routing table
// that turns order status events into per-recipient messages. Notifications
// are written by the outbox dispatcher, never by the order transaction
// itself.
package notification
