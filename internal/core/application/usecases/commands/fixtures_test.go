package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// orderInStatus walks a fresh order through legal transitions until it
// reaches the wanted status. The rider is assigned as soon as the order is
// Ready for Pickup.
func orderInStatus(t *testing.T, status order.Status, riderID kernel.UUID) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), "Jollof Rice", kernel.MoneyFromMinorUnits(250000), 1)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), []order.Item{item},
		kernel.MoneyFromMinorUnits(50000), "12 Allen Avenue, Ikeja", nil, time.Now())
	require.NoError(t, err)

	steps := []struct {
		to    order.Status
		actor order.Actor
	}{
		{order.PendingAcceptance, order.ActorCustomer},
		{order.Preparing, order.ActorVendor},
		{order.ReadyForPickup, order.ActorVendor},
		{order.InTransit, order.ActorRider},
		{order.Delivered, order.ActorRider},
	}

	for _, step := range steps {
		if o.Status() == status {
			return o
		}
		if o.Status() == order.ReadyForPickup && o.RiderID() == nil {
			require.NoError(t, o.Claim(riderID, time.Now()))
		}

		actorID := o.CustomerID()
		switch step.actor {
		case order.ActorVendor:
			actorID = o.VendorID()
		case order.ActorRider:
			actorID = riderID
		}
		require.NoError(t, o.TransitionTo(step.to, step.actor, actorID, time.Now()))
	}

	require.Equal(t, status, o.Status())
	return o
}
