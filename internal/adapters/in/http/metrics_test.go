package http

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestDomainMetrics(t *testing.T) {
	t.Run("placed orders are counted", func(t *testing.T) {
		before := testutil.ToFloat64(ordersPlacedTotal)
		recordOrderPlaced()
		assert.Equal(t, before+1, testutil.ToFloat64(ordersPlacedTotal))
	})

	t.Run("status transitions are counted per target status", func(t *testing.T) {
		counter := orderStatusTransitionsTotal.WithLabelValues("Delivered")
		before := testutil.ToFloat64(counter)
		recordStatusTransition("Delivered")
		assert.Equal(t, before+1, testutil.ToFloat64(counter))
	})

	t.Run("payment outcome follows the handler error", func(t *testing.T) {
		success := paymentsProcessedTotal.WithLabelValues("wallet", "success")
		failure := paymentsProcessedTotal.WithLabelValues("wallet", "failure")
		successBefore := testutil.ToFloat64(success)
		failureBefore := testutil.ToFloat64(failure)

		recordPayment("wallet", nil)
		recordPayment("wallet", assert.AnError)

		assert.Equal(t, successBefore+1, testutil.ToFloat64(success))
		assert.Equal(t, failureBefore+1, testutil.ToFloat64(failure))
	})
}
