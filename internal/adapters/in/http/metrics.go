package http

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Count of handled HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ordersPlacedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Count of successfully placed orders.",
		},
	)

	orderStatusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_status_transitions_total",
			Help: "Count of applied order status transitions by target status.",
		},
		[]string{"status"},
	)

	paymentsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_processed_total",
			Help: "Count of payment attempts by method and outcome.",
		},
		[]string{"method", "outcome"},
	)
)

func recordOrderPlaced() {
	ordersPlacedTotal.Inc()
}

func recordStatusTransition(status string) {
	orderStatusTransitionsTotal.WithLabelValues(status).Inc()
}

func recordPayment(method string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	paymentsProcessedTotal.WithLabelValues(method, outcome).Inc()
}

// MetricsMiddleware records request counts and latency per route. The route
// template is used as the path label so order IDs do not explode cardinality.
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			path := ctx.Path()
			if path == "" {
				path = ctx.Request().URL.Path
			}

			requestsTotal.WithLabelValues(
				ctx.Request().Method, path, strconv.Itoa(ctx.Response().Status)).Inc()
			requestDuration.WithLabelValues(
				ctx.Request().Method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
