package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// FulfillmentMetrics records outcomes of the fulfillment resolution pipeline.
type FulfillmentMetrics struct {
	validations        *prometheus.CounterVec
	validationDuration prometheus.Histogram
	ordersPlaced       *prometheus.CounterVec
	cartClears         prometheus.Counter
}

// NewFulfillmentMetrics registers the fulfillment metrics on the provided registerer.
func NewFulfillmentMetrics(reg prometheus.Registerer) *FulfillmentMetrics {
	if reg == nil {
		return &FulfillmentMetrics{}
	}
	validations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "address_validations_total",
		Help: "Address validations by outcome.",
	}, []string{"outcome"})
	validationDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "address_validation_duration_seconds",
		Help:    "Duration of address validation calls in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	ordersPlaced := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Placed orders by mode.",
	}, []string{"mode"})
	cartClears := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "branch_switch_cart_clears_total",
		Help: "Cart clears triggered by branch switches.",
	})
	reg.MustRegister(validations, validationDuration, ordersPlaced, cartClears)
	return &FulfillmentMetrics{
		validations:        validations,
		validationDuration: validationDuration,
		ordersPlaced:       ordersPlaced,
		cartClears:         cartClears,
	}
}

// ObserveValidation records one validation with its outcome and duration.
func (f *FulfillmentMetrics) ObserveValidation(outcome string, duration time.Duration) {
	if f == nil || f.validations == nil {
		return
	}
	f.validations.WithLabelValues(normalizeLabel(outcome)).Inc()
	f.validationDuration.Observe(duration.Seconds())
}

// IncOrderPlaced increments the placed-order counter for the mode.
func (f *FulfillmentMetrics) IncOrderPlaced(mode string) {
	if f == nil || f.ordersPlaced == nil {
		return
	}
	f.ordersPlaced.WithLabelValues(normalizeLabel(mode)).Inc()
}

// IncCartClear increments the branch-switch cart clear counter.
func (f *FulfillmentMetrics) IncCartClear() {
	if f == nil || f.cartClears == nil {
		return
	}
	f.cartClears.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
