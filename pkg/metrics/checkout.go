package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records confirmation outcomes for checkout flows.
type CheckoutMetrics struct {
	completed  prometheus.Counter
	failed     *prometheus.CounterVec
	orderTotal prometheus.Histogram
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	completed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_completed_total",
		Help: "Checkout flows that produced an order.",
	})
	failed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_failed_total",
		Help: "Checkout confirmations that failed, by reason.",
	}, []string{"reason"})
	orderTotal := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkout_order_total_rupees",
		Help:    "Order totals at confirmation, in rupees.",
		Buckets: prometheus.ExponentialBuckets(100, 2, 12),
	})
	reg.MustRegister(completed, failed, orderTotal)
	return &CheckoutMetrics{
		completed:  completed,
		failed:     failed,
		orderTotal: orderTotal,
	}
}

// IncCompleted increments the completed counter and records the order total.
func (c *CheckoutMetrics) IncCompleted(totalCents int) {
	if c == nil || c.completed == nil {
		return
	}
	c.completed.Inc()
	c.orderTotal.Observe(float64(totalCents) / 100)
}

// IncFailed increments the failure counter for the given reason.
func (c *CheckoutMetrics) IncFailed(reason string) {
	if c == nil || c.failed == nil {
		return
	}
	c.failed.WithLabelValues(normalizeLabel(reason)).Inc()
}
