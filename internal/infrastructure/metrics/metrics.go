package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the register. A nil *Metrics
// is safe to record against, so tests can pass nil.
type Metrics struct {
	// Sale metrics
	SalesConfirmed prometheus.Counter
	SalesVoided    prometheus.Counter
	SaleAmount     prometheus.Histogram
	SaleItems      prometheus.Histogram

	// Basket metrics
	ItemsAdded prometheus.Counter
	ItemPrice  prometheus.Histogram

	// Discount metrics
	AuthFailures prometheus.Counter

	// Aggregation metrics
	MalformedRows *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		SalesConfirmed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pos_sales_confirmed_total",
			Help: "Total number of confirmed sales",
		}),
		SalesVoided: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pos_sales_voided_total",
			Help: "Total number of voided sales",
		}),
		SaleAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "pos_sale_amount_yen",
			Help:    "Amount per confirmed sale",
			Buckets: []float64{100, 300, 500, 1000, 2000, 5000, 10000},
		}),
		SaleItems: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "pos_sale_items",
			Help:    "Items per confirmed sale",
			Buckets: []float64{1, 2, 3, 5, 10, 20},
		}),
		ItemsAdded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pos_basket_items_added_total",
			Help: "Total number of items added to baskets",
		}),
		ItemPrice: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "pos_basket_item_price_yen",
			Help:    "Unit price of added items",
			Buckets: []float64{0, 100, 200, 300, 500, 1000, 10000},
		}),
		AuthFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pos_discount_auth_failures_total",
			Help: "Total number of failed discount authorizations",
		}),
		MalformedRows: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pos_malformed_rows_skipped_total",
				Help: "Total number of ledger rows skipped during aggregation",
			},
			[]string{"table"},
		),
	}
}

// ItemAdded records one item added to a basket.
func (m *Metrics) ItemAdded(price int) {
	if m == nil {
		return
	}
	m.ItemsAdded.Inc()
	m.ItemPrice.Observe(float64(price))
}

// SaleConfirmed records one confirmed sale.
func (m *Metrics) SaleConfirmed(itemCount, amount int) {
	if m == nil {
		return
	}
	m.SalesConfirmed.Inc()
	m.SaleItems.Observe(float64(itemCount))
	m.SaleAmount.Observe(float64(amount))
}

// SaleVoided records one voided sale.
func (m *Metrics) SaleVoided() {
	if m == nil {
		return
	}
	m.SalesVoided.Inc()
}

// AuthFailure records one failed discount authorization.
func (m *Metrics) AuthFailure() {
	if m == nil {
		return
	}
	m.AuthFailures.Inc()
}

// MalformedRowSkipped records one skipped ledger row.
func (m *Metrics) MalformedRowSkipped(table string) {
	if m == nil {
		return
	}
	m.MalformedRows.WithLabelValues(table).Inc()
}
