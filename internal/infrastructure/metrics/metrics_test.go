package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics

	// None of these may panic.
	m.ItemAdded(300)
	m.SaleConfirmed(3, 800)
	m.SaleVoided()
	m.AuthFailure()
	m.MalformedRowSkipped("2025-11-21")
}

func TestMetricsRecord(t *testing.T) {
	m := New()

	m.ItemAdded(300)
	m.ItemAdded(200)
	m.SaleConfirmed(2, 500)
	m.SaleVoided()
	m.AuthFailure()
	m.MalformedRowSkipped("2025-11-21")

	if got := testutil.ToFloat64(m.ItemsAdded); got != 2 {
		t.Fatalf("expected 2 items added, got %v", got)
	}
	if got := testutil.ToFloat64(m.SalesConfirmed); got != 1 {
		t.Fatalf("expected 1 sale confirmed, got %v", got)
	}
	if got := testutil.ToFloat64(m.SalesVoided); got != 1 {
		t.Fatalf("expected 1 sale voided, got %v", got)
	}
	if got := testutil.ToFloat64(m.AuthFailures); got != 1 {
		t.Fatalf("expected 1 auth failure, got %v", got)
	}
	if got := testutil.ToFloat64(m.MalformedRows.WithLabelValues("2025-11-21")); got != 1 {
		t.Fatalf("expected 1 malformed row, got %v", got)
	}
}
