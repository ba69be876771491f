package observability

import (
	"strings"
	"testing"
)

func TestCounterVecWritePrometheus(t *testing.T) {
	c := NewCounterVec("test_total", "Test counter.", []string{"method", "route"})
	c.Inc("GET", "/customers")
	c.Inc("GET", "/customers")
	c.Inc("POST", "/leads")

	var b strings.Builder
	if err := c.WritePrometheus(&b); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	out := b.String()

	if !strings.Contains(out, "# TYPE test_total counter") {
		t.Fatalf("missing TYPE line:\n%s", out)
	}
	if !strings.Contains(out, `test_total{method="GET",route="/customers"} 2.0`) {
		t.Fatalf("missing GET sample:\n%s", out)
	}
	if !strings.Contains(out, `test_total{method="POST",route="/leads"} 1.0`) {
		t.Fatalf("missing POST sample:\n%s", out)
	}
}

func TestGaugeIncDec(t *testing.T) {
	g := NewGauge("test_gauge", "Test gauge.")
	g.Inc()
	g.Inc()
	g.Dec()

	var b strings.Builder
	if err := g.WritePrometheus(&b); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	if !strings.Contains(b.String(), "test_gauge 1.0") {
		t.Fatalf("gauge value:\n%s", b.String())
	}
}

func TestHistogramVecBuckets(t *testing.T) {
	h := NewHistogramVec("test_seconds", "Test histogram.", []string{"route"}, []float64{0.1, 1})
	h.Observe(0.05, "/customers")
	h.Observe(0.5, "/customers")
	h.Observe(5, "/customers")

	var b strings.Builder
	if err := h.WritePrometheus(&b); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	out := b.String()

	if !strings.Contains(out, `test_seconds_bucket{route="/customers",le="0.1"} 1`) {
		t.Fatalf("le=0.1 bucket:\n%s", out)
	}
	if !strings.Contains(out, `test_seconds_bucket{route="/customers",le="1"} 2`) {
		t.Fatalf("le=1 bucket:\n%s", out)
	}
	if !strings.Contains(out, `test_seconds_bucket{route="/customers",le="+Inf"} 3`) {
		t.Fatalf("le=+Inf bucket:\n%s", out)
	}
	if !strings.Contains(out, `test_seconds_count{route="/customers"} 3`) {
		t.Fatalf("count sample:\n%s", out)
	}
}

func TestLabelStringEscapes(t *testing.T) {
	got := labelString([]string{"slot"}, []string{`bad"value`})
	want := `{slot="bad\"value"}`
	if got != want {
		t.Fatalf("labelString: want=%q got=%q", want, got)
	}
}

func TestLabelStringMissingValue(t *testing.T) {
	got := labelString([]string{"a", "b"}, []string{"x"})
	want := `{a="x",b="unknown"}`
	if got != want {
		t.Fatalf("labelString: want=%q got=%q", want, got)
	}
}

func TestMetricsWritePrometheus(t *testing.T) {
	m := NewMetrics()
	m.ObserveAPIRequest("GET", "/customers", "200", 0.02)
	m.IncInflight()
	m.ObserveStoreOp("customers", "get", "success")

	var b strings.Builder
	if err := m.WritePrometheus(&b); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	out := b.String()

	for _, want := range []string{
		"crm_api_requests_total",
		"crm_api_request_seconds",
		"crm_api_inflight_requests",
		"crm_store_ops_total",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s:\n%s", want, out)
		}
	}
}
