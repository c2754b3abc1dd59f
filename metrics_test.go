package forge

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestStatsRegisterAndIncrement(t *testing.T) {
	reg := prometheus.NewRegistry()
	stats := NewStats("test")
	if err := stats.Register(reg); err != nil {
		t.Fatalf("unexpected error registering collectors: %v", err)
	}

	stats.TotalConnections.Inc()
	stats.TotalRequests.Inc()
	stats.TotalRequests.Inc()

	m := &dto.Metric{}
	if err := stats.TotalRequests.Write(m); err != nil {
		t.Fatalf("unexpected error reading metric: %v", err)
	}
	if m.Counter.GetValue() != 2 {
		t.Errorf("expected 2 total requests, got %v", m.Counter.GetValue())
	}
}
