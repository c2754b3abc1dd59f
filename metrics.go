package forge

import "github.com/prometheus/client_golang/prometheus"

// Stats exposes the connection/request counters shockwave's
// server.Stats tracks with raw atomics, ported here onto Prometheus
// collectors so an embedding application can register them on its own
// registry (supplements spec.md per SPEC_FULL.md §10.2 — observing
// the server is not one of the Non-goals' excluded application
// features).
type Stats struct {
	TotalConnections  prometheus.Counter
	ActiveConnections prometheus.Gauge
	TotalRequests     prometheus.Counter
	ConnectionErrors  prometheus.Counter
	RequestErrors     prometheus.Counter
}

// NewStats constructs a Stats with a shared namespace/subsystem
// label, ready to be registered via Register.
func NewStats(namespace string) *Stats {
	return &Stats{
		TotalConnections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "forge", Name: "connections_total",
			Help: "Total TCP connections accepted.",
		}),
		ActiveConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "forge", Name: "connections_active",
			Help: "Currently open connections.",
		}),
		TotalRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "forge", Name: "requests_total",
			Help: "Total requests handled across all connections.",
		}),
		ConnectionErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "forge", Name: "connection_errors_total",
			Help: "Transport-level connection failures.",
		}),
		RequestErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "forge", Name: "request_errors_total",
			Help: "Requests that resulted in a 5xx response.",
		}),
	}
}

// Register adds every collector to reg.
func (s *Stats) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		s.TotalConnections, s.ActiveConnections, s.TotalRequests,
		s.ConnectionErrors, s.RequestErrors,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
