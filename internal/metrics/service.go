package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Service holds the prometheus registry and the transfer pipeline metrics.
// It owns its registry so multiple instances (e.g. test servers) never
// collide on registration.
type Service struct {
	registry *prometheus.Registry

	transfersTotal      *prometheus.CounterVec
	confirmationSeconds prometheus.Histogram
}

// New creates a metrics service with a fresh registry.
func New() *Service {
	registry := prometheus.NewRegistry()

	transfersTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payout",
		Name:      "transfers_total",
		Help:      "Transfer pipeline outcomes partitioned by result.",
	}, []string{"outcome"})

	confirmationSeconds := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "payout",
		Name:      "transfer_confirmation_seconds",
		Help:      "Time between broadcast and first confirmation.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		transfersTotal,
		confirmationSeconds,
	)

	return &Service{
		registry:            registry,
		transfersTotal:      transfersTotal,
		confirmationSeconds: confirmationSeconds,
	}
}

// Registry exposes the underlying registry for the /-/metrics endpoint and
// the echo middleware.
func (s *Service) Registry() *prometheus.Registry {
	return s.registry
}

// ObserveTransfer counts a finished transfer attempt by outcome
// ("confirmed", "insufficient_funds", "network_error", ...).
func (s *Service) ObserveTransfer(outcome string) {
	s.transfersTotal.WithLabelValues(outcome).Inc()
}

// ObserveConfirmation records the broadcast-to-confirmation latency.
func (s *Service) ObserveConfirmation(d time.Duration) {
	s.confirmationSeconds.Observe(d.Seconds())
}
