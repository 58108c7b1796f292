package obs

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Escalation metrics.
var (
	escalationAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "escalation_attempts_total",
			Help: "Total number of escalation attempts by outcome and gateway mode.",
		},
		[]string{"outcome", "mode"},
	)

	gatewayCallDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "escalation_gateway_call_duration_seconds",
			Help:    "Voice call gateway latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Init registers metrics in the default registry.
func Init() {
	prometheus.MustRegister(escalationAttemptsTotal, gatewayCallDuration)
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveEscalation records one finished escalation attempt.
func ObserveEscalation(outcome string, simulated bool, gatewayElapsed time.Duration) {
	mode := "live"
	if simulated {
		mode = "simulated"
	}
	escalationAttemptsTotal.WithLabelValues(outcome, mode).Inc()
	gatewayCallDuration.Observe(gatewayElapsed.Seconds())
}
