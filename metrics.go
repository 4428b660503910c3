package workshop

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "workshop_client",
			Name:      "requests_total",
			Help:      "Workshop API requests issued, by operation.",
		},
		[]string{"operation"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "workshop_client",
			Name:      "request_failures_total",
			Help:      "Workshop API requests that returned an error, by operation.",
		},
		[]string{"operation"},
	)
)

func observe(operation string, err error) {
	requestsTotal.WithLabelValues(operation).Inc()
	if err != nil {
		requestFailuresTotal.WithLabelValues(operation).Inc()
	}
}
