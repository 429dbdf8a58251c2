package esdc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "esdc_client",
			Name:      "requests_total",
			Help:      "API requests sent, by HTTP method.",
		},
		[]string{"method"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "esdc_client",
			Name:      "request_failures_total",
			Help:      "API requests that failed at the transport level, by HTTP method.",
		},
		[]string{"method"},
	)
)
