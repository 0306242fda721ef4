package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled requests by method, route template and status code
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "standup_api",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "The total number of handled HTTP requests",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency by method and route template
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "standup_api",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// MutationOutcomes counts guarded writes by target entity and outcome
	MutationOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "standup_api",
		Name:      "mutation_outcomes_total",
		Help:      "The total number of guarded writes by outcome",
	}, []string{"entity", "outcome"})

	// CacheLookups counts read cache lookups by result
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "standup_api",
		Name:      "cache_lookups_total",
		Help:      "The total number of read cache lookups",
	}, []string{"result"})
)

// Guarded write outcomes
const (
	OutcomeWritten            = "written"
	OutcomePreconditionFailed = "precondition_failed"
	OutcomeWriteFailed        = "write_failed"
	OutcomeStoreError         = "store_error"
)
