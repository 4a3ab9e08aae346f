package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Worker and ledger counters, exposed on /metrics.
var (
	ChecksProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "serptrack",
		Name:      "checks_processed_total",
		Help:      "Keyword checks completed, by trigger mode.",
	}, []string{"mode"})

	ChecksSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "serptrack",
		Name:      "checks_skipped_total",
		Help:      "Keyword checks skipped, by reason.",
	}, []string{"reason"})

	SerpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "serptrack",
		Name:      "serp_requests_total",
		Help:      "Requests issued to the SERP provider, by outcome.",
	}, []string{"outcome"})

	Deductions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "serptrack",
		Name:      "balance_deductions_total",
		Help:      "Balance deduction attempts, by outcome.",
	}, []string{"outcome"})
)
