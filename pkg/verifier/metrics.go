package verifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	verifyDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rigcheck_verify_duration_seconds",
			Help:    "Duration of build verification in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)

	verifyTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rigcheck_verify_total",
			Help: "Total number of build verifications",
		},
		[]string{"result"}, // valid, invalid, not_found or canceled
	)

	findingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rigcheck_findings_total",
			Help: "Total number of findings reported, by checker family",
		},
		[]string{"family"},
	)
)

const (
	resultValid    = "valid"
	resultInvalid  = "invalid"
	resultNotFound = "not_found"
	resultCanceled = "canceled"
)
