package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequests tracks platform API calls per endpoint and outcome.
	APIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranksync_api_requests_total",
			Help: "Total number of platform API requests",
		},
		[]string{"endpoint", "outcome"},
	)

	// APILatency tracks platform API call latency.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ranksync_api_latency_seconds",
			Help:    "Platform API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// RetryAttempts tracks failed attempts that were retried, per operation.
	RetryAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranksync_retry_attempts_total",
			Help: "Total number of retried attempts",
		},
		[]string{"operation"},
	)

	// RateLimitCooldowns tracks cooldown sleeps triggered by rate limiting.
	RateLimitCooldowns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranksync_rate_limit_cooldowns_total",
			Help: "Total number of rate-limit cooldown waits",
		},
		[]string{"operation"},
	)

	// MembersScanned tracks members enumerated per scanned role.
	MembersScanned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranksync_members_scanned_total",
			Help: "Total number of members enumerated",
		},
		[]string{"role"},
	)

	// Assignments tracks successful rank assignments per target role.
	Assignments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranksync_assignments_total",
			Help: "Total number of successful rank assignments",
		},
		[]string{"role"},
	)
)
