package workers

import "github.com/prometheus/client_golang/prometheus"

// Job results reported by the jobs counter.
const (
	resultSuccess  = "success"
	resultFailure  = "failure"
	resultPanic    = "panic"
	resultRejected = "rejected"
)

var (
	jobsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "message_keeper_background_jobs_total",
			Help: "Total number of background jobs by kind and result.",
		},
		[]string{"kind", "result"},
	)
	queueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "message_keeper_background_queue_depth",
			Help: "Number of background jobs waiting to run.",
		},
	)
	jobDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "message_keeper_background_job_duration_seconds",
			Help:    "Background job latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(jobsTotal, queueDepth, jobDuration)
}
