package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cms_http_requests_total", Help: "Total HTTP requests by method, path and status"},
		[]string{"method", "path", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cms_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	MaintenanceRuns = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "cms_maintenance_runs_total", Help: "Total maintenance cron executions"},
	)
)

func Register() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, MaintenanceRuns)
}
