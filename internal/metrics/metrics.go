package metrics

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookhaven_http_requests_total",
		Help: "Total number of HTTP requests handled",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bookhaven_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	HardcoverRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookhaven_hardcover_requests_total",
		Help: "Total number of requests to the Hardcover metadata API",
	}, []string{"operation", "result"})
)

// RegisterDBStats exposes connection pool gauges for the database. Call it
// once at startup.
func RegisterDBStats(stats func() sql.DBStats) {
	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "bookhaven_db_open_connections",
		Help: "Open connections in the database pool",
	}, func() float64 {
		return float64(stats().OpenConnections)
	})
	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "bookhaven_db_connections_in_use",
		Help: "Database connections currently in use",
	}, func() float64 {
		return float64(stats().InUse)
	})
}
