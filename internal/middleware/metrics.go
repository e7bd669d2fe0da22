package middleware

import (
	"strconv"
	"time"

	"github.com/artiefy/clinicafix-sub000/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latencies into the prometheus
// collector. Paths are recorded as route templates, not raw URLs, to keep
// cardinality bounded.
func Metrics(col *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		col.InFlightGauge.Inc()

		c.Next()

		col.InFlightGauge.Dec()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		col.RequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		col.RequestDuration.WithLabelValues(c.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
	}
}
