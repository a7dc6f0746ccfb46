package middleware

import (
	"strconv"
	"time"

	"github.com/abakirov/mflix-api/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records latency and a request count per route, labeled by method,
// matched route template, and status. Unmatched requests collapse into one
// "unknown" path label so cardinality stays bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		status := strconv.Itoa(c.Writer.Status())
		elapsed := time.Since(start).Seconds()

		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(elapsed)
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}
