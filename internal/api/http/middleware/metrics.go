package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/poligap/poligap/internal/observability/metrics"
)

// Metrics records per-request counters and latency histograms. The route
// template is used as the path label so ids do not explode cardinality.
func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		collector.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
