package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/students-sa/planner-api/internal/service"
)

// Metrics returns middleware that records per-request duration and
// count. Routes are labeled by template so path parameters (course
// ids, job ids) do not explode the label space; the scrape endpoint
// itself is not observed.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil || c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
