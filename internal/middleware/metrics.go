package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"item-service/internal/metrics"
)

const routeUnmatched = "unmatched"

// Metrics records request latency by method, route template and status.
func (mw Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = routeUnmatched
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
