package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/pos_backend/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts and latency per matched route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		done := metrics.RequestStarted()
		defer done()

		start := time.Now()
		c.Next()

		// FullPath keeps label cardinality bounded, e.g. /api/v1/pos/:posID/sales
		metrics.ObserveRequest(strings.ToUpper(c.Request.Method), c.FullPath(), strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

// MetricsHandler exposes the prometheus registry.
func MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(metrics.Handler())
}
