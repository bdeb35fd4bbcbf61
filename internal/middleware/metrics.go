// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"blog-service/internal/metrics"
)

// defaultUnobservedRoutes are scraped or probed often enough to drown the
// API series.
var defaultUnobservedRoutes = []string{"/metrics", "/health", "/ready", "/live"}

// Metrics records request totals, durations and the in-flight gauge per
// route template, so /api/v1/posts/:slug is one series however many posts
// exist. Routes in skip (default: metrics and probe endpoints) are not
// recorded.
func Metrics(skip ...string) gin.HandlerFunc {
	if len(skip) == 0 {
		skip = defaultUnobservedRoutes
	}
	skipped := make(map[string]struct{}, len(skip))
	for _, route := range skip {
		skipped[route] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skipped[c.FullPath()]; ok {
			c.Next()
			return
		}

		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
