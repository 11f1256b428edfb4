package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/observability"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/apierr"
)

// Metrics records request counts and latency per route template, plus the
// apierr code of any error the handler responded with.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		m.ApiInflightInc()
		defer m.ApiInflightDec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		m.ObserveAPI(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
		if last := c.Errors.Last(); last != nil {
			m.IncAPIError(route, apierr.CodeOf(last.Err))
		}
	}
}
