package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/ctxutil"
)

const (
	headerTraceID   = "X-Trace-Id"
	headerRequestID = "X-Request-Id"

	attrRequestID = "aerosense.request_id"
	attrClientID  = "aerosense.client_id"
)

// AttachTraceContext gives every request a trace id and request id, preferring
// the caller's headers, then the otel span, then a fresh uuid. Both ids are
// echoed back and tagged on the active span.
func AttachTraceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		span := trace.SpanFromContext(ctx)

		reqID := headerOr(c, headerRequestID, uuid.NewString)
		traceID := headerOr(c, headerTraceID, func() string {
			if sc := span.SpanContext(); sc.HasTraceID() {
				return sc.TraceID().String()
			}
			return uuid.NewString()
		})

		td := &ctxutil.TraceData{TraceID: traceID, RequestID: reqID, ClientKey: ctxutil.DefaultClientKey}
		c.Request = c.Request.WithContext(ctxutil.WithTraceData(ctx, td))
		span.SetAttributes(attribute.String(attrRequestID, reqID))

		c.Writer.Header().Set(headerTraceID, traceID)
		c.Writer.Header().Set(headerRequestID, reqID)
		c.Next()
	}
}

func headerOr(c *gin.Context, name string, fallback func() string) string {
	if v := strings.TrimSpace(c.GetHeader(name)); v != "" {
		return v
	}
	return fallback()
}

// tagClient records the resolved client id on the trace data and the span.
func tagClient(c *gin.Context, key string) {
	ctx := c.Request.Context()
	if td := ctxutil.GetTraceData(ctx); td != nil {
		td.ClientKey = ctxutil.GetClientKey(ctx)
	}
	if key != "" {
		trace.SpanFromContext(ctx).SetAttributes(attribute.String(attrClientID, key))
	}
}
