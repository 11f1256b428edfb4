package ctxutil

import "context"

type traceDataKey struct{}

// TraceData correlates one API request across logs, spans and emitted events.
// ClientKey is filled in once the client id has been resolved.
type TraceData struct {
	TraceID   string
	RequestID string
	ClientKey string
}

// LogFields returns the non-empty ids as logger key/value pairs.
func (td *TraceData) LogFields() []any {
	if td == nil {
		return nil
	}
	var out []any
	if td.TraceID != "" {
		out = append(out, "trace_id", td.TraceID)
	}
	if td.RequestID != "" {
		out = append(out, "request_id", td.RequestID)
	}
	if td.ClientKey != "" && td.ClientKey != DefaultClientKey {
		out = append(out, "client_id", td.ClientKey)
	}
	return out
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	if td, ok := ctx.Value(traceDataKey{}).(*TraceData); ok {
		return td
	}
	return nil
}
