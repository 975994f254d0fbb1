package meter

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

type ctxKey struct{}

// NewContext returns a context carrying the meter. Start calls it for you;
// use it directly only when plumbing a meter through code that cannot call
// Start itself.
func NewContext(parent context.Context, m *Meter) context.Context {
	return context.WithValue(parent, ctxKey{}, m)
}

// FromContext returns the meter carried by the context, or nil.
func FromContext(ctx context.Context) *Meter {
	m, _ := ctx.Value(ctxKey{}).(*Meter)
	return m
}

// spanContext pulls identifiers from a sampled OpenTelemetry span so
// operation records correlate with distributed traces. Returns empty
// strings when the context carries no valid span.
func spanContext(ctx context.Context) (traceID, spanID string) {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return "", ""
	}
	return sc.TraceID().String(), sc.SpanID().String()
}
