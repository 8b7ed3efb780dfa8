package ctxlog

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// WithTraceCorrelation adds trace_id and span_id attributes to every emitted
// record when the context carries a valid span. The attributes ride on the
// record itself, not in the rendered message, so the render contract is
// unchanged.
func WithTraceCorrelation() Option {
	return func(s *settings) {
		s.trace = true
	}
}

func traceAttrs(ctx context.Context) []slog.Attr {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return nil
	}
	return []slog.Attr{
		slog.String("trace_id", sc.TraceID().String()),
		slog.String("span_id", sc.SpanID().String()),
	}
}
