package ctxlog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/jailtonjunior94/ctxlog/pkg/ctxlog"
	"github.com/jailtonjunior94/ctxlog/pkg/ctxlog/ctxlogtest"
)

func TestTraceCorrelation(t *testing.T) {
	rec := ctxlogtest.NewRecorder()
	logger := ctxlog.New("traced", ctxlog.WithHandler(rec), ctxlog.WithTraceCorrelation())

	traceID := trace.TraceID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10}
	spanID := trace.SpanID{0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10, 0x11}

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	})
	ctx := trace.ContextWithSpanContext(ctxlog.WithScope(context.Background()), sc)

	logger.Infof(ctx, "traced message")

	records := rec.Records()
	require.Len(t, records, 1)
	assert.Equal(t, traceID.String(), records[0].Attrs["trace_id"])
	assert.Equal(t, spanID.String(), records[0].Attrs["span_id"])
}

func TestTraceCorrelationWithoutSpan(t *testing.T) {
	rec := ctxlogtest.NewRecorder()
	logger := ctxlog.New("untraced", ctxlog.WithHandler(rec), ctxlog.WithTraceCorrelation())

	logger.Infof(ctxlog.WithScope(context.Background()), "plain")

	records := rec.Records()
	require.Len(t, records, 1)
	assert.NotContains(t, records[0].Attrs, "trace_id")
	assert.NotContains(t, records[0].Attrs, "span_id")
}
