package ctxlogtest_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jailtonjunior94/ctxlog/pkg/ctxlog/ctxlogtest"
)

func TestRecorderCapturesRecords(t *testing.T) {
	rec := ctxlogtest.NewRecorder()

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)
	r.AddAttrs(slog.String("logger", "app"))
	require.NoError(t, rec.Handle(context.Background(), r))

	require.Equal(t, 1, rec.Len())
	captured := rec.Records()[0]
	assert.Equal(t, slog.LevelInfo, captured.Level)
	assert.Equal(t, "hello", captured.Message)
	assert.Equal(t, "app", captured.Attrs["logger"])
	assert.Equal(t, []string{"hello"}, rec.Messages())

	rec.Reset()
	assert.Zero(t, rec.Len())
}

func TestRecorderAlwaysEnabled(t *testing.T) {
	rec := ctxlogtest.NewRecorder()
	assert.True(t, rec.Enabled(context.Background(), slog.LevelDebug))
}
