// Package ctxlogtest provides a recording slog.Handler for asserting on
// emitted records in tests.
package ctxlogtest

import (
	"context"
	"log/slog"
	"sync"
)

// Record is one captured emission.
type Record struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// Recorder is a slog.Handler that captures every record handed to it.
// It is safe for concurrent use, so concurrently running tasks can share
// one Recorder in a test.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Enabled always reports true; level filtering is the logger's job and is
// exactly what tests want to observe.
func (r *Recorder) Enabled(context.Context, slog.Level) bool { return true }

// Handle captures the record.
func (r *Recorder) Handle(_ context.Context, rec slog.Record) error {
	captured := Record{
		Level:   rec.Level,
		Message: rec.Message,
		Attrs:   make(map[string]string),
	}
	rec.Attrs(func(a slog.Attr) bool {
		captured.Attrs[a.Key] = a.Value.String()
		return true
	})

	r.mu.Lock()
	r.records = append(r.records, captured)
	r.mu.Unlock()
	return nil
}

// WithAttrs returns the receiver unchanged; the Recorder keeps attrs on the
// captured records only.
func (r *Recorder) WithAttrs([]slog.Attr) slog.Handler { return r }

// WithGroup returns the receiver unchanged.
func (r *Recorder) WithGroup(string) slog.Handler { return r }

// Records returns a copy of everything captured so far.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Messages returns just the captured messages, in emission order.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.Message
	}
	return out
}

// Len returns the number of captured records.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Reset discards all captured records.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.records = nil
	r.mu.Unlock()
}
