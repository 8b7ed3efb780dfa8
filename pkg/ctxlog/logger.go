package ctxlog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Severity levels accepted by the logger. Critical sits above slog's error
// level so standard handlers order it correctly.
const (
	LevelDebug    = slog.LevelDebug
	LevelInfo     = slog.LevelInfo
	LevelWarn     = slog.LevelWarn
	LevelError    = slog.LevelError
	LevelCritical = slog.Level(12)
)

// LevelString returns the canonical name of a level, including "CRITICAL"
// which slog itself would render as "ERROR+4".
func LevelString(level slog.Level) string {
	if level >= LevelCritical {
		return "CRITICAL"
	}
	return level.String()
}

// Logger is a context-aware leveled logger. Its fixed configuration (name,
// render mode, handler) is set at creation; the variable part of its state
// lives entirely in the task scopes carried by contexts, so a Logger is safe
// for concurrent use.
//
// Every record is enriched with the bindings of the calling task's scope, in
// declaration order, then delegated to the configured slog.Handler.
type Logger struct {
	name       string
	structured bool
	level      *slog.LevelVar
	handler    slog.Handler
	trace      bool
	observe    func(logger string, level slog.Level)

	mu   sync.RWMutex
	vars *varSet
}

func newLogger(name string, opts ...Option) *Logger {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	l := &Logger{
		name:       name,
		structured: s.structured,
		level:      new(slog.LevelVar),
		trace:      s.trace,
		observe:    s.observe,
		vars:       newVarSet(nil),
	}
	l.level.Set(s.level)

	if s.handler != nil {
		l.handler = s.handler
	} else {
		// The handler shares the LevelVar so SetLevel steers both sides.
		l.handler = slog.NewTextHandler(s.writer, &slog.HandlerOptions{Level: l.level})
	}
	return l
}

// New creates a standalone Logger. Prefer Registry.Logger (or the package
// Get) when the conventional get-or-create-by-name lifecycle is wanted.
func New(name string, opts ...Option) *Logger {
	return newLogger(name, opts...)
}

// Name returns the logger name handed to the emission sink.
func (l *Logger) Name() string { return l.name }

// Structured reports the render mode fixed at creation.
func (l *Logger) Structured() bool { return l.structured }

// SetLevel changes the minimum level of the logger at runtime.
func (l *Logger) SetLevel(level slog.Level) { l.level.Set(level) }

// Enabled reports whether a record at level would be emitted.
func (l *Logger) Enabled(level slog.Level) bool { return level >= l.level.Level() }

// DeclareVars replaces the full set of recognized variables. Declaration
// order is preserved and determines merge/render order. Values already bound
// in live scopes are not cleared; a bound name absent from the new set is
// simply no longer rendered.
func (l *Logger) DeclareVars(vars ...Var) {
	vs := newVarSet(vars)
	l.mu.Lock()
	l.vars = vs
	l.mu.Unlock()
}

// Declared reports whether name is part of the current declared set.
func (l *Logger) Declared(name string) bool {
	l.mu.RLock()
	_, ok := l.vars.lookup(name)
	l.mu.RUnlock()
	return ok
}

// Set binds name to value in the calling task's scope. The binding is
// visible to everything the task calls with the same context and to child
// tasks branched afterwards, never to sibling tasks.
func (l *Logger) Set(ctx context.Context, name string, value any) error {
	l.mu.RLock()
	_, ok := l.vars.lookup(name)
	l.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVar, name)
	}

	sc, ok := scopeFrom(ctx)
	if !ok {
		return fmt.Errorf("%w: set %q", ErrNoScope, name)
	}
	sc.set(name, value)
	return nil
}

// Produce invokes the declared producer for name, binds the result in the
// calling task's scope and returns it. A producer error is returned verbatim
// and leaves any prior binding for name untouched.
func (l *Logger) Produce(ctx context.Context, name string) (any, error) {
	l.mu.RLock()
	v, ok := l.vars.lookup(name)
	l.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVar, name)
	}
	if v.producer == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoProducer, name)
	}

	sc, ok := scopeFrom(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: produce %q", ErrNoScope, name)
	}

	value, err := v.producer()
	if err != nil {
		return nil, err
	}
	sc.set(name, value)
	return value, nil
}

// Value returns the current binding for name in the calling task's scope.
func (l *Logger) Value(ctx context.Context, name string) (any, bool) {
	sc, ok := scopeFrom(ctx)
	if !ok {
		return nil, false
	}
	return sc.get(name)
}

// Bindings returns a snapshot of all currently bound variables in
// declaration order. Declared but unbound names are omitted. A context
// without a scope yields no bindings.
func (l *Logger) Bindings(ctx context.Context) []Binding {
	sc, ok := scopeFrom(ctx)
	if !ok {
		return nil
	}
	snap := sc.snapshot()
	if len(snap) == 0 {
		return nil
	}

	l.mu.RLock()
	order := l.vars.order
	l.mu.RUnlock()

	out := make([]Binding, 0, len(snap))
	for _, name := range order {
		if v, bound := snap[name]; bound {
			out = append(out, Binding{Name: name, Value: v})
		}
	}
	return out
}

// Debugf logs at DEBUG with deferred Sprintf interpolation.
func (l *Logger) Debugf(ctx context.Context, format string, args ...any) {
	l.log(ctx, LevelDebug, format, args)
}

// Infof logs at INFO with deferred Sprintf interpolation.
func (l *Logger) Infof(ctx context.Context, format string, args ...any) {
	l.log(ctx, LevelInfo, format, args)
}

// Warnf logs at WARN with deferred Sprintf interpolation.
func (l *Logger) Warnf(ctx context.Context, format string, args ...any) {
	l.log(ctx, LevelWarn, format, args)
}

// Errorf logs at ERROR with deferred Sprintf interpolation.
func (l *Logger) Errorf(ctx context.Context, format string, args ...any) {
	l.log(ctx, LevelError, format, args)
}

// Criticalf logs at CRITICAL with deferred Sprintf interpolation.
func (l *Logger) Criticalf(ctx context.Context, format string, args ...any) {
	l.log(ctx, LevelCritical, format, args)
}

// Logf logs at an arbitrary level.
func (l *Logger) Logf(ctx context.Context, level slog.Level, format string, args ...any) {
	l.log(ctx, level, format, args)
}

func (l *Logger) log(ctx context.Context, level slog.Level, format string, args []any) {
	// The threshold check comes first and must stay cheap: no scope read,
	// no interpolation for records that will never be emitted.
	if !l.Enabled(level) {
		return
	}

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	bindings := l.Bindings(ctx)

	var rendered string
	if l.structured {
		rendered = renderStructured(bindings, msg)
	} else {
		rendered = renderFlat(bindings, msg)
	}

	rec := slog.NewRecord(time.Now(), level, rendered, 0)
	rec.AddAttrs(slog.String("logger", l.name))
	if l.trace {
		rec.AddAttrs(traceAttrs(ctx)...)
	}
	_ = l.handler.Handle(ctx, rec)

	if l.observe != nil {
		l.observe(l.name, level)
	}
}
