package ctxlog

import (
	"context"
	"sync"
)

// scopeKey is unexported so only this package can attach scopes to a context.
type scopeKey struct{}

// scope is the mutable binding store of one logical task. A scope is shared
// by everything the task calls with the same context, which is what makes a
// binding set deep inside a request handler visible to sibling frames of the
// same task. Isolation between tasks is structural: each task roots its own
// scope via WithScope or receives a copy via Branch.
type scope struct {
	mu       sync.Mutex
	bindings map[string]any
}

func newScope() *scope {
	return &scope{bindings: make(map[string]any)}
}

func (s *scope) set(name string, value any) {
	s.mu.Lock()
	s.bindings[name] = value
	s.mu.Unlock()
}

func (s *scope) get(name string) (any, bool) {
	s.mu.Lock()
	v, ok := s.bindings[name]
	s.mu.Unlock()
	return v, ok
}

func (s *scope) snapshot() map[string]any {
	s.mu.Lock()
	copied := make(map[string]any, len(s.bindings))
	for k, v := range s.bindings {
		copied[k] = v
	}
	s.mu.Unlock()
	return copied
}

func scopeFrom(ctx context.Context) (*scope, bool) {
	s, ok := ctx.Value(scopeKey{}).(*scope)
	return s, ok
}

// WithScope roots a fresh, empty binding scope on the context. Call it once
// at the entry point of a logical task (request handler, consumed message,
// job). Bindings set through the returned context are visible to everything
// the task calls, and to nothing else.
func WithScope(ctx context.Context) context.Context {
	return context.WithValue(ctx, scopeKey{}, newScope())
}

// Branch derives a context for a child task. The child starts with a copy of
// the parent's bindings at the moment Branch is called; later writes on
// either side are independent. A context without a scope branches into a
// fresh empty scope.
func Branch(ctx context.Context) context.Context {
	child := newScope()
	if parent, ok := scopeFrom(ctx); ok {
		child.bindings = parent.snapshot()
	}
	return context.WithValue(ctx, scopeKey{}, child)
}

// Go spawns fn as a goroutine on a branched scope, so the child task
// inherits the caller's bindings without sharing mutable state with it.
func Go(ctx context.Context, fn func(ctx context.Context)) {
	branched := Branch(ctx)
	go fn(branched)
}
