// Package ctxlog provides a logging facade that enriches every record with
// named values scoped to the current logical task (an HTTP request, a
// consumed message, a spawned job), without threading those values through
// every function call.
//
// Variables are declared once per logger, optionally paired with a producer
// that generates a value on demand. Values are bound inside a scope carried
// by a context.Context: nested calls sharing the context observe the
// bindings, concurrently running sibling tasks never do. Child tasks inherit
// a snapshot of the parent's bindings at spawn time via Branch or Go.
package ctxlog

// Producer generates a value for a declared variable when no explicit value
// is supplied. Errors returned by a producer are surfaced verbatim to the
// caller of Produce.
type Producer func() (any, error)

// Binding is a name/value pair currently bound in one task's scope.
type Binding struct {
	Name  string
	Value any
}
