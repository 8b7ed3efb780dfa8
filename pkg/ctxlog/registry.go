package ctxlog

import "sync"

// Registry owns loggers by name with get-or-create semantics, matching the
// conventional logger-registry lifecycle. Applications normally hold one
// Registry at the composition root; the package-level Get uses a shared
// default for the common case.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger
}

// NewRegistry creates an empty logger registry.
func NewRegistry() *Registry {
	return &Registry{loggers: make(map[string]*Logger)}
}

// Logger returns the logger registered under name, creating it with the
// given options on first request. Options passed on later requests for the
// same name are ignored; the first creation wins.
func (r *Registry) Logger(name string, opts ...Option) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.loggers[name]; ok {
		return l
	}
	l := newLogger(name, opts...)
	r.loggers[name] = l
	return l
}

// FromConfig validates cfg and returns the logger registered under cfg.Name.
func (r *Registry) FromConfig(cfg Config) (*Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return r.Logger(cfg.Name, cfg.options()...), nil
}

var std = NewRegistry()

// Get returns a logger from the package default registry.
func Get(name string, opts ...Option) *Logger {
	return std.Logger(name, opts...)
}
