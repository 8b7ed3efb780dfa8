package ctxlog

import "errors"

var (
	// ErrUnknownVar indicates a variable name that was never declared on the logger.
	ErrUnknownVar = errors.New("context variable is not declared")

	// ErrNoProducer indicates a producer-less variable was bound without a value.
	ErrNoProducer = errors.New("context variable has no producer")

	// ErrNoScope indicates the context carries no task scope.
	ErrNoScope = errors.New("context carries no ctxlog scope")

	// ErrInvalidLevel indicates an unrecognized level name in a Config.
	ErrInvalidLevel = errors.New("invalid log level")
)
