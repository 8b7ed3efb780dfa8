// Package middleware integrates ctxlog scopes with common entry points:
// net/http handlers (chi-compatible), fiber handlers and kafka-go message
// handlers. Each adapter opens or branches a scope at the boundary of one
// logical task.
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jailtonjunior94/ctxlog/pkg/ctxlog"
)

const (
	// RequestIDHeader is the header request IDs are read from and echoed to.
	RequestIDHeader = "X-Request-ID"

	// RequestIDVar is the context variable the request ID is bound to.
	RequestIDVar = "request_id"
)

// Scope opens a fresh binding scope for every request. Use it alone when no
// request ID binding is wanted.
func Scope() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxlog.WithScope(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestScope opens a fresh binding scope per request and binds the
// request_id variable: from the X-Request-ID header when present, from the
// variable's declared producer otherwise, falling back to a random UUID when
// the variable has no producer. The ID is echoed on the response.
//
// The logger must declare request_id; a missing declaration is a setup bug
// and panics during construction (fail-fast).
func RequestScope(logger *ctxlog.Logger) func(http.Handler) http.Handler {
	if !logger.Declared(RequestIDVar) {
		panic(fmt.Sprintf("ctxlog middleware: logger %q does not declare %q", logger.Name(), RequestIDVar))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxlog.WithScope(r.Context())

			requestID := strings.TrimSpace(r.Header.Get(RequestIDHeader))
			if requestID == "" {
				produced, err := logger.Produce(ctx, RequestIDVar)
				switch {
				case err == nil:
					requestID = fmt.Sprintf("%v", produced)
				case errors.Is(err, ctxlog.ErrNoProducer):
					requestID = uuid.New().String()
				default:
					http.Error(w, "Internal server error", http.StatusInternalServerError)
					return
				}
			}

			if err := logger.Set(ctx, RequestIDVar, requestID); err != nil {
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}

			w.Header().Set(RequestIDHeader, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
