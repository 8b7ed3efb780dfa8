package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jailtonjunior94/ctxlog/pkg/ctxlog"
)

// FiberRequestScope is the fiber counterpart of RequestScope: it roots a
// binding scope on the request's user context and binds request_id from the
// X-Request-ID header, the declared producer, or a random UUID. The ID is
// also stored under the "requestID" local and echoed on the response.
func FiberRequestScope(logger *ctxlog.Logger) fiber.Handler {
	if !logger.Declared(RequestIDVar) {
		panic(fmt.Sprintf("ctxlog middleware: logger %q does not declare %q", logger.Name(), RequestIDVar))
	}

	return func(c *fiber.Ctx) error {
		ctx := ctxlog.WithScope(c.UserContext())

		requestID := strings.TrimSpace(c.Get(RequestIDHeader))
		if requestID == "" {
			produced, err := logger.Produce(ctx, RequestIDVar)
			switch {
			case err == nil:
				requestID = fmt.Sprintf("%v", produced)
			case errors.Is(err, ctxlog.ErrNoProducer):
				requestID = uuid.New().String()
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
			}
		}

		if err := logger.Set(ctx, RequestIDVar, requestID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
		}

		c.Locals("requestID", requestID)
		c.Set(RequestIDHeader, requestID)
		c.SetUserContext(ctx)
		return c.Next()
	}
}
