package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jailtonjunior94/ctxlog/pkg/ctxlog"
	"github.com/jailtonjunior94/ctxlog/pkg/middleware"
)

func TestFiberRequestScope(t *testing.T) {
	logger, rec := newTestLogger("fiber-header",
		ctxlog.NewProducerVar(middleware.RequestIDVar, ctxlog.UUIDProducer()))

	app := fiber.New()
	app.Use(middleware.FiberRequestScope(logger))
	app.Get("/", func(c *fiber.Ctx) error {
		logger.Infof(c.UserContext(), "handled")
		assert.Equal(t, c.Locals("requestID"), c.GetRespHeader(middleware.RequestIDHeader))
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "fiber-id")

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "fiber-id", res.Header.Get(middleware.RequestIDHeader))

	msgs := rec.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "{request_id: fiber-id} handled", msgs[0])
}

func TestFiberRequestScopeGeneratesID(t *testing.T) {
	logger, rec := newTestLogger("fiber-produced",
		ctxlog.NewProducerVar(middleware.RequestIDVar, ctxlog.ULIDProducer()))

	app := fiber.New()
	app.Use(middleware.FiberRequestScope(logger))
	app.Get("/", func(c *fiber.Ctx) error {
		logger.Infof(c.UserContext(), "handled")
		return c.SendStatus(fiber.StatusOK)
	})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer res.Body.Close()

	id := res.Header.Get(middleware.RequestIDHeader)
	assert.Len(t, id, 26, "ULID string form is 26 characters")

	require.Equal(t, 1, rec.Len())
	assert.Equal(t, "{request_id: "+id+"} handled", rec.Messages()[0])
}

func TestFiberRequestScopePanicsWithoutDeclaration(t *testing.T) {
	logger, _ := newTestLogger("fiber-undeclared")

	assert.Panics(t, func() {
		middleware.FiberRequestScope(logger)
	})
}
