package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTracingTest() *fiber.App {
	app := fiber.New()
	app.Use(Tracing())
	app.Use(RouteLogger())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString(GetTraceID(c))
	})
	return app
}

func TestTracingMintsTraceID(t *testing.T) {
	app := setupTracingTest()
	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-Id"))
}

func TestTracingHonorsIncomingTraceID(t *testing.T) {
	app := setupTracingTest()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Trace-Id", "frontend-trace-42")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "frontend-trace-42", resp.Header.Get("X-Trace-Id"))
}

func TestTracingRejectsOversizedTraceID(t *testing.T) {
	app := setupTracingTest()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Trace-Id", strings.Repeat("x", 200))
	resp, err := app.Test(req)
	require.NoError(t, err)
	echoed := resp.Header.Get("X-Trace-Id")
	assert.NotEmpty(t, echoed)
	assert.NotContains(t, echoed, "xxx")
}
