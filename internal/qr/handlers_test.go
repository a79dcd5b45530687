package qr

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupQRTest() *fiber.App {
	h := &Handlers{BaseURL: "http://localhost:8080"}
	app := fiber.New()
	app.Get("/qr", h.Image)
	return app
}

func TestQRMissingURL(t *testing.T) {
	app := setupQRTest()
	resp, err := app.Test(httptest.NewRequest("GET", "/qr", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestQRRendersPNG(t *testing.T) {
	app := setupQRTest()
	resp, err := app.Test(httptest.NewRequest("GET", "/qr?url=/invites/maria-santos", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Cache-Control"), "immutable")
}

func TestQRClampSize(t *testing.T) {
	app := setupQRTest()
	// out-of-range sizes are clamped, not rejected
	resp, err := app.Test(httptest.NewRequest("GET", "/qr?url=/invites/x&size=999999", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
