package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"invites-backend/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthTest(t *testing.T) *fiber.App {
	t.Helper()
	mr := miniredis.RunT(t)
	cfg := middleware.SessionConfig{RedisURL: "redis://" + mr.Addr()}
	sessionHandler, rdb, err := middleware.Session(cfg)
	require.NoError(t, err)

	h := &Handlers{Config: cfg, Rdb: rdb, AdminPassword: "hunter2"}
	app := fiber.New()
	app.Use(sessionHandler)
	app.Post("/login", h.Login)
	app.Get("/me", h.Me)
	app.Delete("/logout", h.Logout)
	app.Get("/admin-only", middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func login(t *testing.T, app *fiber.App, password string) *http.Response {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"password": password})
	req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupAuthTest(t)
	resp := login(t, app, "wrong")
	assert.Equal(t, 401, resp.StatusCode)
}

func TestLoginMissingPassword(t *testing.T) {
	app := setupAuthTest(t)
	resp := login(t, app, "")
	assert.Equal(t, 400, resp.StatusCode)
}

func TestLoginSetsSessionCookie(t *testing.T) {
	app := setupAuthTest(t)
	resp := login(t, app, "hunter2")
	assert.Equal(t, 200, resp.StatusCode)

	var sid *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			sid = cookie
		}
	}
	require.NotNil(t, sid)
	assert.True(t, sid.HttpOnly)

	// session cookie unlocks the admin surface
	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.AddCookie(sid)
	authed, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, authed.StatusCode)

	req = httptest.NewRequest("GET", "/me", nil)
	req.AddCookie(sid)
	me, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, me.StatusCode)
}

func TestAdminSurfaceRequiresSession(t *testing.T) {
	app := setupAuthTest(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/admin-only", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestLogoutDestroysSession(t *testing.T) {
	app := setupAuthTest(t)
	resp := login(t, app, "hunter2")
	var sid *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			sid = cookie
		}
	}
	require.NotNil(t, sid)

	req := httptest.NewRequest("DELETE", "/logout", nil)
	req.AddCookie(sid)
	out, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, out.StatusCode)

	req = httptest.NewRequest("GET", "/admin-only", nil)
	req.AddCookie(sid)
	after, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, after.StatusCode)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, VerifyPassword("hunter2", string(hash), ""))
	assert.ErrorIs(t, VerifyPassword("wrong", string(hash), ""), ErrIncorrectPassword)
	// hash takes precedence over a plaintext fallback
	assert.ErrorIs(t, VerifyPassword("plain", string(hash), "plain"), ErrIncorrectPassword)
	assert.NoError(t, VerifyPassword("plain", "", "plain"))
	assert.ErrorIs(t, VerifyPassword("", string(hash), ""), ErrPasswordRequired)
	assert.ErrorIs(t, VerifyPassword("anything", "", ""), ErrNotConfigured)
}
