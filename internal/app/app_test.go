package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"invites-backend/internal/config"
	"invites-backend/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAppTest(t *testing.T) *fiber.App {
	t.Helper()
	mr := miniredis.RunT(t)
	cfg := &config.Config{
		Env:               "test",
		Port:              "8080",
		RedisURL:          "redis://" + mr.Addr(),
		AdminPassword:     "hunter2",
		GuestSheetName:    "Sheet1",
		SettingsSheetName: "Settings",
		InviteBaseURL:     "http://localhost:8080",
	}
	app, _, err := CreateApp(cfg)
	require.NoError(t, err)
	return app
}

func adminCookie(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"password": "hunter2"})
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestHealthEndpoint(t *testing.T) {
	app := setupAppTest(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/health/json", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Data struct {
			Dependencies map[string]struct {
				Status string `json:"status"`
			} `json:"dependencies"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "connected", body.Data.Dependencies["redis"].Status)
	assert.Equal(t, "unconfigured", body.Data.Dependencies["sheets"].Status)
}

func TestHealthResetRequiresAdmin(t *testing.T) {
	app := setupAppTest(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/health/reset", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	cookie := adminCookie(t, app)
	req := httptest.NewRequest("GET", "/health/reset", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestGuestListRequiresAdmin(t *testing.T) {
	app := setupAppTest(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/guests", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestSettingsUpdateRequiresAdmin(t *testing.T) {
	app := setupAppTest(t)
	payload, _ := json.Marshal(map[string]string{"giftNote": "X"})
	req := httptest.NewRequest("PUT", "/api/v1/settings", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestUnconfiguredSheetsSurfacesAsServerError(t *testing.T) {
	app := setupAppTest(t)
	cookie := adminCookie(t, app)

	req := httptest.NewRequest("GET", "/api/v1/guests", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	// no Sheets credentials in test config
	assert.Equal(t, 500, resp.StatusCode)
}

func TestSettingsReadNeverFails(t *testing.T) {
	app := setupAppTest(t)
	// Sheets unconfigured, but settings reads degrade to defaults
	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/settings", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Data struct {
			InvitationTemplate string `json:"invitationTemplate"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "classic", body.Data.InvitationTemplate)
}
