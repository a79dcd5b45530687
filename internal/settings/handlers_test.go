package settings

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSettingsTest(store *fakeStore) *fiber.App {
	h := &Handlers{Service: newService(store)}
	app := fiber.New()
	app.Get("/settings", h.GetSettings)
	app.Put("/settings", h.UpdateSettings)
	return app
}

func TestGetSettingsEndpoint(t *testing.T) {
	app := setupSettingsTest(&fakeStore{exists: false})

	resp, err := app.Test(httptest.NewRequest("GET", "/settings", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Data Settings `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, Defaults, body.Data)
}

func TestUpdateSettingsIgnoresNonStringValues(t *testing.T) {
	store := &fakeStore{exists: true, rows: [][]string{{"key", "value"}}}
	app := setupSettingsTest(store)

	payload, _ := json.Marshal(map[string]interface{}{
		"giftNote":   "X",
		"eventTitle": 7,      // not a string: ignored
		"bogusKey":   "nope", // unknown: ignored
	})
	req := httptest.NewRequest("PUT", "/settings", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	require.Len(t, store.rows, 2)
	assert.Equal(t, []string{"giftNote", "X"}, store.rows[1])

	var body struct {
		Data Settings `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "X", body.Data.GiftNote)
	assert.Equal(t, Defaults.EventTitle, body.Data.EventTitle)
}
