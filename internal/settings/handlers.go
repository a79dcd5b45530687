package settings

import (
	"invites-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// GET /api/v1/settings (public; invite pages render from this)
func (h *Handlers) GetSettings(c *fiber.Ctx) error {
	return response.Success(c, "Settings fetched successfully", h.Service.Get(c.Context()))
}

// PUT /api/v1/settings (admin)
func (h *Handlers) UpdateSettings(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400)
	}

	// only known keys with string values count; everything else is ignored
	partial := make(map[string]string, len(body))
	for _, key := range Keys {
		if v, ok := body[key].(string); ok {
			partial[key] = v
		}
	}

	merged, err := h.Service.Update(c.Context(), partial)
	if err != nil {
		return response.Error(c, err.Error(), 500)
	}
	return response.Success(c, "Settings updated successfully", merged)
}
