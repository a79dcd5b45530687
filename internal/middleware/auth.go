package middleware

import (
	"invites-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const userLocal = "user"

// RequireAdmin gates the admin surface (guest list, invite generation,
// settings edits). Returns 401 with the standard error format otherwise.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsAdmin(c) {
			return response.Unauthorized(c, "Unauthorized")
		}
		return c.Next()
	}
}

// IsAdmin reports whether the session user carries the admin role.
func IsAdmin(c *fiber.Ctx) bool {
	u, ok := c.Locals(userLocal).(map[string]interface{})
	if !ok {
		return false
	}
	role, _ := u["role"].(string)
	return role == "admin"
}
