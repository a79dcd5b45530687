package auth

import (
	"context"

	"invites-backend/internal/middleware"
	"invites-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

type Handlers struct {
	Config            middleware.SessionConfig
	Rdb               *redis.Client
	AdminPassword     string
	AdminPasswordHash string
}

// POST /api/v1/auth/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var body struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, ErrPasswordRequired.Error(), 400)
	}

	if err := VerifyPassword(body.Password, h.AdminPasswordHash, h.AdminPassword); err != nil {
		switch err {
		case ErrPasswordRequired:
			return response.Error(c, err.Error(), 400)
		case ErrNotConfigured:
			return response.Error(c, err.Error(), 500)
		default:
			return response.Unauthorized(c, err.Error())
		}
	}

	sid := middleware.RegenerateSessionID(c)
	middleware.SetSessionAdmin(c)
	cookie := middleware.SessionCookieConfig(h.Config)
	cookie.Value = "s:" + sid
	c.Cookie(&cookie)

	return response.Success(c, "Logged in successfully", fiber.Map{"role": "admin"})
}

// GET /api/v1/auth/me
func (h *Handlers) Me(c *fiber.Ctx) error {
	if !middleware.IsAdmin(c) {
		return response.Unauthorized(c, ErrNotAuthenticated.Error())
	}
	return response.Success(c, "Authenticated", fiber.Map{"role": "admin"})
}

// DELETE /api/v1/auth/logout
func (h *Handlers) Logout(c *fiber.Ctx) error {
	if sid := middleware.GetSessionID(c); sid != "" && h.Rdb != nil {
		_ = h.Rdb.Del(context.Background(), middleware.SessionRedisPrefix+sid).Err()
	}
	middleware.DestroySession(c)
	c.Locals("session_id", "")

	cookie := middleware.SessionCookieConfig(h.Config)
	cookie.Value = ""
	cookie.MaxAge = -1
	c.Cookie(&cookie)

	return response.Success(c, "Logged out successfully", nil)
}
