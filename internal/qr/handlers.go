package qr

import (
	"image/color"
	"strconv"
	"strings"

	"invites-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/skip2/go-qrcode"
)

const (
	minSize     = 128
	maxSize     = 1024
	defaultSize = 256
)

// Handlers renders QR PNGs for invite links.
type Handlers struct {
	// BaseURL resolves relative invite paths like /invites/maria-santos.
	BaseURL string
}

// GET /api/v1/qr?url=/invites/{id}&size=256
func (h *Handlers) Image(c *fiber.Ctx) error {
	data := c.Query("url")
	if data == "" {
		return response.Error(c, "Missing url", 400)
	}
	if !strings.HasPrefix(data, "http") {
		data = h.BaseURL + data
	}

	size := defaultSize
	if raw := c.Query("size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			size = n
		}
	}
	if size < minSize {
		size = minSize
	}
	if size > maxSize {
		size = maxSize
	}

	code, err := qrcode.New(data, qrcode.Medium)
	if err != nil {
		return response.Error(c, "Error generating QR code", 500)
	}
	code.ForegroundColor = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	code.BackgroundColor = color.White
	png, err := code.PNG(size)
	if err != nil {
		return response.Error(c, "Error generating QR code", 500)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "public, max-age=31536000, immutable")
	return c.Send(png)
}
