package guests

import (
	"errors"
	"strings"

	"invites-backend/internal/pkg/response"
	"invites-backend/internal/sheets"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// GET /api/v1/guests/:id (public invite lookup)
func (h *Handlers) GetGuest(c *fiber.Ctx) error {
	id := c.Params("id")
	g, err := h.Service.FindByUniqueID(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	if g == nil {
		return response.NotFound(c, "Guest not found")
	}
	return response.Success(c, "Guest fetched successfully", g)
}

// GET /api/v1/guests (admin)
func (h *Handlers) ListGuests(c *fiber.Ctx) error {
	all, err := h.Service.List(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Guests fetched successfully", all)
}

// POST /api/v1/invites/generate (admin)
func (h *Handlers) GenerateInvite(c *fiber.Ctx) error {
	var body struct {
		Name        string `json:"name"`
		IsGodparent bool   `json:"isGodparent"`
	}
	if err := c.BodyParser(&body); err != nil || strings.TrimSpace(body.Name) == "" {
		return response.Error(c, "Name is required", 400)
	}

	g, err := h.Service.Create(c.Context(), body.Name, body.IsGodparent)
	if err != nil {
		return serviceError(c, err)
	}
	return response.SuccessCreated(c, "Invite generated successfully", fiber.Map{
		"guest":     g,
		"inviteUrl": inviteURL(g.UniqueID),
	})
}

// POST /api/v1/invites/bulk (admin)
func (h *Handlers) BulkInvites(c *fiber.Ctx) error {
	var body struct {
		Items []BulkItem `json:"items"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "No items provided", 400)
	}

	// blank names never reach the service
	items := make([]BulkItem, 0, len(body.Items))
	for _, item := range body.Items {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return response.Error(c, "No items provided", 400)
	}

	created, err := h.Service.CreateBulk(c.Context(), items)
	if err != nil {
		return serviceError(c, err)
	}

	links := make([]fiber.Map, 0, len(created))
	for _, g := range created {
		links = append(links, fiber.Map{"name": g.Name, "inviteUrl": inviteURL(g.UniqueID)})
	}
	return response.SuccessCreated(c, "Invites generated successfully", fiber.Map{
		"created": created,
		"links":   links,
	})
}

// POST /api/v1/rsvp (public)
func (h *Handlers) UpdateRSVP(c *fiber.Ctx) error {
	var body struct {
		UniqueID string `json:"uniqueId"`
		Status   string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request", 400)
	}
	status := Status(body.Status)
	if body.UniqueID == "" || (status != StatusConfirmed && status != StatusDeclined) {
		return response.Error(c, "Invalid request", 400)
	}

	if err := h.Service.UpdateRSVP(c.Context(), body.UniqueID, status); err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "RSVP updated successfully", fiber.Map{"status": status})
}

// POST /api/v1/godparent/respond (public)
func (h *Handlers) GodparentRespond(c *fiber.Ctx) error {
	var body struct {
		UniqueID string `json:"uniqueId"`
		Accept   bool   `json:"accept"`
		FullName string `json:"fullName"`
	}
	if err := c.BodyParser(&body); err != nil || body.UniqueID == "" {
		return response.Error(c, "Invalid request", 400)
	}

	var err error
	if body.Accept {
		err = h.Service.AcceptGodparentRole(c.Context(), body.UniqueID, body.FullName)
	} else {
		err = h.Service.DeclineGodparentRole(c.Context(), body.UniqueID)
	}
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Godparent response recorded", fiber.Map{"accepted": body.Accept})
}

func inviteURL(id string) string {
	return "/invites/" + id
}

// serviceError maps store-layer failures onto the standard error envelope:
// identifier misses on mutating calls are the caller's fault, everything else
// is a server fault.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrGuestNotFound), errors.Is(err, ErrInvalidStatus):
		return response.Error(c, err.Error(), 400)
	case errors.Is(err, sheets.ErrNotConfigured):
		return response.Error(c, err.Error(), 500)
	default:
		return response.Error(c, err.Error(), 500)
	}
}
