package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/otoarena/backend/internal/apperrors"
	"github.com/otoarena/backend/internal/config"
	"github.com/otoarena/backend/internal/dto"
	"github.com/otoarena/backend/internal/middleware"
	"github.com/otoarena/backend/internal/services"
)

type PartHandler struct {
	responder
	parts *services.PartService
}

func NewPartHandler(parts *services.PartService, cfg *config.Config) *PartHandler {
	return &PartHandler{responder: responder{cfg: cfg}, parts: parts}
}

func (h *PartHandler) List(c *fiber.Ctx) error {
	parts, pagination, err := h.parts.List(listingParams(c))
	if err != nil {
		return h.fail(c, err)
	}
	return h.list(c, parts, pagination)
}

func (h *PartHandler) Get(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	part, err := h.parts.Get(id)
	if err != nil {
		return h.fail(c, err)
	}
	return h.success(c, part)
}

func (h *PartHandler) Create(c *fiber.Ctx) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("authentication required"))
	}

	var req dto.CreatePartRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	part, err := h.parts.Create(identity.ID, &req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.created(c, part)
}

func (h *PartHandler) Update(c *fiber.Ctx) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("authentication required"))
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	var req dto.UpdatePartRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	part, err := h.parts.Update(id, identity.ID, &req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.success(c, part)
}

func (h *PartHandler) Delete(c *fiber.Ctx) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("authentication required"))
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.parts.Delete(id, identity.ID); err != nil {
		return h.fail(c, err)
	}
	return h.message(c, "part listing removed")
}
