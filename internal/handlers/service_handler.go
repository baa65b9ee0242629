package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/otoarena/backend/internal/apperrors"
	"github.com/otoarena/backend/internal/config"
	"github.com/otoarena/backend/internal/dto"
	"github.com/otoarena/backend/internal/middleware"
	"github.com/otoarena/backend/internal/services"
)

type ServiceHandler struct {
	responder
	listings *services.ServiceListingService
}

func NewServiceHandler(listings *services.ServiceListingService, cfg *config.Config) *ServiceHandler {
	return &ServiceHandler{responder: responder{cfg: cfg}, listings: listings}
}

func (h *ServiceHandler) List(c *fiber.Ctx) error {
	listings, pagination, err := h.listings.List(listingParams(c))
	if err != nil {
		return h.fail(c, err)
	}
	return h.list(c, listings, pagination)
}

func (h *ServiceHandler) Get(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	listing, err := h.listings.Get(id)
	if err != nil {
		return h.fail(c, err)
	}
	return h.success(c, listing)
}

func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("authentication required"))
	}

	var req dto.CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	listing, err := h.listings.Create(identity.ID, &req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.created(c, listing)
}

func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("authentication required"))
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	var req dto.UpdateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	listing, err := h.listings.Update(id, identity.ID, &req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.success(c, listing)
}

func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("authentication required"))
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.listings.Delete(id, identity.ID); err != nil {
		return h.fail(c, err)
	}
	return h.message(c, "service listing removed")
}
