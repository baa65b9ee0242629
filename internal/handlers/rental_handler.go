package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/otoarena/backend/internal/apperrors"
	"github.com/otoarena/backend/internal/config"
	"github.com/otoarena/backend/internal/dto"
	"github.com/otoarena/backend/internal/middleware"
	"github.com/otoarena/backend/internal/services"
)

type RentalHandler struct {
	responder
	rentals *services.RentalService
}

func NewRentalHandler(rentals *services.RentalService, cfg *config.Config) *RentalHandler {
	return &RentalHandler{responder: responder{cfg: cfg}, rentals: rentals}
}

func (h *RentalHandler) List(c *fiber.Ctx) error {
	rentals, pagination, err := h.rentals.List(listingParams(c))
	if err != nil {
		return h.fail(c, err)
	}
	return h.list(c, rentals, pagination)
}

func (h *RentalHandler) Get(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	rental, err := h.rentals.Get(id)
	if err != nil {
		return h.fail(c, err)
	}
	return h.success(c, rental)
}

func (h *RentalHandler) Create(c *fiber.Ctx) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("authentication required"))
	}

	var req dto.CreateRentalRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	rental, err := h.rentals.Create(identity.ID, &req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.created(c, rental)
}

func (h *RentalHandler) Update(c *fiber.Ctx) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("authentication required"))
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	var req dto.UpdateRentalRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	rental, err := h.rentals.Update(id, identity.ID, &req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.success(c, rental)
}

func (h *RentalHandler) Delete(c *fiber.Ctx) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("authentication required"))
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.rentals.Delete(id, identity.ID); err != nil {
		return h.fail(c, err)
	}
	return h.message(c, "rental listing removed")
}
