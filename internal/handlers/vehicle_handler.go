package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/otoarena/backend/internal/apperrors"
	"github.com/otoarena/backend/internal/config"
	"github.com/otoarena/backend/internal/dto"
	"github.com/otoarena/backend/internal/middleware"
	"github.com/otoarena/backend/internal/services"
)

type VehicleHandler struct {
	responder
	vehicles *services.VehicleService
}

func NewVehicleHandler(vehicles *services.VehicleService, cfg *config.Config) *VehicleHandler {
	return &VehicleHandler{responder: responder{cfg: cfg}, vehicles: vehicles}
}

func (h *VehicleHandler) List(c *fiber.Ctx) error {
	vehicles, pagination, err := h.vehicles.List(listingParams(c))
	if err != nil {
		return h.fail(c, err)
	}
	return h.list(c, vehicles, pagination)
}

func (h *VehicleHandler) Get(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	vehicle, err := h.vehicles.Get(id)
	if err != nil {
		return h.fail(c, err)
	}
	return h.success(c, vehicle)
}

func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("authentication required"))
	}

	var req dto.CreateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	vehicle, err := h.vehicles.Create(identity.ID, &req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.created(c, vehicle)
}

func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("authentication required"))
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	var req dto.UpdateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	vehicle, err := h.vehicles.Update(id, identity.ID, &req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.success(c, vehicle)
}

func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("authentication required"))
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.vehicles.Delete(id, identity.ID); err != nil {
		return h.fail(c, err)
	}
	return h.message(c, "vehicle listing removed")
}
