package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/otoarena/backend/internal/apperrors"
	"github.com/otoarena/backend/internal/config"
	"github.com/otoarena/backend/internal/dto"
	"github.com/otoarena/backend/internal/middleware"
	"github.com/otoarena/backend/internal/services"
)

type UserHandler struct {
	responder
	users *services.UserService
}

func NewUserHandler(users *services.UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{responder: responder{cfg: cfg}, users: users}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("authentication required"))
	}

	user, err := h.users.GetProfile(identity.ID)
	if err != nil {
		return h.fail(c, err)
	}
	return h.success(c, user)
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("authentication required"))
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	user, err := h.users.UpdateProfile(identity.ID, &req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.success(c, user)
}

func (h *UserHandler) DeactivateAccount(c *fiber.Ctx) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("authentication required"))
	}

	var req dto.DeactivateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	if err := h.users.DeactivateAccount(identity.ID, &req); err != nil {
		return h.fail(c, err)
	}
	return h.message(c, "account deactivated")
}

func (h *UserHandler) ConvertToBusiness(c *fiber.Ctx) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("authentication required"))
	}

	var req dto.ConvertToBusinessRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	profile, err := h.users.ConvertToBusiness(identity.ID, &req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.created(c, profile)
}

func (h *UserHandler) SubmitBusinessApplication(c *fiber.Ctx) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("authentication required"))
	}

	var req dto.BusinessApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	application, err := h.users.SubmitBusinessApplication(identity.ID, &req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.created(c, application)
}
