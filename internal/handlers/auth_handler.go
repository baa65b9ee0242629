package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/otoarena/backend/internal/config"
	"github.com/otoarena/backend/internal/dto"
	"github.com/otoarena/backend/internal/services"
)

type AuthHandler struct {
	responder
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{responder: responder{cfg: cfg}, auth: auth}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	resp, err := h.auth.Register(&req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.created(c, resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return h.badRequest(c, "missing required fields: email, password")
	}

	resp, err := h.auth.Login(&req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.success(c, resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}
	if req.RefreshToken == "" {
		return h.badRequest(c, "missing required fields: refresh_token")
	}

	resp, err := h.auth.Refresh(&req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.success(c, resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}
	if req.RefreshToken == "" {
		return h.badRequest(c, "missing required fields: refresh_token")
	}

	if err := h.auth.Logout(&req); err != nil {
		return h.fail(c, err)
	}
	return h.message(c, "logged out")
}
