package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/otoarena/backend/internal/apperrors"
	"github.com/otoarena/backend/internal/config"
	"github.com/otoarena/backend/internal/dto"
	"github.com/otoarena/backend/internal/middleware"
	"github.com/otoarena/backend/internal/services"
)

type FavoriteHandler struct {
	responder
	favorites *services.FavoriteService
}

func NewFavoriteHandler(favorites *services.FavoriteService, cfg *config.Config) *FavoriteHandler {
	return &FavoriteHandler{responder: responder{cfg: cfg}, favorites: favorites}
}

func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("authentication required"))
	}

	var req dto.AddFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	favorite, err := h.favorites.Add(identity.ID, &req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.created(c, favorite)
}

func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("authentication required"))
	}
	itemID, err := paramUUID(c, "itemId")
	if err != nil {
		return h.fail(c, err)
	}

	favorite, err := h.favorites.Remove(identity.ID, c.Params("itemType"), itemID)
	if err != nil {
		return h.fail(c, err)
	}
	return h.success(c, favorite)
}

func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("authentication required"))
	}

	resp, err := h.favorites.List(identity.ID)
	if err != nil {
		return h.fail(c, err)
	}
	return h.success(c, resp)
}
