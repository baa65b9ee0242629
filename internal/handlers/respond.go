// Package handlers holds the HTTP layer: request decoding, identity
// extraction and the response envelope. All domain decisions live in the
// services package.
package handlers

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/otoarena/backend/internal/apperrors"
	"github.com/otoarena/backend/internal/config"
	"github.com/otoarena/backend/internal/dto"
	"github.com/otoarena/backend/internal/search"
)

// responder is embedded in every handler and turns service results into the
// response envelope.
type responder struct {
	cfg *config.Config
}

// fail maps an error to its HTTP status. Internal errors are logged here;
// in production their detail is replaced with a generic message.
func (r responder) fail(c *fiber.Ctx, err error) error {
	status := apperrors.StatusCode(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		slog.Error("request failed", "action", "http_error",
			"method", c.Method(), "path", c.Path(), "error", err)
		if r.cfg.IsProduction() {
			message = "internal server error"
		}
	}
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Message: message})
}

func (r responder) success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(dto.DataResponse{Success: true, Data: data})
}

func (r responder) created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Success: true, Data: data})
}

func (r responder) list(c *fiber.Ctx, data interface{}, pagination dto.Pagination) error {
	return c.JSON(dto.ListResponse{Success: true, Data: data, Pagination: pagination})
}

func (r responder) message(c *fiber.Ctx, msg string) error {
	return c.JSON(dto.MessageResponse{Success: true, Message: msg})
}

func (r responder) badRequest(c *fiber.Ctx, msg string) error {
	return r.fail(c, apperrors.Validation(msg))
}

// listingParams collects the shared catalog query parameters; entity-specific
// filters are read through Get by the search schema.
func listingParams(c *fiber.Ctx) search.Params {
	return search.Params{
		Search: strings.TrimSpace(c.Query("search")),
		Sort:   c.Query("sort"),
		Order:  c.Query("order"),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", search.DefaultLimit),
		Get:    func(name string) string { return c.Query(name) },
	}
}

// paramUUID parses a UUID path parameter.
func paramUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperrors.Validation("invalid " + name)
	}
	return id, nil
}
