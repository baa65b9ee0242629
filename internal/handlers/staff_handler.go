package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/otoarena/backend/internal/apperrors"
	"github.com/otoarena/backend/internal/config"
	"github.com/otoarena/backend/internal/dto"
	"github.com/otoarena/backend/internal/middleware"
	"github.com/otoarena/backend/internal/search"
	"github.com/otoarena/backend/internal/services"
)

type StaffHandler struct {
	responder
	staff *services.StaffService
}

func NewStaffHandler(staff *services.StaffService, cfg *config.Config) *StaffHandler {
	return &StaffHandler{responder: responder{cfg: cfg}, staff: staff}
}

func (h *StaffHandler) Login(c *fiber.Ctx) error {
	var req dto.StaffLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	resp, err := h.staff.Login(&req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.success(c, resp)
}

// CreateTicket serves both anonymous and authenticated users; the optional
// identity is attached to the ticket when present.
func (h *StaffHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	var userID *uuid.UUID
	if identity := middleware.CurrentIdentity(c); !identity.Anonymous {
		userID = &identity.ID
	}

	ticket, err := h.staff.CreateTicket(userID, &req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.created(c, ticket)
}

// ReportListing is the user-facing moderation entry point.
func (h *StaffHandler) ReportListing(c *fiber.Ctx) error {
	var req dto.ReportListingRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	var reporterID *uuid.UUID
	if identity := middleware.CurrentIdentity(c); !identity.Anonymous {
		reporterID = &identity.ID
	}

	item, err := h.staff.ReportListing(reporterID, &req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.created(c, item)
}

func (h *StaffHandler) ListTickets(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", search.DefaultLimit)

	tickets, total, err := h.staff.ListTickets(c.Query("status"), page, limit)
	if err != nil {
		return h.fail(c, err)
	}

	page, limit = search.NormalizePage(page, limit)
	return h.list(c, tickets, dto.Pagination{
		Page: page, Limit: limit, Total: total,
		TotalPages: search.TotalPages(total, limit),
	})
}

func (h *StaffHandler) UpdateTicket(c *fiber.Ctx) error {
	staff, err := middleware.CurrentStaff(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("staff authentication required"))
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	ticket, err := h.staff.UpdateTicket(staff.ID, id, &req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.success(c, ticket)
}

func (h *StaffHandler) ListModerationQueue(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", search.DefaultLimit)

	items, total, err := h.staff.ListModerationQueue(page, limit)
	if err != nil {
		return h.fail(c, err)
	}

	page, limit = search.NormalizePage(page, limit)
	return h.list(c, items, dto.Pagination{
		Page: page, Limit: limit, Total: total,
		TotalPages: search.TotalPages(total, limit),
	})
}

func (h *StaffHandler) ReviewModerationItem(c *fiber.Ctx) error {
	staff, err := middleware.CurrentStaff(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("staff authentication required"))
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	item, err := h.staff.ReviewModerationItem(staff.ID, id, &req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.success(c, item)
}

func (h *StaffHandler) ListBusinessApplications(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", search.DefaultLimit)

	applications, total, err := h.staff.ListBusinessApplications(c.Query("status"), page, limit)
	if err != nil {
		return h.fail(c, err)
	}

	page, limit = search.NormalizePage(page, limit)
	return h.list(c, applications, dto.Pagination{
		Page: page, Limit: limit, Total: total,
		TotalPages: search.TotalPages(total, limit),
	})
}

func (h *StaffHandler) ReviewBusinessApplication(c *fiber.Ctx) error {
	staff, err := middleware.CurrentStaff(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("staff authentication required"))
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	application, err := h.staff.ReviewBusinessApplication(staff.ID, id, &req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.success(c, application)
}

func (h *StaffHandler) ListStaff(c *fiber.Ctx) error {
	staff, err := h.staff.ListStaff()
	if err != nil {
		return h.fail(c, err)
	}
	return h.success(c, staff)
}

func (h *StaffHandler) CreateStaff(c *fiber.Ctx) error {
	actor, err := middleware.CurrentStaff(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("staff authentication required"))
	}

	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	staff, err := h.staff.CreateStaff(actor.ID, &req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.created(c, staff)
}

func (h *StaffHandler) DeactivateStaff(c *fiber.Ctx) error {
	actor, err := middleware.CurrentStaff(c)
	if err != nil {
		return h.fail(c, apperrors.Unauthorized("staff authentication required"))
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.staff.DeactivateStaff(actor.ID, id); err != nil {
		return h.fail(c, err)
	}
	return h.message(c, "staff user deactivated")
}
