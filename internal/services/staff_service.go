package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/otoarena/backend/internal/apperrors"
	"github.com/otoarena/backend/internal/auth"
	"github.com/otoarena/backend/internal/config"
	"github.com/otoarena/backend/internal/dto"
	"github.com/otoarena/backend/internal/models"
	"github.com/otoarena/backend/internal/search"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewStaffService(db *gorm.DB, cfg *config.Config) *StaffService {
	return &StaffService{db: db, cfg: cfg}
}

// Login authenticates against the staff table and issues a staff-typed token.
func (s *StaffService) Login(req *dto.StaffLoginRequest) (*dto.StaffAuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.MissingFields("email", "password")
	}

	var staff models.StaffUser
	err := s.db.Where("email = ? AND is_active = true", strings.ToLower(req.Email)).
		First(&staff).Error
	if err != nil {
		return nil, apperrors.Unauthorized("invalid email or password")
	}
	if !auth.CheckPassword(staff.PasswordHash, req.Password) {
		return nil, apperrors.Unauthorized("invalid email or password")
	}

	token, err := auth.NewStaffToken(s.cfg.JWTSecret, &staff, s.cfg.JWTAccessExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign staff token: %w", err)
	}

	now := time.Now()
	if err := s.db.Model(&staff).UpdateColumn("last_login", now).Error; err != nil {
		slog.Error("failed to record staff login time", "action", "staff_login",
			"staff_id", staff.ID.String(), "error", err)
	}

	return &dto.StaffAuthResponse{
		AccessToken: token,
		Staff: dto.StaffUserResponse{
			ID:           staff.ID,
			Email:        staff.Email,
			FirstName:    staff.FirstName,
			LastName:     staff.LastName,
			Role:         staff.Role,
			IsSuperStaff: staff.IsSuperStaff,
		},
	}, nil
}

// CreateTicket is the user-facing entry point; userID is nil for anonymous
// submissions.
func (s *StaffService) CreateTicket(userID *uuid.UUID, req *dto.CreateTicketRequest) (*models.SupportTicket, error) {
	var missing []string
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(req.Subject) == "" {
		missing = append(missing, "subject")
	}
	if strings.TrimSpace(req.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return nil, apperrors.MissingFields(missing...)
	}

	ticket := models.SupportTicket{
		ID:      uuid.New(),
		UserID:  userID,
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
		Status:  models.TicketStatusOpen,
	}
	if err := s.db.Create(&ticket).Error; err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}
	return &ticket, nil
}

func validTicketStatus(status string) bool {
	switch status {
	case models.TicketStatusOpen, models.TicketStatusInProgress,
		models.TicketStatusResolved, models.TicketStatusClosed:
		return true
	}
	return false
}

func (s *StaffService) ListTickets(status string, page, limit int) ([]models.SupportTicket, int64, error) {
	query := s.db.Model(&models.SupportTicket{})
	if status != "" && status != "all" {
		if !validTicketStatus(status) {
			return nil, 0, apperrors.Validation("unknown ticket status: " + status)
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit = search.NormalizePage(page, limit)
	var tickets []models.SupportTicket
	err := query.Order("created_at DESC").
		Limit(limit).Offset(search.Offset(page, limit)).
		Find(&tickets).Error
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

func (s *StaffService) UpdateTicket(staffID, ticketID uuid.UUID, req *dto.UpdateTicketRequest) (*models.SupportTicket, error) {
	if !validTicketStatus(req.Status) {
		return nil, apperrors.Validation("status must be open, in_progress, resolved or closed")
	}

	var ticket models.SupportTicket
	if err := s.db.First(&ticket, "id = ?", ticketID).Error; err != nil {
		return nil, apperrors.NotFound("ticket")
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.AssignedTo != "" {
		assignee, err := uuid.Parse(req.AssignedTo)
		if err != nil {
			return nil, apperrors.Validation("invalid assigned_to")
		}
		updates["assigned_to"] = assignee
	}
	if err := s.db.Model(&ticket).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	s.logActivity(staffID, "ticket_update", "ticket", ticket.ID.String(),
		"status="+req.Status)
	return &ticket, nil
}

// ReportListing is the user-facing entry point for the moderation queue.
func (s *StaffService) ReportListing(reporterID *uuid.UUID, req *dto.ReportListingRequest) (*models.ModerationItem, error) {
	if !models.ValidItemType(req.ItemType) {
		return nil, apperrors.Validation("item_type must be vehicle, part or service")
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return nil, apperrors.Validation("invalid item_id")
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, apperrors.MissingFields("reason")
	}

	item := models.ModerationItem{
		ID:         uuid.New(),
		ItemType:   req.ItemType,
		ItemID:     itemID,
		Reason:     strings.TrimSpace(req.Reason),
		ReportedBy: reporterID,
		Status:     models.ReviewStatusPending,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return &item, nil
}

func (s *StaffService) ListModerationQueue(page, limit int) ([]models.ModerationItem, int64, error) {
	query := s.db.Model(&models.ModerationItem{}).Where("status = ?", models.ReviewStatusPending)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit = search.NormalizePage(page, limit)
	var items []models.ModerationItem
	err := query.Order("created_at ASC").
		Limit(limit).Offset(search.Offset(page, limit)).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ReviewModerationItem approves or rejects a report. Approval deactivates the
// reported listing.
func (s *StaffService) ReviewModerationItem(staffID, itemID uuid.UUID, req *dto.ReviewRequest) (*models.ModerationItem, error) {
	if req.Status != models.ReviewStatusApproved && req.Status != models.ReviewStatusRejected {
		return nil, apperrors.Validation("status must be approved or rejected")
	}

	var item models.ModerationItem
	if err := s.db.First(&item, "id = ?", itemID).Error; err != nil {
		return nil, apperrors.NotFound("moderation item")
	}
	if item.Status != models.ReviewStatusPending {
		return nil, apperrors.Conflict("item has already been reviewed")
	}

	updates := map[string]interface{}{
		"status":      req.Status,
		"reviewed_by": staffID,
		"note":        strings.TrimSpace(req.Note),
	}
	if err := s.db.Model(&item).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to review item: %w", err)
	}

	if req.Status == models.ReviewStatusApproved {
		if err := s.db.Table(listingTable(item.ItemType)).
			Where("id = ?", item.ItemID).
			Update("is_active", false).Error; err != nil {
			return nil, fmt.Errorf("failed to deactivate reported listing: %w", err)
		}
	}

	s.logActivity(staffID, "moderation_review", item.ItemType, item.ItemID.String(),
		"status="+req.Status)
	return &item, nil
}

func (s *StaffService) ListBusinessApplications(status string, page, limit int) ([]models.BusinessApplication, int64, error) {
	query := s.db.Model(&models.BusinessApplication{})
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit = search.NormalizePage(page, limit)
	var applications []models.BusinessApplication
	err := query.Order("created_at ASC").
		Limit(limit).Offset(search.Offset(page, limit)).
		Find(&applications).Error
	if err != nil {
		return nil, 0, err
	}
	return applications, total, nil
}

// ReviewBusinessApplication approves or rejects an application. Approval also
// marks the applicant verified.
func (s *StaffService) ReviewBusinessApplication(staffID, applicationID uuid.UUID, req *dto.ReviewRequest) (*models.BusinessApplication, error) {
	if req.Status != models.ReviewStatusApproved && req.Status != models.ReviewStatusRejected {
		return nil, apperrors.Validation("status must be approved or rejected")
	}

	var application models.BusinessApplication
	if err := s.db.First(&application, "id = ?", applicationID).Error; err != nil {
		return nil, apperrors.NotFound("business application")
	}
	if application.Status != models.ReviewStatusPending {
		return nil, apperrors.Conflict("application has already been reviewed")
	}

	updates := map[string]interface{}{
		"status":      req.Status,
		"reviewed_by": staffID,
		"note":        strings.TrimSpace(req.Note),
	}
	if err := s.db.Model(&application).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to review application: %w", err)
	}

	if req.Status == models.ReviewStatusApproved {
		if err := s.db.Model(&models.User{}).
			Where("id = ?", application.UserID).
			Update("is_verified", true).Error; err != nil {
			return nil, fmt.Errorf("failed to mark user verified: %w", err)
		}
	}

	s.logActivity(staffID, "application_review", "business_application",
		application.ID.String(), "status="+req.Status)
	return &application, nil
}

// ListStaff is super-staff only; enforcement lives in the route middleware.
func (s *StaffService) ListStaff() ([]models.StaffUser, error) {
	var staff []models.StaffUser
	if err := s.db.Order("created_at ASC").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *StaffService) CreateStaff(creatorID uuid.UUID, req *dto.CreateStaffRequest) (*models.StaffUser, error) {
	var missing []string
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, apperrors.MissingFields(missing...)
	}
	if len(req.Password) < 8 {
		return nil, apperrors.Validation("password must be at least 8 characters")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var count int64
	if err := s.db.Model(&models.StaffUser{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.Conflict("staff user with this email already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = "support"
	}
	staff := models.StaffUser{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Role:         role,
		IsSuperStaff: req.IsSuperStaff,
		IsActive:     true,
	}
	if err := s.db.Create(&staff).Error; err != nil {
		return nil, fmt.Errorf("failed to create staff user: %w", err)
	}

	s.logActivity(creatorID, "staff_create", "staff", staff.ID.String(), "role="+role)
	return &staff, nil
}

func (s *StaffService) DeactivateStaff(actorID, staffID uuid.UUID) error {
	if actorID == staffID {
		return apperrors.Validation("cannot deactivate your own account")
	}

	result := s.db.Model(&models.StaffUser{}).
		Where("id = ? AND is_active = true", staffID).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate staff user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("staff user")
	}

	s.logActivity(actorID, "staff_deactivate", "staff", staffID.String(), "")
	return nil
}

// logActivity is fire-and-forget; a failed insert never fails the staff
// action it accompanies.
func (s *StaffService) logActivity(staffID uuid.UUID, action, targetType, targetID, detail string) {
	entry := models.StaffActivityLog{
		ID:         uuid.New(),
		StaffID:    staffID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Detail:     detail,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		slog.Error("failed to write staff activity log", "action", action,
			"staff_id", staffID.String(), "error", err)
	}
}
