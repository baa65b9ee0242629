package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/otoarena/backend/internal/apperrors"
	"github.com/otoarena/backend/internal/auth"
	"github.com/otoarena/backend/internal/dto"
	"github.com/otoarena/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetProfile(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ? AND is_active = true", userID).First(&user).Error; err != nil {
		return nil, apperrors.NotFound("user")
	}
	return &user, nil
}

func (s *UserService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if len(updates) == 0 {
		return user, nil
	}

	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// DeactivateAccount soft-deletes the account after re-checking the password.
// The email is rewritten to a tombstone so the address can register again.
func (s *UserService) DeactivateAccount(userID uuid.UUID, req *dto.DeactivateAccountRequest) error {
	if strings.TrimSpace(req.Password) == "" {
		return apperrors.MissingFields("password")
	}

	user, err := s.GetProfile(userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return apperrors.Unauthorized("invalid password")
	}

	tombstone := fmt.Sprintf("deleted_%d_%s", time.Now().Unix(), user.Email)
	updates := map[string]interface{}{
		"is_active": false,
		"email":     tombstone,
	}
	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to deactivate account: %w", err)
	}

	// Existing refresh tokens must stop working immediately.
	if err := s.db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked = false", userID).
		Update("revoked", true).Error; err != nil {
		slog.Error("failed to revoke refresh tokens on deactivation",
			"action", "account_deactivate", "user_id", userID.String(), "error", err)
	}

	return nil
}

// ConvertToBusiness runs as a two-step saga: flip account_type, then insert
// the business profile. The steps are not atomic; when the insert fails the
// account_type flip is reverted by a compensating update.
func (s *UserService) ConvertToBusiness(userID uuid.UUID, req *dto.ConvertToBusinessRequest) (*models.BusinessProfile, error) {
	if strings.TrimSpace(req.BusinessName) == "" {
		return nil, apperrors.MissingFields("business_name")
	}

	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if user.AccountType == models.AccountTypeBusiness {
		return nil, apperrors.Conflict("account is already a business account")
	}

	if err := s.db.Model(user).Update("account_type", models.AccountTypeBusiness).Error; err != nil {
		return nil, fmt.Errorf("failed to update account type: %w", err)
	}

	profile := models.BusinessProfile{
		ID:           uuid.New(),
		UserID:       userID,
		BusinessName: strings.TrimSpace(req.BusinessName),
		TaxID:        strings.TrimSpace(req.TaxID),
		Website:      strings.TrimSpace(req.Website),
		Description:  strings.TrimSpace(req.Description),
	}
	if err := s.db.Create(&profile).Error; err != nil {
		// Compensating write; best-effort, the account may be left converted
		// if this also fails.
		if revertErr := s.db.Model(&models.User{}).
			Where("id = ?", userID).
			Update("account_type", models.AccountTypePersonal).Error; revertErr != nil {
			slog.Error("failed to revert account type after profile insert failure",
				"action", "business_convert", "user_id", userID.String(), "error", revertErr)
		}
		return nil, fmt.Errorf("failed to create business profile: %w", err)
	}

	return &profile, nil
}

// SubmitBusinessApplication queues a pending application for staff review.
func (s *UserService) SubmitBusinessApplication(userID uuid.UUID, req *dto.BusinessApplicationRequest) (*models.BusinessApplication, error) {
	if strings.TrimSpace(req.BusinessName) == "" {
		return nil, apperrors.MissingFields("business_name")
	}

	if _, err := s.GetProfile(userID); err != nil {
		return nil, err
	}

	var pending int64
	if err := s.db.Model(&models.BusinessApplication{}).
		Where("user_id = ? AND status = ?", userID, models.ReviewStatusPending).
		Count(&pending).Error; err != nil {
		return nil, err
	}
	if pending > 0 {
		return nil, apperrors.Conflict("a pending application already exists")
	}

	application := models.BusinessApplication{
		ID:           uuid.New(),
		UserID:       userID,
		BusinessName: strings.TrimSpace(req.BusinessName),
		TaxID:        strings.TrimSpace(req.TaxID),
		Website:      strings.TrimSpace(req.Website),
		Status:       models.ReviewStatusPending,
	}
	if err := s.db.Create(&application).Error; err != nil {
		return nil, fmt.Errorf("failed to submit application: %w", err)
	}
	return &application, nil
}
