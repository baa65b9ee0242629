package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/otoarena/backend/internal/apperrors"
	"github.com/otoarena/backend/internal/auth"
	"github.com/otoarena/backend/internal/config"
	"github.com/otoarena/backend/internal/dto"
	"github.com/otoarena/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	var missing []string
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if req.FirstName == "" {
		missing = append(missing, "first_name")
	}
	if req.LastName == "" {
		missing = append(missing, "last_name")
	}
	if len(missing) > 0 {
		return nil, apperrors.MissingFields(missing...)
	}
	if len(req.Password) < 8 {
		return nil, apperrors.Validation("password must be at least 8 characters")
	}

	accountType := req.AccountType
	if accountType == "" {
		accountType = models.AccountTypePersonal
	}
	if accountType != models.AccountTypePersonal && accountType != models.AccountTypeBusiness {
		return nil, apperrors.Validation("account_type must be personal or business")
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, apperrors.Conflict("email already registered")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Location:     req.Location,
		AccountType:  accountType,
		IsActive:     true,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.generateTokenPair(&user)
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ? AND is_active = true", req.Email).First(&user).Error; err != nil {
		return nil, apperrors.Unauthorized("invalid email or password")
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.Unauthorized("invalid email or password")
	}

	now := time.Now()
	if err := s.db.Model(&user).Update("last_login", now).Error; err != nil {
		slog.Error("failed to update last_login", "user_id", user.ID.String(), "error", err)
	}

	return s.generateTokenPair(&user)
}

// Refresh exchanges a valid refresh token for a new token pair. The token
// must carry the refresh type marker and must not have been revoked; the
// used token is revoked on success (rotation).
func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	claims, err := auth.ParseTyped(s.cfg.JWTSecret, req.RefreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid or expired refresh token")
	}
	userID, err := auth.SubjectID(claims)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid or expired refresh token")
	}

	tokenHash := auth.HashToken(req.RefreshToken)
	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = false", tokenHash).First(&stored).Error; err != nil {
		return nil, apperrors.Unauthorized("invalid or expired refresh token")
	}
	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("revoked", true)
		return nil, apperrors.Unauthorized("invalid or expired refresh token")
	}

	var user models.User
	if err := s.db.Where("id = ? AND is_active = true", userID).First(&user).Error; err != nil {
		return nil, apperrors.Unauthorized("invalid or expired refresh token")
	}

	s.db.Model(&stored).Update("revoked", true)

	return s.generateTokenPair(&user)
}

func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	tokenHash := auth.HashToken(req.RefreshToken)
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

func (s *AuthService) generateTokenPair(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.NewAccessToken(s.cfg.JWTSecret, user, s.cfg.JWTAccessExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := auth.NewRefreshToken(s.cfg.JWTSecret, user.ID, s.cfg.JWTRefreshExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	record := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: auth.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.UserResponse{
			ID:          user.ID,
			Email:       user.Email,
			FirstName:   user.FirstName,
			LastName:    user.LastName,
			AccountType: user.AccountType,
			IsVerified:  user.IsVerified,
		},
	}, nil
}
