// Package auth mints and verifies the HS256 tokens used by the API. Access,
// refresh and staff tokens share one signing secret and are told apart by a
// type claim; verification paths reject the wrong type.
package auth

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/otoarena/backend/internal/models"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
	TokenTypeStaff   = "staff"
)

var (
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenInvalid      = errors.New("invalid token")
	ErrTokenTypeMismatch = errors.New("token type mismatch")
)

// NewAccessToken signs an access token for a regular user.
func NewAccessToken(secret string, user *models.User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":          user.ID.String(),
		"email":        user.Email,
		"account_type": user.AccountType,
		"is_verified":  user.IsVerified,
		"type":         TokenTypeAccess,
		"iat":          time.Now().Unix(),
		"exp":          time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// NewRefreshToken signs a refresh token carrying the refresh type marker.
func NewRefreshToken(secret string, userID uuid.UUID, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"type": TokenTypeRefresh,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// NewStaffToken signs an access token for a staff user.
func NewStaffToken(secret string, staff *models.StaffUser, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":            staff.ID.String(),
		"email":          staff.Email,
		"role":           staff.Role,
		"is_super_staff": staff.IsSuperStaff,
		"type":           TokenTypeStaff,
		"iat":            time.Now().Unix(),
		"exp":            time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse verifies signature and expiry and returns the claims. Expired tokens
// are reported as ErrTokenExpired, everything else as ErrTokenInvalid.
func Parse(secret, tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// ParseTyped is Parse plus a type-marker check. A missing type claim counts
// as an access token, so pre-marker tokens keep working on access paths.
func ParseTyped(secret, tokenStr, wantType string) (jwt.MapClaims, error) {
	claims, err := Parse(secret, tokenStr)
	if err != nil {
		return nil, err
	}
	if TokenType(claims) != wantType {
		return nil, ErrTokenTypeMismatch
	}
	return claims, nil
}

// TokenType extracts the type claim, defaulting to access.
func TokenType(claims jwt.MapClaims) string {
	if t, ok := claims["type"].(string); ok && t != "" {
		return t
	}
	return TokenTypeAccess
}

// SubjectID extracts and parses the sub claim.
func SubjectID(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, ErrTokenInvalid
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}
	return id, nil
}

// HashToken returns the hex SHA-256 of a raw token for at-rest storage.
func HashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
