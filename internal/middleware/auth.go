package middleware

import (
	"errors"
	"strings"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/otoarena/backend/internal/auth"
	"github.com/otoarena/backend/internal/config"
	"github.com/otoarena/backend/internal/dto"
	"github.com/otoarena/backend/internal/models"
	"gorm.io/gorm"
)

// JWTProtected verifies the bearer token's signature and expiry. The three
// 401 failure kinds (malformed/invalid signature, expired, no token) get
// distinct messages but the same status.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			message := "Unauthorized: invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				message = "Unauthorized: token expired"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Success: false, Message: message,
			})
		},
	})
}

// LoadUser runs after JWTProtected: it rejects non-access token types, looks
// up the referenced user and attaches the reduced identity. A missing or
// deactivated user is a 401, never a transparent pass-through.
func LoadUser(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return unauthorized(c, "Unauthorized")
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return unauthorized(c, "Unauthorized: invalid claims")
		}

		if auth.TokenType(claims) != auth.TokenTypeAccess {
			return unauthorized(c, "Unauthorized: invalid token")
		}

		userID, err := auth.SubjectID(claims)
		if err != nil {
			return unauthorized(c, "Unauthorized: invalid token")
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return unauthorized(c, "Unauthorized: user not found or deactivated")
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Success: false, Message: "Internal server error",
			})
		}
		if !user.IsActive {
			return unauthorized(c, "Unauthorized: user not found or deactivated")
		}

		c.Locals(identityKey, Identity{
			ID:          user.ID,
			Email:       user.Email,
			AccountType: user.AccountType,
			IsVerified:  user.IsVerified,
		})
		return c.Next()
	}
}

// OptionalAuth never fails: absence or invalidity of the token yields an
// anonymous identity, so one route can serve both public and authenticated
// views.
func OptionalAuth(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Next()
		}

		claims, err := auth.ParseTyped(cfg.JWTSecret, strings.TrimPrefix(header, "Bearer "), auth.TokenTypeAccess)
		if err != nil {
			return c.Next()
		}
		userID, err := auth.SubjectID(claims)
		if err != nil {
			return c.Next()
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil || !user.IsActive {
			return c.Next()
		}

		c.Locals(identityKey, Identity{
			ID:          user.ID,
			Email:       user.Email,
			AccountType: user.AccountType,
			IsVerified:  user.IsVerified,
		})
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Success: false, Message: message,
	})
}
