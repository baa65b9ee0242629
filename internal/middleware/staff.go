package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/otoarena/backend/internal/auth"
	"github.com/otoarena/backend/internal/dto"
	"github.com/otoarena/backend/internal/models"
	"gorm.io/gorm"
)

// LoadStaff runs after JWTProtected on staff routes: the token must carry
// the staff type marker and reference an active staff user.
func LoadStaff(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return unauthorized(c, "Unauthorized")
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return unauthorized(c, "Unauthorized: invalid claims")
		}

		if auth.TokenType(claims) != auth.TokenTypeStaff {
			return unauthorized(c, "Unauthorized: staff token required")
		}

		staffID, err := auth.SubjectID(claims)
		if err != nil {
			return unauthorized(c, "Unauthorized: invalid token")
		}

		var staff models.StaffUser
		if err := db.First(&staff, "id = ?", staffID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return unauthorized(c, "Unauthorized: staff account not found or deactivated")
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Success: false, Message: "Internal server error",
			})
		}
		if !staff.IsActive {
			return unauthorized(c, "Unauthorized: staff account not found or deactivated")
		}

		c.Locals(staffKey, StaffIdentity{
			ID:           staff.ID,
			Email:        staff.Email,
			Role:         staff.Role,
			IsSuperStaff: staff.IsSuperStaff,
		})
		return c.Next()
	}
}

// RequireSuperStaff gates staff-management routes.
func RequireSuperStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		staff, err := CurrentStaff(c)
		if err != nil {
			return unauthorized(c, "Unauthorized")
		}
		if !staff.IsSuperStaff {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Success: false, Message: "Super staff access required",
			})
		}
		return c.Next()
	}
}
