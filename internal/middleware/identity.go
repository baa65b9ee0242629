package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	identityKey = "identity"
	staffKey    = "staff_identity"
)

// Identity is the reduced user state attached to authenticated requests.
type Identity struct {
	ID          uuid.UUID
	Email       string
	AccountType string
	IsVerified  bool
	Anonymous   bool
}

// StaffIdentity is the staff counterpart, loaded from the separate staff table.
type StaffIdentity struct {
	ID           uuid.UUID
	Email        string
	Role         string
	IsSuperStaff bool
}

// CurrentIdentity returns the request identity; an anonymous identity when
// no auth middleware ran or the optional variant found no usable token.
func CurrentIdentity(c *fiber.Ctx) Identity {
	if id, ok := c.Locals(identityKey).(Identity); ok {
		return id
	}
	return Identity{Anonymous: true}
}

// RequireIdentity returns the authenticated identity or an error when the
// request is anonymous.
func RequireIdentity(c *fiber.Ctx) (Identity, error) {
	id := CurrentIdentity(c)
	if id.Anonymous {
		return Identity{}, errors.New("no authenticated identity in context")
	}
	return id, nil
}

// CurrentStaff returns the staff identity attached by LoadStaff.
func CurrentStaff(c *fiber.Ctx) (StaffIdentity, error) {
	if id, ok := c.Locals(staffKey).(StaffIdentity); ok {
		return id, nil
	}
	return StaffIdentity{}, errors.New("no staff identity in context")
}
