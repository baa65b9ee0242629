package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AccountTypePersonal = "personal"
	AccountTypeBusiness = "business"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email        string     `gorm:"not null;size:255;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	FirstName    string     `gorm:"size:100" json:"first_name"`
	LastName     string     `gorm:"size:100" json:"last_name"`
	Phone        string     `gorm:"size:30" json:"phone,omitempty"`
	Location     string     `gorm:"size:255" json:"location,omitempty"`
	AccountType  string     `gorm:"size:20;default:'personal'" json:"account_type"`
	IsVerified   bool       `gorm:"default:false" json:"is_verified"`
	IsActive     bool       `gorm:"default:true;index" json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// OwnerSummary is the reduced seller view embedded in listing detail
// responses.
type OwnerSummary struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Location    string    `json:"location,omitempty"`
	AccountType string    `json:"account_type"`
	IsVerified  bool      `json:"is_verified"`
	MemberSince time.Time `json:"member_since"`
}

func (u *User) Summary() *OwnerSummary {
	return &OwnerSummary{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Location:    u.Location,
		AccountType: u.AccountType,
		IsVerified:  u.IsVerified,
		MemberSince: u.CreatedAt,
	}
}

// BusinessProfile holds the extra fields attached to a business account.
type BusinessProfile struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	BusinessName string    `gorm:"not null;size:255" json:"business_name"`
	TaxID        string    `gorm:"size:100" json:"tax_id,omitempty"`
	Website      string    `gorm:"size:255" json:"website,omitempty"`
	Description  string    `gorm:"size:1000" json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	User         User      `gorm:"foreignKey:UserID" json:"-"`
}
