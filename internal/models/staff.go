package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusResolved   = "resolved"
	TicketStatusClosed     = "closed"

	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// StaffUser is a separate authentication domain from User; staff tokens
// carry a distinct type claim.
type StaffUser struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email        string     `gorm:"not null;size:255;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	FirstName    string     `gorm:"size:100" json:"first_name"`
	LastName     string     `gorm:"size:100" json:"last_name"`
	Role         string     `gorm:"size:50;default:'support'" json:"role"`
	IsSuperStaff bool       `gorm:"default:false" json:"is_super_staff"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type SupportTicket struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Email      string     `gorm:"not null;size:255" json:"email"`
	Subject    string     `gorm:"not null;size:255" json:"subject"`
	Message    string     `gorm:"type:text;not null" json:"message"`
	Status     string     `gorm:"size:20;default:'open';index" json:"status"`
	AssignedTo *uuid.UUID `gorm:"type:uuid" json:"assigned_to,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ModerationItem is a reported listing awaiting staff review.
type ModerationItem struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ItemType   string     `gorm:"size:20;not null" json:"item_type"`
	ItemID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"item_id"`
	Reason     string     `gorm:"not null;size:500" json:"reason"`
	ReportedBy *uuid.UUID `gorm:"type:uuid" json:"reported_by,omitempty"`
	Status     string     `gorm:"size:20;default:'pending';index" json:"status"`
	ReviewedBy *uuid.UUID `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	Note       string     `gorm:"size:1000" json:"note,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type BusinessApplication struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	BusinessName string     `gorm:"not null;size:255" json:"business_name"`
	TaxID        string     `gorm:"size:100" json:"tax_id,omitempty"`
	Website      string     `gorm:"size:255" json:"website,omitempty"`
	Status       string     `gorm:"size:20;default:'pending';index" json:"status"`
	ReviewedBy   *uuid.UUID `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	Note         string     `gorm:"size:1000" json:"note,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	User         User       `gorm:"foreignKey:UserID" json:"-"`
}

// StaffActivityLog records staff actions. Writes are fire-and-forget.
type StaffActivityLog struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StaffID    uuid.UUID `gorm:"type:uuid;not null;index" json:"staff_id"`
	Action     string    `gorm:"not null;size:100" json:"action"`
	TargetType string    `gorm:"size:50" json:"target_type,omitempty"`
	TargetID   string    `gorm:"size:36" json:"target_id,omitempty"`
	Detail     string    `gorm:"size:1000" json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
