package models

import "time"

// StaffRole defines the allowed dashboard roles
type StaffRole string

const (
	RoleAdmin   StaffRole = "admin"
	RoleManager StaffRole = "manager"
	RoleKitchen StaffRole = "kitchen"
	RoleWaiter  StaffRole = "waiter"
)

// ValidRole reports whether s is one of the four known roles
func ValidRole(s StaffRole) bool {
	switch s {
	case RoleAdmin, RoleManager, RoleKitchen, RoleWaiter:
		return true
	}
	return false
}

type Staff struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	RestaurantID uint       `json:"restaurant_id" gorm:"not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	Name         string     `json:"name" gorm:"not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Role         StaffRole  `json:"role" gorm:"not null;default:'waiter'"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	// IsApproved gates dashboard access; a fresh registration is not approved
	IsApproved   bool       `json:"is_approved" gorm:"default:false"`
	ApprovedBy   *uint      `json:"approved_by,omitempty"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// StaffInvite lets an admin pre-authorize an email for a given role.
// Redeeming the token during registration marks the account approved.
type StaffInvite struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Token     string     `json:"token" gorm:"uniqueIndex;not null"`
	Email     string     `json:"email" gorm:"not null"`
	Role      StaffRole  `json:"role" gorm:"not null"`
	InvitedBy uint       `json:"invited_by" gorm:"not null"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
