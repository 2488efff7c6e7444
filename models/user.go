package models

import (
	"time"
)

// Role values understood by the API
const (
	RoleTechnician = "technician"
	RoleSupervisor = "supervisor"
	RoleManager    = "manager"
)

// User represents an account that can authenticate against the API.
// The role determines which operations are permitted.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"not null;default:'technician'" json:"role"` // technician, supervisor or manager
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// ValidRole reports whether role is one of the three recognized roles.
func ValidRole(role string) bool {
	switch role {
	case RoleTechnician, RoleSupervisor, RoleManager:
		return true
	}
	return false
}

// RoleAllowed reports whether a caller with the given role may perform an
// operation restricted to the required roles. An empty required set means
// any authenticated caller is allowed.
func RoleAllowed(role string, required ...string) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}

// UserSummary is the read-only projection of a User embedded in resolved
// work orders and reports.
type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Summary returns the display projection of the user.
func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
