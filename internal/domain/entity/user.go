package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role represents the user role
type Role string

const (
	RoleSuperAdmin   Role = "super_admin"
	RoleAdminDinas   Role = "admin_dinas"
	RoleAdminSekolah Role = "admin_sekolah"
	RoleSiswa        Role = "siswa"
)

// IsValid reports whether the role is one of the four known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdminDinas, RoleAdminSekolah, RoleSiswa:
		return true
	}
	return false
}

// User represents a login account. Which tenant anchor is set depends on the
// role: dinas_id for admin_dinas, sekolah_id for admin_sekolah, neither for
// super_admin and siswa.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Role         Role       `json:"role"`
	DinasID      *uuid.UUID `json:"dinas_id,omitempty"`
	SekolahID    *uuid.UUID `json:"sekolah_id,omitempty"`
	Avatar       string     `json:"avatar,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	IsActive     bool       `json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// UserResponse represents the user data returned to clients
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        Role       `json:"role"`
	DinasID     *uuid.UUID `json:"dinas_id,omitempty"`
	SekolahID   *uuid.UUID `json:"sekolah_id,omitempty"`
	Avatar      string     `json:"avatar,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		DinasID:     u.DinasID,
		SekolahID:   u.SekolahID,
		Avatar:      u.Avatar,
		Phone:       u.Phone,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}
