package domain

import (
	"errors"
	"time"
)

// User is the core identity record. PasswordHash is never exposed to the UI;
// use Profile for anything that crosses the bridge.
type User struct {
	ID           string
	Email        string // lowercase-normalized, unique
	PasswordHash string
	FirstName    string
	LastName     string
	Avatar       string // optional
	JobTitle     string // optional
	Department   string // optional
	Role         Role
	Status       Status
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleMember  Role = "MEMBER"
	RoleGuest   Role = "GUEST"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusPending  Status = "PENDING"
)

// Profile is the public projection of a User sent across the bridge.
type Profile struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Avatar     string `json:"avatar,omitempty"`
	JobTitle   string `json:"jobTitle,omitempty"`
	Department string `json:"department,omitempty"`
	Role       string `json:"role"`
}

// Profile returns the public projection of u.
func (u *User) Profile() Profile {
	return Profile{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Avatar:     u.Avatar,
		JobTitle:   u.JobTitle,
		Department: u.Department,
		Role:       string(u.Role),
	}
}

// Validate validates the user for persistence. Returns an error describing the
// first validation failure.
func (u *User) Validate() error {
	if u.Email == "" {
		return errors.New("email is required")
	}
	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}
	if u.Role == "" {
		u.Role = RoleMember
	}
	if u.Status == "" {
		u.Status = StatusActive
	}
	return nil
}
