package domain

import (
	"errors"
	"time"
)

// Role determines which management surfaces an identity can reach.
type Role string

const (
	RoleAdmin            Role = "admin"
	RoleTransportCompany Role = "transport_company"
	RoleDriver           Role = "driver"
)

var (
	// ErrMissingEmail is returned when sign-in is attempted without an email.
	ErrMissingEmail = errors.New("email is required")
	// ErrInvalidToken is returned when a session token is unknown or its
	// stored payload cannot be decoded.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrTokenExpired is returned when a session token has expired.
	ErrTokenExpired = errors.New("session token expired")
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTransportCompany, RoleDriver:
		return true
	}
	return false
}

// Identity is the authenticated user attached to a session.
// Role is fixed at sign-in and never changes for the session's lifetime.
type Identity struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CompanyID string    `json:"company_id,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
