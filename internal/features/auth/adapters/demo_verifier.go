package adapters

import (
	"context"
	"strings"
	"time"

	"tracksolutions/internal/features/auth/domain"
)

// DemoVerifier implements ports.CredentialVerifier without a real credential
// backend: any email signs in, and the role is derived from substrings of the
// address ("admin" and "transport" select the privileged roles). A configurable
// delay simulates upstream verification latency.
type DemoVerifier struct {
	delay time.Duration
}

// NewDemoVerifier creates a DemoVerifier with the given simulated delay.
func NewDemoVerifier(delay time.Duration) *DemoVerifier {
	return &DemoVerifier{delay: delay}
}

// Verify resolves the demo identity for the given email.
func (v *DemoVerifier) Verify(ctx context.Context, email string) (domain.Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.Identity{}, domain.ErrMissingEmail
	}

	if v.delay > 0 {
		select {
		case <-time.After(v.delay):
		case <-ctx.Done():
			return domain.Identity{}, ctx.Err()
		}
	}

	identity := domain.Identity{
		Email:     email,
		CreatedAt: time.Now(),
	}

	switch {
	case strings.Contains(email, "admin"):
		identity.ID = "1"
		identity.Name = "Admin User"
		identity.Role = domain.RoleAdmin
	case strings.Contains(email, "transport"):
		identity.ID = "2"
		identity.Name = "Transport Manager"
		identity.Role = domain.RoleTransportCompany
		identity.CompanyID = "company-1"
	default:
		identity.ID = "3"
		identity.Name = "Driver User"
		identity.Role = domain.RoleDriver
		identity.CompanyID = "company-1"
	}

	return identity, nil
}
