package adapters

import (
	"context"
	"testing"
	"time"

	"tracksolutions/internal/features/auth/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoVerifier_RoleDerivation(t *testing.T) {
	verifier := NewDemoVerifier(0)
	ctx := context.Background()

	tests := []struct {
		name      string
		email     string
		role      domain.Role
		companyID string
	}{
		{name: "Admin", email: "admin@tracksolutions.com", role: domain.RoleAdmin, companyID: ""},
		{name: "TransportCompany", email: "ops@transportveloz.com", role: domain.RoleTransportCompany, companyID: "company-1"},
		{name: "Driver", email: "carlos@example.com", role: domain.RoleDriver, companyID: "company-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := verifier.Verify(ctx, tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.email, identity.Email)
			assert.Equal(t, tt.role, identity.Role)
			assert.Equal(t, tt.companyID, identity.CompanyID)
			assert.False(t, identity.CreatedAt.IsZero())
		})
	}
}

func TestDemoVerifier_MissingEmail(t *testing.T) {
	verifier := NewDemoVerifier(0)

	_, err := verifier.Verify(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrMissingEmail)
}

func TestDemoVerifier_CancelledContext(t *testing.T) {
	verifier := NewDemoVerifier(5 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := verifier.Verify(ctx, "driver@example.com")
	assert.ErrorIs(t, err, context.Canceled)
}
