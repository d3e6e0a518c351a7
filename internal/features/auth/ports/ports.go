package ports

import (
	"context"

	"tracksolutions/internal/features/auth/domain"
)

// CredentialVerifier defines the primary port for verifying sign-in credentials.
// The demo verifier derives an identity from the email alone; a real verifier
// would check a password or an external provider behind the same contract.
type CredentialVerifier interface {
	Verify(ctx context.Context, email string) (domain.Identity, error)
}

// TokenStore defines the secondary port for session persistence.
// Tokens are opaque; the store owns their lifetime and validation so that
// callers never trust a persisted identity without going through Validate.
type TokenStore interface {
	Issue(ctx context.Context, identity domain.Identity) (string, error)
	Validate(ctx context.Context, token string) (domain.Identity, error)
	Revoke(ctx context.Context, token string) error
}

// AuthService defines the primary port for session operations.
type AuthService interface {
	SignIn(ctx context.Context, email string) (domain.Identity, string, error)
	SignOut(ctx context.Context, token string) error
	CurrentIdentity(ctx context.Context, token string) (domain.Identity, error)
}
