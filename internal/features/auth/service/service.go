package service

import (
	"context"
	"fmt"

	"tracksolutions/internal/features/auth/domain"
	"tracksolutions/internal/features/auth/ports"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	verifier ports.CredentialVerifier
	tokens   ports.TokenStore
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(verifier ports.CredentialVerifier, tokens ports.TokenStore) *AuthServiceImpl {
	return &AuthServiceImpl{
		verifier: verifier,
		tokens:   tokens,
	}
}

// SignIn verifies the credentials and opens a session, returning the
// identity and its opaque session token.
func (s *AuthServiceImpl) SignIn(ctx context.Context, email string) (domain.Identity, string, error) {
	identity, err := s.verifier.Verify(ctx, email)
	if err != nil {
		return domain.Identity{}, "", err
	}

	token, err := s.tokens.Issue(ctx, identity)
	if err != nil {
		return domain.Identity{}, "", fmt.Errorf("service: failed to open session: %w", err)
	}

	return identity, token, nil
}

// SignOut closes the session behind the token.
func (s *AuthServiceImpl) SignOut(ctx context.Context, token string) error {
	if err := s.tokens.Revoke(ctx, token); err != nil {
		return fmt.Errorf("service: failed to close session: %w", err)
	}
	return nil
}

// CurrentIdentity resolves the identity behind a session token.
func (s *AuthServiceImpl) CurrentIdentity(ctx context.Context, token string) (domain.Identity, error) {
	return s.tokens.Validate(ctx, token)
}
