package middleware

import (
	"errors"
	"net/http"
	"strings"

	"tracksolutions/internal/core/logger"
	"tracksolutions/internal/features/auth/domain"
	"tracksolutions/internal/features/auth/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	identityLocal = "auth_identity"
	tokenLocal    = "auth_token"
)

// RequireAuth guards a route group: it resolves the bearer token to an
// identity or rejects the request with 401. The resolved identity is stored
// on the request context for handlers and RequireRole.
func RequireAuth(service ports.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing session token",
			})
		}

		identity, err := service.CurrentIdentity(c.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidToken) || errors.Is(err, domain.ErrTokenExpired) {
				return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
					"error": "Session is invalid or expired",
				})
			}
			logger.Get().Error("Failed to resolve session", zap.Error(err))
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		}

		c.Locals(identityLocal, identity)
		c.Locals(tokenLocal, token)
		return c.Next()
	}
}

// RequireRole authorizes the current identity against an allow-list of roles.
// Hiding a navigation entry is not enforcement; this is.
func RequireRole(roles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromCtx(c)
		if !ok {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing session token",
			})
		}

		for _, role := range roles {
			if identity.Role == role {
				return c.Next()
			}
		}

		return c.Status(http.StatusForbidden).JSON(fiber.Map{
			"error": "Insufficient role for this resource",
		})
	}
}

// IdentityFromCtx returns the identity resolved by RequireAuth.
func IdentityFromCtx(c *fiber.Ctx) (domain.Identity, bool) {
	identity, ok := c.Locals(identityLocal).(domain.Identity)
	return identity, ok
}

// TokenFromCtx returns the raw session token resolved by RequireAuth.
func TokenFromCtx(c *fiber.Ctx) string {
	token, _ := c.Locals(tokenLocal).(string)
	return token
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
