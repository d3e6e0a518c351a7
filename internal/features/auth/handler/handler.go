package handler

import (
	"errors"
	"net/http"

	"tracksolutions/internal/core/logger"
	"tracksolutions/internal/features/auth/domain"
	"tracksolutions/internal/features/auth/middleware"
	"tracksolutions/internal/features/auth/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler handles HTTP requests for sessions.
type AuthHandler struct {
	service ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

// LoginRequest represents the request body for signing in.
type LoginRequest struct {
	Email string `json:"email"`
}

// LoginResponse carries the opened session.
type LoginResponse struct {
	Token string          `json:"token"`
	User  domain.Identity `json:"user"`
}

// Login handles POST /auth/login.
// @Summary Sign in
// @Description Opens a session for the given email and returns its token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Sign-in credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	identity, token, err := h.service.SignIn(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrMissingEmail) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Email is required",
			})
		}
		logger.Get().Error("Failed to sign in", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(LoginResponse{
		Token: token,
		User:  identity,
	})
}

// Logout handles POST /auth/logout.
// @Summary Sign out
// @Description Closes the current session.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := middleware.TokenFromCtx(c)

	if err := h.service.SignOut(c.Context(), token); err != nil {
		logger.Get().Error("Failed to sign out", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Signed out",
	})
}

// Me handles GET /auth/me.
// @Summary Current identity
// @Description Returns the identity behind the current session.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Identity
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Missing session token",
		})
	}

	return c.Status(http.StatusOK).JSON(identity)
}
