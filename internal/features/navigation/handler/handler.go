package handler

import (
	"net/http"

	"tracksolutions/internal/features/auth/middleware"
	"tracksolutions/internal/features/navigation/domain"

	"github.com/gofiber/fiber/v2"
)

// NavigationHandler serves the role-dependent navigation entries.
type NavigationHandler struct{}

// NewNavigationHandler creates a new NavigationHandler.
func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

// List handles GET /navigation.
// @Summary Navigation entries
// @Description Returns the navigation entries visible to the current identity's role.
// @Tags Navigation
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Entry
// @Failure 401 {object} map[string]string
// @Router /navigation [get]
func (h *NavigationHandler) List(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Missing session token",
		})
	}

	return c.Status(http.StatusOK).JSON(domain.EntriesFor(identity.Role))
}
