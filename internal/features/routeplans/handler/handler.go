package handler

import (
	"errors"
	"net/http"

	"tracksolutions/internal/core/logger"
	"tracksolutions/internal/core/registry"
	"tracksolutions/internal/features/routeplans/domain"
	"tracksolutions/internal/features/routeplans/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RouteHandler handles HTTP requests for routes.
type RouteHandler struct {
	service ports.RouteService
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(service ports.RouteService) *RouteHandler {
	return &RouteHandler{
		service: service,
	}
}

// List handles GET /routes.
// @Summary List routes
// @Tags Routes
// @Produce json
// @Param q query string false "Free-text search over name, id and endpoints"
// @Param status query string false "Status filter; 'all' or empty keeps every status"
// @Security BearerAuth
// @Success 200 {array} domain.Route
// @Router /routes [get]
func (h *RouteHandler) List(c *fiber.Ctx) error {
	query := ports.ListQuery{
		Search: c.Query("q"),
		Status: c.Query("status"),
	}
	return c.Status(http.StatusOK).JSON(h.service.List(query))
}

// Create handles POST /routes.
// @Summary Create a route
// @Tags Routes
// @Accept json
// @Produce json
// @Param route body domain.Input true "Route draft"
// @Security BearerAuth
// @Success 201 {object} domain.Route
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /routes [post]
func (h *RouteHandler) Create(c *fiber.Ctx) error {
	var input domain.Input
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	route, err := h.service.Create(input)
	if err != nil {
		return respondSaveError(c, err, "Failed to create route")
	}

	return c.Status(http.StatusCreated).JSON(route)
}

// Update handles PUT /routes/:id.
// @Summary Update a route
// @Tags Routes
// @Accept json
// @Produce json
// @Param id path string true "Route id"
// @Param route body domain.Input true "Route draft"
// @Security BearerAuth
// @Success 200 {object} domain.Route
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /routes/{id} [put]
func (h *RouteHandler) Update(c *fiber.Ctx) error {
	var input domain.Input
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	route, err := h.service.Update(c.Params("id"), input)
	if err != nil {
		return respondSaveError(c, err, "Failed to update route")
	}

	return c.Status(http.StatusOK).JSON(route)
}

// Delete handles DELETE /routes/:id.
// @Summary Delete a route
// @Tags Routes
// @Produce json
// @Param id path string true "Route id"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /routes/{id} [delete]
func (h *RouteHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Route not found",
			})
		}
		logger.Get().Error("Failed to delete route", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Route removed",
	})
}

func respondSaveError(c *fiber.Ctx, err error, logMsg string) error {
	var verr *registry.ValidationError
	if errors.As(err, &verr) {
		return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "Preencha todos os campos obrigatórios (Nome, Data, Entregas, Partida, Destino).",
			"fields": verr.Fields,
		})
	}
	if errors.Is(err, registry.ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	}
	logger.Get().Error(logMsg, zap.Error(err))
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}
