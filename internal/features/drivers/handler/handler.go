package handler

import (
	"errors"
	"net/http"

	"tracksolutions/internal/core/logger"
	"tracksolutions/internal/core/registry"
	"tracksolutions/internal/features/drivers/domain"
	"tracksolutions/internal/features/drivers/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DriverHandler handles HTTP requests for drivers.
type DriverHandler struct {
	service ports.DriverService
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(service ports.DriverService) *DriverHandler {
	return &DriverHandler{
		service: service,
	}
}

// List handles GET /drivers.
// @Summary List drivers
// @Tags Drivers
// @Produce json
// @Param q query string false "Free-text search over name, email, phone, vehicle and id"
// @Param status query string false "Status filter; 'all' or empty keeps every status"
// @Security BearerAuth
// @Success 200 {array} domain.Driver
// @Router /drivers [get]
func (h *DriverHandler) List(c *fiber.Ctx) error {
	query := ports.ListQuery{
		Search: c.Query("q"),
		Status: c.Query("status"),
	}
	return c.Status(http.StatusOK).JSON(h.service.List(query))
}

// Create handles POST /drivers.
// @Summary Create a driver
// @Tags Drivers
// @Accept json
// @Produce json
// @Param driver body domain.Input true "Driver draft"
// @Security BearerAuth
// @Success 201 {object} domain.Driver
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /drivers [post]
func (h *DriverHandler) Create(c *fiber.Ctx) error {
	var input domain.Input
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	driver, err := h.service.Create(input)
	if err != nil {
		return respondSaveError(c, err, "Failed to create driver")
	}

	return c.Status(http.StatusCreated).JSON(driver)
}

// Update handles PUT /drivers/:id.
// @Summary Update a driver
// @Tags Drivers
// @Accept json
// @Produce json
// @Param id path string true "Driver id"
// @Param driver body domain.Input true "Driver draft"
// @Security BearerAuth
// @Success 200 {object} domain.Driver
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /drivers/{id} [put]
func (h *DriverHandler) Update(c *fiber.Ctx) error {
	var input domain.Input
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	driver, err := h.service.Update(c.Params("id"), input)
	if err != nil {
		return respondSaveError(c, err, "Failed to update driver")
	}

	return c.Status(http.StatusOK).JSON(driver)
}

// Delete handles DELETE /drivers/:id.
// @Summary Delete a driver
// @Tags Drivers
// @Produce json
// @Param id path string true "Driver id"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drivers/{id} [delete]
func (h *DriverHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Driver not found",
			})
		}
		logger.Get().Error("Failed to delete driver", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Driver removed",
	})
}

func respondSaveError(c *fiber.Ctx, err error, logMsg string) error {
	var verr *registry.ValidationError
	if errors.As(err, &verr) {
		return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "Preencha todos os campos obrigatórios.",
			"fields": verr.Fields,
		})
	}
	if errors.Is(err, registry.ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "Driver not found",
		})
	}
	logger.Get().Error(logMsg, zap.Error(err))
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}
