package handler

import (
	"errors"
	"net/http"

	"tracksolutions/internal/core/logger"
	"tracksolutions/internal/core/registry"
	"tracksolutions/internal/features/deliveries/domain"
	"tracksolutions/internal/features/deliveries/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DeliveryHandler handles HTTP requests for deliveries.
type DeliveryHandler struct {
	service ports.DeliveryService
}

// NewDeliveryHandler creates a new DeliveryHandler.
func NewDeliveryHandler(service ports.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{
		service: service,
	}
}

func queryFromCtx(c *fiber.Ctx) ports.ListQuery {
	return ports.ListQuery{
		Search: c.Query("q"),
		Status: c.Query("status"),
		Date:   c.Query("date"),
	}
}

// List handles GET /deliveries.
// @Summary List deliveries
// @Description Lists deliveries, optionally narrowed by free text, status and delivery day.
// @Tags Deliveries
// @Produce json
// @Param q query string false "Free-text search over customer, address, id and driver"
// @Param status query string false "Status filter; 'all' or empty keeps every status"
// @Param date query string false "Delivery day filter, YYYY-MM-DD"
// @Security BearerAuth
// @Success 200 {array} domain.Delivery
// @Router /deliveries [get]
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.List(queryFromCtx(c)))
}

// Create handles POST /deliveries.
// @Summary Create a delivery
// @Tags Deliveries
// @Accept json
// @Produce json
// @Param delivery body domain.Input true "Delivery draft"
// @Security BearerAuth
// @Success 201 {object} domain.Delivery
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /deliveries [post]
func (h *DeliveryHandler) Create(c *fiber.Ctx) error {
	var input domain.Input
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	delivery, err := h.service.Create(input)
	if err != nil {
		return respondSaveError(c, err, "Failed to create delivery")
	}

	return c.Status(http.StatusCreated).JSON(delivery)
}

// Update handles PUT /deliveries/:id.
// @Summary Update a delivery
// @Tags Deliveries
// @Accept json
// @Produce json
// @Param id path string true "Delivery id"
// @Param delivery body domain.Input true "Delivery draft"
// @Security BearerAuth
// @Success 200 {object} domain.Delivery
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /deliveries/{id} [put]
func (h *DeliveryHandler) Update(c *fiber.Ctx) error {
	var input domain.Input
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	delivery, err := h.service.Update(c.Params("id"), input)
	if err != nil {
		return respondSaveError(c, err, "Failed to update delivery")
	}

	return c.Status(http.StatusOK).JSON(delivery)
}

// Delete handles DELETE /deliveries/:id.
// @Summary Delete a delivery
// @Tags Deliveries
// @Produce json
// @Param id path string true "Delivery id"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /deliveries/{id} [delete]
func (h *DeliveryHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Delivery not found",
			})
		}
		logger.Get().Error("Failed to delete delivery", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Delivery removed",
	})
}

// Export handles GET /deliveries/export.
// @Summary Export deliveries as CSV
// @Description Exports the current filtered view as a CSV download.
// @Tags Deliveries
// @Produce text/csv
// @Param q query string false "Free-text search"
// @Param status query string false "Status filter"
// @Param date query string false "Delivery day filter, YYYY-MM-DD"
// @Security BearerAuth
// @Success 200 {string} string "CSV document"
// @Router /deliveries/export [get]
func (h *DeliveryHandler) Export(c *fiber.Ctx) error {
	data, err := h.service.ExportCSV(queryFromCtx(c))
	if err != nil {
		logger.Get().Error("Failed to export deliveries", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="entregas.csv"`)
	return c.Status(http.StatusOK).Send(data)
}

// respondSaveError maps validation and lookup failures on save to HTTP errors.
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
			"error": "Delivery not found",
		})
	}
	logger.Get().Error(logMsg, zap.Error(err))
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}
