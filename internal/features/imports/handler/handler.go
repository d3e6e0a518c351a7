package handler

import (
	"bytes"
	"errors"
	"net/http"

	"tracksolutions/internal/core/logger"
	"tracksolutions/internal/features/imports/ports"
	"tracksolutions/internal/features/imports/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ImportHandler serves the CSV template download and the import upload.
type ImportHandler struct {
	service ports.ImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(service ports.ImportService) *ImportHandler {
	return &ImportHandler{
		service: service,
	}
}

// Template handles GET /imports/template.
// @Summary Download the import template
// @Description Returns a header-only CSV describing the columns an import file must have.
// @Tags Imports
// @Produce text/csv
// @Success 200 {string} string "CSV template"
// @Router /imports/template [get]
func (h *ImportHandler) Template(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="modelo_importacao.csv"`)
	return c.Status(http.StatusOK).Send(h.service.Template())
}

// Import handles POST /imports.
// @Summary Import deliveries from CSV
// @Description Parses a CSV body following the template, creates the valid rows and reports the rejected ones.
// @Tags Imports
// @Accept text/csv
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Report
// @Failure 400 {object} map[string]string
// @Router /imports [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Arquivo vazio.",
		})
	}

	report, err := h.service.Import(bytes.NewReader(body))
	if err != nil {
		if errors.Is(err, service.ErrBadFile) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Arquivo fora do modelo de importação.",
			})
		}
		logger.Get().Error("Failed to import deliveries", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(report)
}
