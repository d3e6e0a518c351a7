package handler

import (
	"errors"
	"net/http"

	"tracksolutions/internal/core/logger"
	"tracksolutions/internal/core/registry"
	"tracksolutions/internal/features/companies/domain"
	"tracksolutions/internal/features/companies/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CompanyHandler handles HTTP requests for transport companies.
type CompanyHandler struct {
	service ports.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		service: service,
	}
}

// List handles GET /companies.
// @Summary List transport companies
// @Tags Companies
// @Produce json
// @Param q query string false "Free-text search over id, name, cnpj, email and city"
// @Param status query string false "Status filter; 'all' or empty keeps every status"
// @Security BearerAuth
// @Success 200 {array} domain.TransportCompany
// @Router /companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	query := ports.ListQuery{
		Search: c.Query("q"),
		Status: c.Query("status"),
	}
	return c.Status(http.StatusOK).JSON(h.service.List(query))
}

// Create handles POST /companies.
// @Summary Create a transport company
// @Tags Companies
// @Accept json
// @Produce json
// @Param company body domain.Input true "Company draft"
// @Security BearerAuth
// @Success 201 {object} domain.TransportCompany
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var input domain.Input
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	company, err := h.service.Create(input)
	if err != nil {
		return respondSaveError(c, err, "Failed to create company")
	}

	return c.Status(http.StatusCreated).JSON(company)
}

// Update handles PUT /companies/:id.
// @Summary Update a transport company
// @Tags Companies
// @Accept json
// @Produce json
// @Param id path string true "Company id"
// @Param company body domain.Input true "Company draft"
// @Security BearerAuth
// @Success 200 {object} domain.TransportCompany
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var input domain.Input
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	company, err := h.service.Update(c.Params("id"), input)
	if err != nil {
		return respondSaveError(c, err, "Failed to update company")
	}

	return c.Status(http.StatusOK).JSON(company)
}

// Delete handles DELETE /companies/:id.
// @Summary Delete a transport company
// @Tags Companies
// @Produce json
// @Param id path string true "Company id"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Company not found",
			})
		}
		logger.Get().Error("Failed to delete company", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Company removed",
	})
}

func respondSaveError(c *fiber.Ctx, err error, logMsg string) error {
	var verr *registry.ValidationError
	if errors.As(err, &verr) {
		msg := "Preencha todos os campos obrigatórios."
		for _, field := range verr.Fields {
			if field == "cnpj" {
				msg = "Formato de CNPJ inválido. Use XX.XXX.XXX/XXXX-XX."
			}
		}
		return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  msg,
			"fields": verr.Fields,
		})
	}
	if errors.Is(err, registry.ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "Company not found",
		})
	}
	logger.Get().Error(logMsg, zap.Error(err))
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}
