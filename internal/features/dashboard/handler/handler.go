package handler

import (
	"net/http"

	"tracksolutions/internal/features/dashboard/ports"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler serves the dashboard snapshot.
type StatsHandler struct {
	service ports.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{
		service: service,
	}
}

// Stats handles GET /dashboard/stats.
// @Summary Dashboard statistics
// @Description Returns delivery and route counts by status plus driver and company totals.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Stats
// @Failure 401 {object} map[string]string
// @Router /dashboard/stats [get]
func (h *StatsHandler) Stats(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.Snapshot())
}
