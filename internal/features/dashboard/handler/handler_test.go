package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tracksolutions/internal/features/dashboard/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStatsService is a mock implementation of ports.StatsService
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Snapshot() domain.Stats {
	args := m.Called()
	return args.Get(0).(domain.Stats)
}

func TestStatsHandler_Stats(t *testing.T) {
	service := new(MockStatsService)
	app := fiber.New()
	app.Get("/dashboard/stats", NewStatsHandler(service).Stats)

	service.On("Snapshot").Return(domain.Stats{
		Deliveries:        domain.CountByStatus{Total: 4, ByStatus: map[string]int{"Em Rota": 1}},
		Routes:            domain.CountByStatus{Total: 3, ByStatus: map[string]int{"Planejada": 1}},
		ActiveDrivers:     1,
		TotalDrivers:      3,
		ActiveCompanies:   1,
		TotalCompanies:    3,
		DeliveriesEnRoute: 1,
	}).Once()

	req := httptest.NewRequest("GET", "/dashboard/stats", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got domain.Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, 4, got.Deliveries.Total)
	assert.Equal(t, 1, got.Deliveries.ByStatus["Em Rota"])
	assert.Equal(t, 3, got.TotalDrivers)
	service.AssertExpectations(t)
}
