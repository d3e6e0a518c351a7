package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tracksolutions/internal/core/registry"
	"tracksolutions/internal/features/deliveries/domain"
	"tracksolutions/internal/features/deliveries/ports"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDeliveryService is a mock implementation of ports.DeliveryService
type MockDeliveryService struct {
	mock.Mock
}

func (m *MockDeliveryService) List(query ports.ListQuery) []domain.Delivery {
	args := m.Called(query)
	return args.Get(0).([]domain.Delivery)
}

func (m *MockDeliveryService) Create(input domain.Input) (domain.Delivery, error) {
	args := m.Called(input)
	return args.Get(0).(domain.Delivery), args.Error(1)
}

func (m *MockDeliveryService) Update(id string, input domain.Input) (domain.Delivery, error) {
	args := m.Called(id, input)
	return args.Get(0).(domain.Delivery), args.Error(1)
}

func (m *MockDeliveryService) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockDeliveryService) ExportCSV(query ports.ListQuery) ([]byte, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func setupApp(service *MockDeliveryService) *fiber.App {
	app := fiber.New()
	handler := NewDeliveryHandler(service)

	app.Get("/deliveries", handler.List)
	app.Get("/deliveries/export", handler.Export)
	app.Post("/deliveries", handler.Create)
	app.Put("/deliveries/:id", handler.Update)
	app.Delete("/deliveries/:id", handler.Delete)

	return app
}

func TestDeliveryHandler_List(t *testing.T) {
	service := new(MockDeliveryService)
	app := setupApp(service)

	expected := []domain.Delivery{{ID: "DEL001", CustomerName: "Empresa Alpha"}}
	service.On("List", ports.ListQuery{Search: "alpha", Status: "Em Rota"}).Return(expected).Once()

	req := httptest.NewRequest("GET", "/deliveries?q=alpha&status=Em+Rota", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got []domain.Delivery
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "DEL001", got[0].ID)
	service.AssertExpectations(t)
}

func TestDeliveryHandler_Create(t *testing.T) {
	input := domain.Input{
		CustomerName: "Mercado Ômega",
		Address:      "Rua Nova, 77",
		DeliveryDate: time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC),
		Items:        "Hortifrúti",
	}

	t.Run("Created", func(t *testing.T) {
		service := new(MockDeliveryService)
		app := setupApp(service)

		created := domain.Delivery{ID: "DEL005", CustomerName: input.CustomerName}
		service.On("Create", mock.AnythingOfType("domain.Input")).Return(created, nil).Once()

		body, _ := json.Marshal(input)
		req := httptest.NewRequest("POST", "/deliveries", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("ValidationError", func(t *testing.T) {
		service := new(MockDeliveryService)
		app := setupApp(service)

		verr := &registry.ValidationError{Fields: []string{"customerName"}}
		service.On("Create", mock.AnythingOfType("domain.Input")).Return(domain.Delivery{}, verr).Once()

		body, _ := json.Marshal(domain.Input{})
		req := httptest.NewRequest("POST", "/deliveries", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		payload, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(payload), "customerName")
	})

	t.Run("InvalidBody", func(t *testing.T) {
		service := new(MockDeliveryService)
		app := setupApp(service)

		req := httptest.NewRequest("POST", "/deliveries", bytes.NewReader([]byte("{oops")))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		service.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestDeliveryHandler_Update(t *testing.T) {
	t.Run("Updated", func(t *testing.T) {
		service := new(MockDeliveryService)
		app := setupApp(service)

		updated := domain.Delivery{ID: "DEL002", CustomerName: "Cliente Beta"}
		service.On("Update", "DEL002", mock.AnythingOfType("domain.Input")).Return(updated, nil).Once()

		body, _ := json.Marshal(domain.Input{CustomerName: "Cliente Beta"})
		req := httptest.NewRequest("PUT", "/deliveries/DEL002", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		service := new(MockDeliveryService)
		app := setupApp(service)

		service.On("Update", "DEL999", mock.AnythingOfType("domain.Input")).Return(domain.Delivery{}, registry.ErrNotFound).Once()

		body, _ := json.Marshal(domain.Input{})
		req := httptest.NewRequest("PUT", "/deliveries/DEL999", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeliveryHandler_Delete(t *testing.T) {
	t.Run("Deleted", func(t *testing.T) {
		service := new(MockDeliveryService)
		app := setupApp(service)

		service.On("Delete", "DEL001").Return(nil).Once()

		req := httptest.NewRequest("DELETE", "/deliveries/DEL001", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		service := new(MockDeliveryService)
		app := setupApp(service)

		service.On("Delete", "DEL999").Return(registry.ErrNotFound).Once()

		req := httptest.NewRequest("DELETE", "/deliveries/DEL999", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeliveryHandler_Export(t *testing.T) {
	service := new(MockDeliveryService)
	app := setupApp(service)

	csvData := []byte("ID,Cliente\nDEL001,Empresa Alpha\n")
	service.On("ExportCSV", ports.ListQuery{}).Return(csvData, nil).Once()

	req := httptest.NewRequest("GET", "/deliveries/export", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "entregas.csv")

	payload, _ := io.ReadAll(resp.Body)
	assert.Equal(t, csvData, payload)
}
