package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tracksolutions/internal/core/registry"
	"tracksolutions/internal/features/companies/domain"
	"tracksolutions/internal/features/companies/ports"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCompanyService is a mock implementation of ports.CompanyService
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) List(query ports.ListQuery) []domain.TransportCompany {
	args := m.Called(query)
	return args.Get(0).([]domain.TransportCompany)
}

func (m *MockCompanyService) Create(input domain.Input) (domain.TransportCompany, error) {
	args := m.Called(input)
	return args.Get(0).(domain.TransportCompany), args.Error(1)
}

func (m *MockCompanyService) Update(id string, input domain.Input) (domain.TransportCompany, error) {
	args := m.Called(id, input)
	return args.Get(0).(domain.TransportCompany), args.Error(1)
}

func (m *MockCompanyService) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func setupApp(service *MockCompanyService) *fiber.App {
	app := fiber.New()
	handler := NewCompanyHandler(service)

	app.Get("/companies", handler.List)
	app.Post("/companies", handler.Create)
	app.Put("/companies/:id", handler.Update)
	app.Delete("/companies/:id", handler.Delete)

	return app
}

func TestCompanyHandler_Create_BadCNPJ(t *testing.T) {
	service := new(MockCompanyService)
	app := setupApp(service)

	verr := &registry.ValidationError{Fields: []string{"cnpj"}}
	service.On("Create", mock.AnythingOfType("domain.Input")).Return(domain.TransportCompany{}, verr).Once()

	body, _ := json.Marshal(domain.Input{CNPJ: "12345678000199"})
	req := httptest.NewRequest("POST", "/companies", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	payload, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(payload), "CNPJ")
}

func TestCompanyHandler_List(t *testing.T) {
	service := new(MockCompanyService)
	app := setupApp(service)

	expected := []domain.TransportCompany{{ID: "COMP001", Name: "Logística Rápida Ltda."}}
	service.On("List", ports.ListQuery{Search: "rápida"}).Return(expected).Once()

	req := httptest.NewRequest("GET", "/companies?q=r%C3%A1pida", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	service.AssertExpectations(t)
}

func TestCompanyHandler_Delete_NotFound(t *testing.T) {
	service := new(MockCompanyService)
	app := setupApp(service)

	service.On("Delete", "COMP999").Return(registry.ErrNotFound).Once()

	req := httptest.NewRequest("DELETE", "/companies/COMP999", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
