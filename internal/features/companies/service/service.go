package service

import (
	"strings"
	"time"

	"tracksolutions/internal/core/registry"
	"tracksolutions/internal/features/companies/domain"
	"tracksolutions/internal/features/companies/ports"
)

// CompanyServiceImpl implements ports.CompanyService over an in-memory store.
type CompanyServiceImpl struct {
	store *registry.Store[domain.TransportCompany]
}

// NewCompanyService creates a CompanyServiceImpl backed by the given store.
func NewCompanyService(store *registry.Store[domain.TransportCompany]) *CompanyServiceImpl {
	return &CompanyServiceImpl{store: store}
}

// NewSeededStore creates the company store preloaded with the demo data.
func NewSeededStore() *registry.Store[domain.TransportCompany] {
	return registry.NewStore("COMP", domain.Seed())
}

// List derives the filtered view for the query.
func (s *CompanyServiceImpl) List(query ports.ListQuery) []domain.TransportCompany {
	return domain.View.Apply(s.store.List(), query.Search, map[string]string{
		"status": query.Status,
	})
}

// Create validates the draft, assigns a fresh id and creation time, and
// prepends the company.
func (s *CompanyServiceImpl) Create(input domain.Input) (domain.TransportCompany, error) {
	if err := input.Validate(); err != nil {
		return domain.TransportCompany{}, err
	}

	company := fromInput(input)
	company.ID = s.store.NextID()
	company.CreatedAt = time.Now()

	s.store.Insert(company)
	return company, nil
}

// Update validates the draft and replaces the stored record, keeping the
// original id and creation time.
func (s *CompanyServiceImpl) Update(id string, input domain.Input) (domain.TransportCompany, error) {
	if err := input.Validate(); err != nil {
		return domain.TransportCompany{}, err
	}

	existing, ok := s.store.Get(id)
	if !ok {
		return domain.TransportCompany{}, registry.ErrNotFound
	}

	company := fromInput(input)
	company.ID = existing.ID
	company.CreatedAt = existing.CreatedAt

	if err := s.store.Replace(company); err != nil {
		return domain.TransportCompany{}, err
	}
	return company, nil
}

// Delete removes the company with the given id.
func (s *CompanyServiceImpl) Delete(id string) error {
	return s.store.Remove(id)
}

func fromInput(input domain.Input) domain.TransportCompany {
	status := input.Status
	if status == "" {
		status = domain.StatusPendente
	}
	return domain.TransportCompany{
		Name:            input.Name,
		CNPJ:            input.CNPJ,
		Email:           input.Email,
		Phone:           input.Phone,
		Address:         input.Address,
		City:            input.City,
		State:           strings.ToUpper(input.State),
		Status:          status,
		LogoURL:         input.LogoURL,
		ResponsibleName: input.ResponsibleName,
		DriverCount:     input.DriverCount,
		ActiveRoutes:    input.ActiveRoutes,
	}
}
