package ports

import "tracksolutions/internal/features/companies/domain"

// ListQuery narrows the company listing.
type ListQuery struct {
	// Search is a free-text query over id, name, cnpj, email and city.
	Search string
	// Status filters on an exact status; empty or "all" keeps every status.
	Status string
}

// CompanyService defines the primary port for transport company operations.
type CompanyService interface {
	List(query ListQuery) []domain.TransportCompany
	Create(input domain.Input) (domain.TransportCompany, error)
	Update(id string, input domain.Input) (domain.TransportCompany, error)
	Delete(id string) error
}
