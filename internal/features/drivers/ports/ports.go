package ports

import "tracksolutions/internal/features/drivers/domain"

// ListQuery narrows the driver listing.
type ListQuery struct {
	// Search is a free-text query over name, email, phone, vehicle and id.
	Search string
	// Status filters on an exact status; empty or "all" keeps every status.
	Status string
}

// DriverService defines the primary port for driver operations.
type DriverService interface {
	List(query ListQuery) []domain.Driver
	Create(input domain.Input) (domain.Driver, error)
	Update(id string, input domain.Input) (domain.Driver, error)
	Delete(id string) error
}
