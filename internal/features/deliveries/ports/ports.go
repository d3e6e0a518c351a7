package ports

import "tracksolutions/internal/features/deliveries/domain"

// ListQuery narrows the delivery listing.
type ListQuery struct {
	// Search is a free-text query over customer, address, id and driver.
	Search string
	// Status filters on an exact status; empty or "all" keeps every status.
	Status string
	// Date filters on the delivery day, formatted YYYY-MM-DD.
	Date string
}

// DeliveryService defines the primary port for delivery operations.
type DeliveryService interface {
	List(query ListQuery) []domain.Delivery
	Create(input domain.Input) (domain.Delivery, error)
	Update(id string, input domain.Input) (domain.Delivery, error)
	Delete(id string) error
	ExportCSV(query ListQuery) ([]byte, error)
}
