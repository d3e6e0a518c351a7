package ports

import "tracksolutions/internal/features/routeplans/domain"

// ListQuery narrows the route listing.
type ListQuery struct {
	// Search is a free-text query over name, id and the two endpoints.
	Search string
	// Status filters on an exact status; empty or "all" keeps every status.
	Status string
}

// RouteService defines the primary port for route operations.
type RouteService interface {
	List(query ListQuery) []domain.Route
	Create(input domain.Input) (domain.Route, error)
	Update(id string, input domain.Input) (domain.Route, error)
	Delete(id string) error
}
