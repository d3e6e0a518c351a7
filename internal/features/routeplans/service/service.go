package service

import (
	"time"

	"tracksolutions/internal/core/registry"
	"tracksolutions/internal/features/routeplans/domain"
	"tracksolutions/internal/features/routeplans/ports"
)

// RouteServiceImpl implements ports.RouteService over an in-memory store.
type RouteServiceImpl struct {
	store *registry.Store[domain.Route]
}

// NewRouteService creates a RouteServiceImpl backed by the given store.
func NewRouteService(store *registry.Store[domain.Route]) *RouteServiceImpl {
	return &RouteServiceImpl{store: store}
}

// NewSeededStore creates the route store preloaded with the demo data.
func NewSeededStore() *registry.Store[domain.Route] {
	return registry.NewStore("ROT", domain.Seed())
}

// List derives the filtered view for the query.
func (s *RouteServiceImpl) List(query ports.ListQuery) []domain.Route {
	return domain.View.Apply(s.store.List(), query.Search, map[string]string{
		"status": query.Status,
	})
}

// Create validates the draft, assigns a fresh id and creation time, and
// prepends the route.
func (s *RouteServiceImpl) Create(input domain.Input) (domain.Route, error) {
	if err := input.Validate(); err != nil {
		return domain.Route{}, err
	}

	route := fromInput(input)
	route.ID = s.store.NextID()
	route.CreatedAt = time.Now()
	route.Normalize()

	s.store.Insert(route)
	return route, nil
}

// Update validates the draft and replaces the stored record, keeping the
// original id and creation time.
func (s *RouteServiceImpl) Update(id string, input domain.Input) (domain.Route, error) {
	if err := input.Validate(); err != nil {
		return domain.Route{}, err
	}

	existing, ok := s.store.Get(id)
	if !ok {
		return domain.Route{}, registry.ErrNotFound
	}

	route := fromInput(input)
	route.ID = existing.ID
	route.CreatedAt = existing.CreatedAt
	route.Normalize()

	if err := s.store.Replace(route); err != nil {
		return domain.Route{}, err
	}
	return route, nil
}

// Delete removes the route with the given id.
func (s *RouteServiceImpl) Delete(id string) error {
	return s.store.Remove(id)
}

func fromInput(input domain.Input) domain.Route {
	status := input.Status
	if status == "" {
		status = domain.StatusPlanejada
	}
	return domain.Route{
		Name:              input.Name,
		DriverID:          input.DriverID,
		Deliveries:        append([]string(nil), input.Deliveries...),
		Status:            status,
		PlannedDate:       input.PlannedDate,
		EstimatedDuration: input.EstimatedDuration,
		TotalDistance:     input.TotalDistance,
		StartLocation:     input.StartLocation,
		EndLocation:       input.EndLocation,
		Notes:             input.Notes,
		Progress:          input.Progress,
	}
}
