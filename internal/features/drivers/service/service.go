package service

import (
	"time"

	"tracksolutions/internal/core/registry"
	"tracksolutions/internal/features/drivers/domain"
	"tracksolutions/internal/features/drivers/ports"
)

// DriverServiceImpl implements ports.DriverService over an in-memory store.
type DriverServiceImpl struct {
	store *registry.Store[domain.Driver]
}

// NewDriverService creates a DriverServiceImpl backed by the given store.
func NewDriverService(store *registry.Store[domain.Driver]) *DriverServiceImpl {
	return &DriverServiceImpl{store: store}
}

// NewSeededStore creates the driver store preloaded with the demo data.
func NewSeededStore() *registry.Store[domain.Driver] {
	return registry.NewStore("DRV", domain.Seed())
}

// List derives the filtered view for the query.
func (s *DriverServiceImpl) List(query ports.ListQuery) []domain.Driver {
	return domain.View.Apply(s.store.List(), query.Search, map[string]string{
		"status": query.Status,
	})
}

// Create validates the draft, assigns a fresh id and creation time, and
// prepends the driver.
func (s *DriverServiceImpl) Create(input domain.Input) (domain.Driver, error) {
	if err := input.Validate(); err != nil {
		return domain.Driver{}, err
	}

	driver := fromInput(input)
	driver.ID = s.store.NextID()
	driver.CreatedAt = time.Now()

	s.store.Insert(driver)
	return driver, nil
}

// Update validates the draft and replaces the stored record, keeping the
// original id and creation time.
func (s *DriverServiceImpl) Update(id string, input domain.Input) (domain.Driver, error) {
	if err := input.Validate(); err != nil {
		return domain.Driver{}, err
	}

	existing, ok := s.store.Get(id)
	if !ok {
		return domain.Driver{}, registry.ErrNotFound
	}

	driver := fromInput(input)
	driver.ID = existing.ID
	driver.CreatedAt = existing.CreatedAt

	if err := s.store.Replace(driver); err != nil {
		return domain.Driver{}, err
	}
	return driver, nil
}

// Delete removes the driver with the given id.
func (s *DriverServiceImpl) Delete(id string) error {
	return s.store.Remove(id)
}

func fromInput(input domain.Input) domain.Driver {
	status := input.Status
	if status == "" {
		status = domain.StatusAtivo
	}
	return domain.Driver{
		Name:                input.Name,
		Phone:               input.Phone,
		Email:               input.Email,
		Status:              status,
		Vehicle:             input.Vehicle,
		CompanyID:           input.CompanyID,
		AvatarURL:           input.AvatarURL,
		DeliveriesCompleted: input.DeliveriesCompleted,
		AverageRating:       input.AverageRating,
	}
}
