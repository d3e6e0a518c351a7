package service

import (
	"time"

	"tracksolutions/internal/core/registry"
	"tracksolutions/internal/features/deliveries/domain"
	"tracksolutions/internal/features/deliveries/ports"
)

// DeliveryServiceImpl implements ports.DeliveryService over an in-memory store.
type DeliveryServiceImpl struct {
	store *registry.Store[domain.Delivery]
}

// NewDeliveryService creates a DeliveryServiceImpl backed by the given store.
func NewDeliveryService(store *registry.Store[domain.Delivery]) *DeliveryServiceImpl {
	return &DeliveryServiceImpl{store: store}
}

// NewSeededStore creates the delivery store preloaded with the demo data.
func NewSeededStore() *registry.Store[domain.Delivery] {
	return registry.NewStore("DEL", domain.Seed())
}

// List derives the filtered view for the query, preserving collection order.
func (s *DeliveryServiceImpl) List(query ports.ListQuery) []domain.Delivery {
	return domain.View.Apply(s.store.List(), query.Search, map[string]string{
		"status": query.Status,
		"date":   query.Date,
	})
}

// Create validates the draft, assigns a fresh id and creation time, and
// prepends the delivery to the collection.
func (s *DeliveryServiceImpl) Create(input domain.Input) (domain.Delivery, error) {
	if err := input.Validate(); err != nil {
		return domain.Delivery{}, err
	}

	delivery := fromInput(input)
	delivery.ID = s.store.NextID()
	delivery.CreatedAt = time.Now()

	s.store.Insert(delivery)
	return delivery, nil
}

// Update validates the draft and replaces the stored record, keeping the
// original id and creation time.
func (s *DeliveryServiceImpl) Update(id string, input domain.Input) (domain.Delivery, error) {
	if err := input.Validate(); err != nil {
		return domain.Delivery{}, err
	}

	existing, ok := s.store.Get(id)
	if !ok {
		return domain.Delivery{}, registry.ErrNotFound
	}

	delivery := fromInput(input)
	delivery.ID = existing.ID
	delivery.CreatedAt = existing.CreatedAt

	if err := s.store.Replace(delivery); err != nil {
		return domain.Delivery{}, err
	}
	return delivery, nil
}

// Delete removes the delivery with the given id.
func (s *DeliveryServiceImpl) Delete(id string) error {
	return s.store.Remove(id)
}

// ExportCSV renders the filtered view as CSV.
func (s *DeliveryServiceImpl) ExportCSV(query ports.ListQuery) ([]byte, error) {
	return domain.ExportCSV(s.List(query))
}

func fromInput(input domain.Input) domain.Delivery {
	status := input.Status
	if status == "" {
		status = domain.StatusPendente
	}
	return domain.Delivery{
		CustomerName: input.CustomerName,
		Address:      input.Address,
		Status:       status,
		Driver:       input.Driver,
		DeliveryDate: input.DeliveryDate,
		Items:        input.Items,
		Notes:        input.Notes,
	}
}
