package service

import (
	"tracksolutions/internal/core/registry"
	companydomain "tracksolutions/internal/features/companies/domain"
	"tracksolutions/internal/features/dashboard/domain"
	deliverydomain "tracksolutions/internal/features/deliveries/domain"
	driverdomain "tracksolutions/internal/features/drivers/domain"
	routedomain "tracksolutions/internal/features/routeplans/domain"
)

// StatsServiceImpl implements ports.StatsService by scanning the entity
// stores. Collections are small and independent, so linear scans per
// request are fine.
type StatsServiceImpl struct {
	deliveries *registry.Store[deliverydomain.Delivery]
	routes     *registry.Store[routedomain.Route]
	drivers    *registry.Store[driverdomain.Driver]
	companies  *registry.Store[companydomain.TransportCompany]
}

// NewStatsService creates a StatsServiceImpl over the given stores.
func NewStatsService(
	deliveries *registry.Store[deliverydomain.Delivery],
	routes *registry.Store[routedomain.Route],
	drivers *registry.Store[driverdomain.Driver],
	companies *registry.Store[companydomain.TransportCompany],
) *StatsServiceImpl {
	return &StatsServiceImpl{
		deliveries: deliveries,
		routes:     routes,
		drivers:    drivers,
		companies:  companies,
	}
}

// Snapshot computes the current dashboard numbers.
func (s *StatsServiceImpl) Snapshot() domain.Stats {
	stats := domain.Stats{
		Deliveries: domain.CountByStatus{ByStatus: map[string]int{}},
		Routes:     domain.CountByStatus{ByStatus: map[string]int{}},
	}

	for _, d := range s.deliveries.List() {
		stats.Deliveries.Total++
		stats.Deliveries.ByStatus[string(d.Status)]++
		if d.Status == deliverydomain.StatusEmRota {
			stats.DeliveriesEnRoute++
		}
	}

	for _, r := range s.routes.List() {
		stats.Routes.Total++
		stats.Routes.ByStatus[string(r.Status)]++
	}

	for _, d := range s.drivers.List() {
		stats.TotalDrivers++
		if d.Status == driverdomain.StatusAtivo {
			stats.ActiveDrivers++
		}
	}

	for _, c := range s.companies.List() {
		stats.TotalCompanies++
		if c.Status == companydomain.StatusAtiva {
			stats.ActiveCompanies++
		}
	}

	return stats
}
