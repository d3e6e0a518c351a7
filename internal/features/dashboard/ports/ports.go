package ports

import "tracksolutions/internal/features/dashboard/domain"

// StatsService defines the primary port for dashboard statistics.
type StatsService interface {
	Snapshot() domain.Stats
}
