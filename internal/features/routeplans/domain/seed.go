package domain

import "time"

func intPtr(n int) *int { return &n }

// Seed returns the demo routes the collection starts with.
func Seed() []Route {
	return []Route{
		{
			ID:                "ROT001",
			Name:              "Rota Centro - Manhã",
			DriverID:          "DRV001",
			Deliveries:        []string{"DEL001", "DEL003"},
			Status:            StatusEmAndamento,
			PlannedDate:       time.Date(2024, time.July, 28, 0, 0, 0, 0, time.UTC),
			EstimatedDuration: "3h 15m",
			TotalDistance:     "42 km",
			StartLocation:     "Depósito Central",
			EndLocation:       "Região Central",
			Notes:             "Priorizar entrega DEL001.",
			CreatedAt:         time.Date(2024, time.July, 27, 0, 0, 0, 0, time.UTC),
			Progress:          intPtr(60),
		},
		{
			ID:                "ROT002",
			Name:              "Rota Zona Sul - Tarde",
			DriverID:          "DRV002",
			Deliveries:        []string{"DEL002", "DEL004", "DEL005"},
			Status:            StatusPlanejada,
			PlannedDate:       time.Date(2024, time.July, 28, 0, 0, 0, 0, time.UTC),
			EstimatedDuration: "4h 00m",
			TotalDistance:     "65 km",
			StartLocation:     "Depósito Zona Sul",
			EndLocation:       "Bairros da Zona Sul",
			CreatedAt:         time.Date(2024, time.July, 27, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                "ROT003",
			Name:              "Rota Urgente - Noite",
			DriverID:          "DRV001",
			Deliveries:        []string{"DEL005"},
			Status:            StatusConcluida,
			PlannedDate:       time.Date(2024, time.July, 27, 0, 0, 0, 0, time.UTC),
			EstimatedDuration: "1h 30m",
			TotalDistance:     "22 km",
			StartLocation:     "Depósito Central",
			EndLocation:       "Cliente VIP",
			CreatedAt:         time.Date(2024, time.July, 26, 0, 0, 0, 0, time.UTC),
			Progress:          intPtr(100),
		},
	}
}
