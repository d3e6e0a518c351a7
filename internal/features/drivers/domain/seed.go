package domain

import "time"

// Seed returns the demo drivers the collection starts with.
func Seed() []Driver {
	return []Driver{
		{
			ID:                  "DRV001",
			Name:                "Carlos Alberto",
			Phone:               "(11) 98765-4321",
			Email:               "carlos.alberto@example.com",
			Status:              StatusAtivo,
			Vehicle:             "Moto Honda CG 160 - XYZ1234",
			CompanyID:           "COMP001",
			DeliveriesCompleted: 125,
			AverageRating:       4.8,
			CreatedAt:           time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                  "DRV002",
			Name:                "Fernanda Lima",
			Phone:               "(21) 91234-5678",
			Email:               "fernanda.lima@example.com",
			Status:              StatusInativo,
			Vehicle:             "Van Fiat Ducato - ABC5678",
			CompanyID:           "COMP002",
			DeliveriesCompleted: 88,
			AverageRating:       4.5,
			CreatedAt:           time.Date(2023, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                  "DRV003",
			Name:                "Ricardo Souza",
			Phone:               "(31) 99999-8888",
			Email:               "ricardo.souza@example.com",
			Status:              StatusFerias,
			Vehicle:             "Carro Fiat Strada - DEF9012",
			CompanyID:           "COMP001",
			DeliveriesCompleted: 210,
			AverageRating:       4.9,
			CreatedAt:           time.Date(2022, time.November, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}
