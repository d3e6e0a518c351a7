package domain

import "time"

// Seed returns the demo companies the collection starts with.
func Seed() []TransportCompany {
	return []TransportCompany{
		{
			ID:              "COMP001",
			Name:            "Logística Rápida Ltda.",
			CNPJ:            "12.345.678/0001-99",
			Email:           "contato@logisticarapida.com.br",
			Phone:           "(11) 3333-4444",
			Address:         "Rua das Indústrias, 500",
			City:            "São Paulo",
			State:           "SP",
			Status:          StatusAtiva,
			ResponsibleName: "Ana Pereira",
			DriverCount:     15,
			ActiveRoutes:    8,
			CreatedAt:       time.Date(2022, time.January, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:              "COMP002",
			Name:            "Transportes Veloz S.A.",
			CNPJ:            "98.765.432/0001-11",
			Email:           "adm@veloztrans.com",
			Phone:           "(21) 2222-1111",
			Address:         "Av. Brasil, 15000",
			City:            "Rio de Janeiro",
			State:           "RJ",
			Status:          StatusPendente,
			ResponsibleName: "Marcos Rocha",
			DriverCount:     8,
			ActiveRoutes:    3,
			CreatedAt:       time.Date(2023, time.June, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:              "COMP003",
			Name:            "Cargas Sul Transportadora",
			CNPJ:            "55.444.333/0001-22",
			Email:           "financeiro@cargassul.com",
			Phone:           "(51) 3030-2020",
			Address:         "Rodovia RS-118, Km 10",
			City:            "Porto Alegre",
			State:           "RS",
			Status:          StatusInativa,
			ResponsibleName: "Juliana Costa",
			DriverCount:     22,
			ActiveRoutes:    0,
			CreatedAt:       time.Date(2021, time.September, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}
