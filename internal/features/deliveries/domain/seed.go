package domain

import "time"

// Seed returns the demo deliveries the collection starts with.
func Seed() []Delivery {
	return []Delivery{
		{
			ID:           "DEL001",
			CustomerName: "Empresa Alpha",
			Address:      "Rua das Palmeiras, 123, São Paulo, SP",
			Status:       StatusEmRota,
			Driver:       "João Silva",
			DeliveryDate: time.Date(2024, time.July, 25, 0, 0, 0, 0, time.UTC),
			Items:        "Caixa de eletrônicos",
			Notes:        "Entregar no 3º andar",
			CreatedAt:    time.Date(2024, time.July, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "DEL002",
			CustomerName: "Cliente Beta",
			Address:      "Av. Central, 456, Rio de Janeiro, RJ",
			Status:       StatusPendente,
			DeliveryDate: time.Date(2024, time.July, 26, 0, 0, 0, 0, time.UTC),
			Items:        "Documentos importantes",
			CreatedAt:    time.Date(2024, time.July, 21, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "DEL003",
			CustomerName: "Loja Gama",
			Address:      "Praça da Sé, 789, Salvador, BA",
			Status:       StatusEntregue,
			Driver:       "Maria Oliveira",
			DeliveryDate: time.Date(2024, time.July, 22, 0, 0, 0, 0, time.UTC),
			Items:        "Material de escritório",
			CreatedAt:    time.Date(2024, time.July, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "DEL004",
			CustomerName: "Indústria Delta",
			Address:      "Rodovia BR-101, Km 50, Curitiba, PR",
			Status:       StatusAtrasada,
			Driver:       "Carlos Pereira",
			DeliveryDate: time.Date(2024, time.July, 20, 0, 0, 0, 0, time.UTC),
			Items:        "Peças de reposição",
			Notes:        "Cliente ausente na primeira tentativa",
			CreatedAt:    time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}
