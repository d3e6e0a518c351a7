package domain

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV_Header(t *testing.T) {
	data, err := ExportCSV(nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "ID,Cliente,Endereço,Status,Motorista,Data Entrega,Itens,Notas,Criado Em", lines[0])
}

// A field containing a comma must be quoted, and every row must carry as
// many fields as the header.
func TestExportCSV_QuotesCommaFields(t *testing.T) {
	deliveries := []Delivery{
		{
			ID:           "DEL001",
			CustomerName: "Empresa Alpha",
			Address:      "Rua das Palmeiras, 123, São Paulo, SP",
			Status:       StatusEmRota,
			Driver:       "João Silva",
			DeliveryDate: time.Date(2024, time.July, 25, 0, 0, 0, 0, time.UTC),
			Items:        "Caixa de eletrônicos",
			CreatedAt:    time.Date(2024, time.July, 20, 0, 0, 0, 0, time.UTC),
		},
	}

	data, err := ExportCSV(deliveries)
	require.NoError(t, err)

	raw := string(data)
	assert.Contains(t, raw, `"Rua das Palmeiras, 123, São Paulo, SP"`)

	records, err := csv.NewReader(strings.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, len(records[0]), len(records[1]))
}

func TestExportCSV_Formatting(t *testing.T) {
	deliveries := []Delivery{
		{
			ID:           "DEL002",
			CustomerName: "Cliente Beta",
			Address:      "Av. Central 456",
			Status:       StatusPendente,
			DeliveryDate: time.Date(2024, time.July, 26, 0, 0, 0, 0, time.UTC),
			Items:        "Documentos",
			CreatedAt:    time.Date(2024, time.July, 21, 0, 0, 0, 0, time.UTC),
		},
	}

	data, err := ExportCSV(deliveries)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	row := records[1]

	assert.Equal(t, "26/07/2024", row[5], "delivery date must be DD/MM/YYYY")
	assert.Equal(t, "21/07/2024", row[8], "creation date must be DD/MM/YYYY")
	assert.Equal(t, "N/A", row[4], "unassigned driver renders as N/A")
	assert.Equal(t, "", row[7], "empty notes stay empty")
}
