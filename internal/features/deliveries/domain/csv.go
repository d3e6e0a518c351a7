package domain

import (
	"bytes"
	"encoding/csv"
)

// csvHeader mirrors the column layout the management screen exports.
var csvHeader = []string{"ID", "Cliente", "Endereço", "Status", "Motorista", "Data Entrega", "Itens", "Notas", "Criado Em"}

const exportDateLayout = "02/01/2006"

// ExportCSV renders the deliveries as a CSV document. Fields containing
// commas are quoted, dates use DD/MM/YYYY, and an unassigned driver is
// rendered as N/A.
func ExportCSV(deliveries []Delivery) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, d := range deliveries {
		driver := d.Driver
		if driver == "" {
			driver = "N/A"
		}
		row := []string{
			d.ID,
			d.CustomerName,
			d.Address,
			string(d.Status),
			driver,
			d.DeliveryDate.Format(exportDateLayout),
			d.Items,
			d.Notes,
			d.CreatedAt.Format(exportDateLayout),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
