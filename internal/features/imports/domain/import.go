package domain

import (
	"fmt"
	"strings"
	"time"

	deliverydomain "tracksolutions/internal/features/deliveries/domain"
)

// rowDateLayout is the delivery date format the import template asks for.
const rowDateLayout = "2006-01-02"

// TemplateHeader lists the import template columns, in order.
var TemplateHeader = []string{
	"customerName", "address", "deliveryDate", "items", "notes", "driverId", "status",
}

// Template returns the downloadable header-only CSV template.
func Template() []byte {
	return []byte(strings.Join(TemplateHeader, ",") + "\n")
}

// RowError reports why one data row was skipped. Line is 1-based and
// counts the header, matching what a spreadsheet shows.
type RowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// Report summarizes an import run.
type Report struct {
	Imported int        `json:"imported"`
	Skipped  int        `json:"skipped"`
	Errors   []RowError `json:"errors"`
}

// ValidateHeader checks that the uploaded file starts with the template header.
func ValidateHeader(header []string) error {
	if len(header) != len(TemplateHeader) {
		return fmt.Errorf("expected %d columns, got %d", len(TemplateHeader), len(header))
	}
	for i, name := range TemplateHeader {
		if strings.TrimSpace(header[i]) != name {
			return fmt.Errorf("column %d must be %q, got %q", i+1, name, header[i])
		}
	}
	return nil
}

// ParseRow converts one data row into a delivery draft. Field-level
// validation stays with the delivery rules; this only shapes the row.
func ParseRow(row []string) (deliverydomain.Input, error) {
	if len(row) != len(TemplateHeader) {
		return deliverydomain.Input{}, fmt.Errorf("expected %d columns, got %d", len(TemplateHeader), len(row))
	}

	input := deliverydomain.Input{
		CustomerName: strings.TrimSpace(row[0]),
		Address:      strings.TrimSpace(row[1]),
		Items:        strings.TrimSpace(row[3]),
		Notes:        strings.TrimSpace(row[4]),
		Driver:       strings.TrimSpace(row[5]),
		Status:       deliverydomain.Status(strings.TrimSpace(row[6])),
	}

	if raw := strings.TrimSpace(row[2]); raw != "" {
		date, err := time.Parse(rowDateLayout, raw)
		if err != nil {
			return deliverydomain.Input{}, fmt.Errorf("deliveryDate must be YYYY-MM-DD, got %q", raw)
		}
		input.DeliveryDate = date
	}

	return input, nil
}
