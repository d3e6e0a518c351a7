package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	deliveryports "tracksolutions/internal/features/deliveries/ports"
	"tracksolutions/internal/features/imports/domain"
)

// ErrBadFile is returned when the upload is not a CSV that follows the template.
var ErrBadFile = errors.New("file does not match the import template")

// ImportServiceImpl implements ports.ImportService on top of the
// delivery service, so imported rows obey the same rules as the
// create dialog.
type ImportServiceImpl struct {
	deliveries deliveryports.DeliveryService
}

// NewImportService creates an ImportServiceImpl.
func NewImportService(deliveries deliveryports.DeliveryService) *ImportServiceImpl {
	return &ImportServiceImpl{
		deliveries: deliveries,
	}
}

// Template returns the header-only CSV template.
func (s *ImportServiceImpl) Template() []byte {
	return domain.Template()
}

// Import reads the CSV stream row by row. The header must match the
// template exactly; data rows that fail parsing or validation are
// skipped and reported, never partially committed. A header-only file
// imports zero rows without error.
func (s *ImportServiceImpl) Import(r io.Reader) (domain.Report, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return domain.Report{}, fmt.Errorf("%w: missing header", ErrBadFile)
	}
	if err := domain.ValidateHeader(header); err != nil {
		return domain.Report{}, fmt.Errorf("%w: %s", ErrBadFile, err)
	}

	report := domain.Report{Errors: []domain.RowError{}}
	line := 1
	for {
		line++
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, domain.RowError{Line: line, Message: "malformed CSV row"})
			continue
		}

		input, err := domain.ParseRow(row)
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, domain.RowError{Line: line, Message: err.Error()})
			continue
		}

		if _, err := s.deliveries.Create(input); err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, domain.RowError{Line: line, Message: err.Error()})
			continue
		}
		report.Imported++
	}

	return report, nil
}
