package ports

import (
	"io"

	"tracksolutions/internal/features/imports/domain"
)

// ImportService defines the primary port for the CSV import surface.
type ImportService interface {
	// Template returns the header-only CSV users fill in.
	Template() []byte
	// Import parses a CSV stream against the template, creates the valid
	// rows as deliveries and reports the rejected ones.
	Import(r io.Reader) (domain.Report, error)
}
