package domain

import (
	"regexp"
	"time"

	"tracksolutions/internal/core/registry"
)

// Status is the registration state of a transport company.
type Status string

const (
	StatusAtiva    Status = "Ativa"
	StatusInativa  Status = "Inativa"
	StatusPendente Status = "Pendente"
)

// Statuses lists every company status, in display order.
func Statuses() []Status {
	return []Status{StatusAtiva, StatusInativa, StatusPendente}
}

// Valid reports whether the status is a known one.
func (s Status) Valid() bool {
	for _, known := range Statuses() {
		if s == known {
			return true
		}
	}
	return false
}

// cnpjPattern is the punctuated Brazilian company registration format,
// XX.XXX.XXX/XXXX-XX. Digits without punctuation are rejected.
var cnpjPattern = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)

// ValidCNPJ reports whether the value matches the required CNPJ format.
func ValidCNPJ(cnpj string) bool {
	return cnpjPattern.MatchString(cnpj)
}

// TransportCompany is a partner carrier ("transportadora").
type TransportCompany struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	CNPJ            string    `json:"cnpj"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Address         string    `json:"address"`
	City            string    `json:"city"`
	State           string    `json:"state"`
	Status          Status    `json:"status"`
	LogoURL         string    `json:"logoUrl,omitempty"`
	ResponsibleName string    `json:"responsibleName"`
	DriverCount     int       `json:"driverCount"`
	ActiveRoutes    int       `json:"activeRoutes"`
	CreatedAt       time.Time `json:"createdAt"`
}

// RecordID implements registry.Record.
func (c TransportCompany) RecordID() string { return c.ID }

// Input is the draft a create or edit dialog submits.
type Input struct {
	Name            string `json:"name"`
	CNPJ            string `json:"cnpj"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	City            string `json:"city"`
	State           string `json:"state"`
	Status          Status `json:"status"`
	LogoURL         string `json:"logoUrl"`
	ResponsibleName string `json:"responsibleName"`
	DriverCount     int    `json:"driverCount"`
	ActiveRoutes    int    `json:"activeRoutes"`
}

// Validate checks the draft's required fields and the CNPJ format.
// Any violation aborts the save.
func (in Input) Validate() error {
	var c registry.Check
	c.Require("name", in.Name)
	c.Require("cnpj", in.CNPJ)
	c.Require("email", in.Email)
	c.Require("phone", in.Phone)
	c.Require("address", in.Address)
	c.Require("city", in.City)
	c.Require("state", in.State)
	c.Require("responsibleName", in.ResponsibleName)
	if in.CNPJ != "" {
		c.Field("cnpj", ValidCNPJ(in.CNPJ))
	}
	if in.Status != "" {
		c.Field("status", in.Status.Valid())
	}
	return c.Err()
}

// View exposes companies to the generic filter.
var View = registry.View[TransportCompany]{
	SearchFields: func(c TransportCompany) []string {
		return []string{c.ID, c.Name, c.CNPJ, c.Email, c.City}
	},
	Facets: func(c TransportCompany) map[string]string {
		return map[string]string{"status": string(c.Status)}
	},
}
