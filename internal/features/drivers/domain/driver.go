package domain

import (
	"time"

	"tracksolutions/internal/core/registry"
)

// Status is the availability state of a driver.
type Status string

const (
	StatusAtivo   Status = "Ativo"
	StatusInativo Status = "Inativo"
	StatusFerias  Status = "Férias"
)

// Statuses lists every driver status, in display order.
func Statuses() []Status {
	return []Status{StatusAtivo, StatusInativo, StatusFerias}
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

// Driver is a delivery driver ("entregador").
type Driver struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Phone               string    `json:"phone"`
	Email               string    `json:"email"`
	Status              Status    `json:"status"`
	Vehicle             string    `json:"vehicle"`
	CompanyID           string    `json:"companyId,omitempty"`
	AvatarURL           string    `json:"avatarUrl,omitempty"`
	DeliveriesCompleted int       `json:"deliveriesCompleted"`
	AverageRating       float64   `json:"averageRating"`
	CreatedAt           time.Time `json:"createdAt"`
}

// RecordID implements registry.Record.
func (d Driver) RecordID() string { return d.ID }

// Input is the draft a create or edit dialog submits.
type Input struct {
	Name                string  `json:"name"`
	Phone               string  `json:"phone"`
	Email               string  `json:"email"`
	Status              Status  `json:"status"`
	Vehicle             string  `json:"vehicle"`
	CompanyID           string  `json:"companyId"`
	AvatarURL           string  `json:"avatarUrl"`
	DeliveriesCompleted int     `json:"deliveriesCompleted"`
	AverageRating       float64 `json:"averageRating"`
}

// Validate checks the draft's required fields.
func (in Input) Validate() error {
	var c registry.Check
	c.Require("name", in.Name)
	c.Require("phone", in.Phone)
	c.Require("email", in.Email)
	c.Require("vehicle", in.Vehicle)
	if in.Status != "" {
		c.Field("status", in.Status.Valid())
	}
	return c.Err()
}

// View exposes drivers to the generic filter.
var View = registry.View[Driver]{
	SearchFields: func(d Driver) []string {
		return []string{d.Name, d.Email, d.Phone, d.Vehicle, d.ID}
	},
	Facets: func(d Driver) map[string]string {
		return map[string]string{"status": string(d.Status)}
	},
}
