package domain

import (
	"time"

	"tracksolutions/internal/core/registry"
)

// Status is the lifecycle state of a delivery.
type Status string

const (
	StatusPendente  Status = "Pendente"
	StatusEmRota    Status = "Em Rota"
	StatusEntregue  Status = "Entregue"
	StatusAtrasada  Status = "Atrasada"
	StatusCancelada Status = "Cancelada"
)

// Statuses lists every delivery status, in display order.
func Statuses() []Status {
	return []Status{StatusPendente, StatusEmRota, StatusEntregue, StatusAtrasada, StatusCancelada}
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

// Delivery is one shipment to a customer.
type Delivery struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Address      string    `json:"address"`
	Status       Status    `json:"status"`
	Driver       string    `json:"driver,omitempty"`
	DeliveryDate time.Time `json:"deliveryDate"`
	Items        string    `json:"items"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RecordID implements registry.Record.
func (d Delivery) RecordID() string { return d.ID }

// Input is the draft a create or edit dialog submits.
type Input struct {
	CustomerName string    `json:"customerName"`
	Address      string    `json:"address"`
	Status       Status    `json:"status"`
	Driver       string    `json:"driver"`
	DeliveryDate time.Time `json:"deliveryDate"`
	Items        string    `json:"items"`
	Notes        string    `json:"notes"`
}

// Validate checks the draft's required fields. It fails closed: any
// violation aborts the save.
func (in Input) Validate() error {
	var c registry.Check
	c.Require("customerName", in.CustomerName)
	c.Require("address", in.Address)
	c.Require("items", in.Items)
	c.RequireTime("deliveryDate", in.DeliveryDate)
	if in.Status != "" {
		c.Field("status", in.Status.Valid())
	}
	return c.Err()
}

// View exposes deliveries to the generic filter: free text probes
// customer, address, id and driver; facets are status and the delivery day.
var View = registry.View[Delivery]{
	SearchFields: func(d Delivery) []string {
		return []string{d.CustomerName, d.Address, d.ID, d.Driver}
	},
	Facets: func(d Delivery) map[string]string {
		return map[string]string{
			"status": string(d.Status),
			"date":   d.DeliveryDate.Format("2006-01-02"),
		}
	},
}
