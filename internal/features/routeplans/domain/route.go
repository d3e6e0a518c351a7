package domain

import (
	"time"

	"tracksolutions/internal/core/registry"
)

// Status is the lifecycle state of a route.
type Status string

const (
	StatusPlanejada   Status = "Planejada"
	StatusEmAndamento Status = "Em Andamento"
	StatusConcluida   Status = "Concluída"
	StatusCancelada   Status = "Cancelada"
)

// Statuses lists every route status, in display order.
func Statuses() []Status {
	return []Status{StatusPlanejada, StatusEmAndamento, StatusConcluida, StatusCancelada}
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

// Route groups deliveries under one planned trip.
type Route struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	DriverID          string    `json:"driverId,omitempty"`
	Deliveries        []string  `json:"deliveries"`
	Status            Status    `json:"status"`
	PlannedDate       time.Time `json:"plannedDate"`
	EstimatedDuration string    `json:"estimatedDuration,omitempty"`
	TotalDistance     string    `json:"totalDistance,omitempty"`
	StartLocation     string    `json:"startLocation"`
	EndLocation       string    `json:"endLocation"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	// Progress is the completion percentage, tracked while the route is
	// underway; see Normalize for how other statuses treat it.
	Progress *int `json:"progress,omitempty"`
}

// RecordID implements registry.Record.
func (r Route) RecordID() string { return r.ID }

// Input is the draft a create or edit dialog submits.
type Input struct {
	Name              string    `json:"name"`
	DriverID          string    `json:"driverId"`
	Deliveries        []string  `json:"deliveries"`
	Status            Status    `json:"status"`
	PlannedDate       time.Time `json:"plannedDate"`
	EstimatedDuration string    `json:"estimatedDuration"`
	TotalDistance     string    `json:"totalDistance"`
	StartLocation     string    `json:"startLocation"`
	EndLocation       string    `json:"endLocation"`
	Notes             string    `json:"notes"`
	Progress          *int      `json:"progress"`
}

// Validate checks the draft's required fields. A route must carry at least
// one delivery id at save time.
func (in Input) Validate() error {
	var c registry.Check
	c.Require("name", in.Name)
	c.RequireTime("plannedDate", in.PlannedDate)
	c.Field("deliveries", len(in.Deliveries) > 0)
	c.Require("startLocation", in.StartLocation)
	c.Require("endLocation", in.EndLocation)
	if in.Status != "" {
		c.Field("status", in.Status.Valid())
	}
	if in.Progress != nil {
		c.Field("progress", *in.Progress >= 0 && *in.Progress <= 100)
	}
	return c.Err()
}

// Normalize reconciles progress with status on save: progress is carried
// only while the route is underway, a concluded route is pinned at 100,
// and every other status drops it.
func (r *Route) Normalize() {
	switch r.Status {
	case StatusEmAndamento:
	case StatusConcluida:
		done := 100
		r.Progress = &done
	default:
		r.Progress = nil
	}
}

// View exposes routes to the generic filter.
var View = registry.View[Route]{
	SearchFields: func(r Route) []string {
		return []string{r.Name, r.ID, r.StartLocation, r.EndLocation}
	},
	Facets: func(r Route) map[string]string {
		return map[string]string{"status": string(r.Status)}
	},
}
