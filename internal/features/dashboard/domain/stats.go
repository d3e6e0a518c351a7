package domain

// Stats is the snapshot the dashboard screen renders.
type Stats struct {
	Deliveries        CountByStatus `json:"deliveries"`
	Routes            CountByStatus `json:"routes"`
	ActiveDrivers     int           `json:"activeDrivers"`
	TotalDrivers      int           `json:"totalDrivers"`
	ActiveCompanies   int           `json:"activeCompanies"`
	TotalCompanies    int           `json:"totalCompanies"`
	DeliveriesEnRoute int           `json:"deliveriesEnRoute"`
}

// CountByStatus is a total plus a per-status breakdown.
type CountByStatus struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
}
