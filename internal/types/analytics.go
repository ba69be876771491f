package types

import (
	"github.com/shopspring/decimal"
)

// DashboardSummary is the landing-page aggregate, re-derived from the
// full collections on every request.
type DashboardSummary struct {
	CustomersTotal    int             `json:"customers_total"`
	CustomersByStatus map[string]int  `json:"customers_by_status"`
	OpenLeads         int             `json:"open_leads"`
	PipelineValue     decimal.Decimal `json:"pipeline_value"`
	LeadConversion    float64         `json:"lead_conversion_rate"`
	ActiveProjects    int             `json:"active_projects"`
	InvoicedTotal     decimal.Decimal `json:"invoiced_total"`
	PaidTotal         decimal.Decimal `json:"paid_total"`
	OutstandingTotal  decimal.Decimal `json:"outstanding_total"`
	OverdueTotal      decimal.Decimal `json:"overdue_total"`
	OverdueCount      int             `json:"overdue_count"`
}

// RevenueMonth is one bucket of the paid-revenue trend.
type RevenueMonth struct {
	Month   string          `json:"month"` // YYYY-MM
	Revenue decimal.Decimal `json:"revenue"`
	Delta   decimal.Decimal `json:"delta"` // change vs previous bucket
}

type PipelineStage struct {
	Status LeadStatus      `json:"status"`
	Count  int             `json:"count"`
	Value  decimal.Decimal `json:"value"`
}

type CustomerRevenue struct {
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Invoiced     decimal.Decimal `json:"invoiced"`
	Paid         decimal.Decimal `json:"paid"`
}

type ProjectStatusCount struct {
	Status ProjectStatus `json:"status"`
	Count  int           `json:"count"`
}
