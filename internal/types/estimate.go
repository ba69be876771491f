package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusSent     EstimateStatus = "sent"
	EstimateStatusAccepted EstimateStatus = "accepted"
	EstimateStatusRejected EstimateStatus = "rejected"
	EstimateStatusExpired  EstimateStatus = "expired"
)

func IsValidEstimateStatus(s EstimateStatus) bool {
	switch s {
	case EstimateStatusDraft, EstimateStatusSent, EstimateStatusAccepted, EstimateStatusRejected, EstimateStatusExpired:
		return true
	default:
		return false
	}
}

// CanTransitionEstimateStatus: drafts are sent, sent estimates are
// decided or expire. Accepted, rejected and expired are terminal.
func CanTransitionEstimateStatus(from, to EstimateStatus) bool {
	if from == to {
		return false
	}
	switch from {
	case EstimateStatusDraft:
		return to == EstimateStatusSent
	case EstimateStatusSent:
		return to == EstimateStatusAccepted || to == EstimateStatusRejected || to == EstimateStatusExpired
	default:
		return false
	}
}

type Estimate struct {
	ID         uuid.UUID       `json:"id"`
	Number     string          `json:"number"`
	CustomerID uuid.UUID       `json:"customer_id"`
	ProjectID  *uuid.UUID      `json:"project_id,omitempty"`
	Items      []LineItem      `json:"items"`
	TaxRate    decimal.Decimal `json:"tax_rate"`
	Status     EstimateStatus  `json:"status"`
	IssueDate  time.Time       `json:"issue_date"`
	ValidUntil time.Time       `json:"valid_until"`
	Notes      string          `json:"notes"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (e *Estimate) Subtotal() decimal.Decimal {
	return sumLineItems(e.Items)
}

func (e *Estimate) TaxAmount() decimal.Decimal {
	return taxOn(e.Subtotal(), e.TaxRate)
}

func (e *Estimate) Total() decimal.Decimal {
	return e.Subtotal().Add(e.TaxAmount())
}

func (e *Estimate) IsExpired(now time.Time) bool {
	if e.Status == EstimateStatusExpired {
		return true
	}
	return e.Status == EstimateStatusSent && now.After(e.ValidUntil)
}
