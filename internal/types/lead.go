package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LeadSource string

const (
	LeadSourceWeb      LeadSource = "web"
	LeadSourceReferral LeadSource = "referral"
	LeadSourceEvent    LeadSource = "event"
	LeadSourceColdCall LeadSource = "cold_call"
	LeadSourceOther    LeadSource = "other"
)

func IsValidLeadSource(s LeadSource) bool {
	switch s {
	case LeadSourceWeb, LeadSourceReferral, LeadSourceEvent, LeadSourceColdCall, LeadSourceOther:
		return true
	default:
		return false
	}
}

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusLost      LeadStatus = "lost"
)

func IsValidLeadStatus(s LeadStatus) bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusConverted, LeadStatusLost:
		return true
	default:
		return false
	}
}

// CanTransitionLeadStatus encodes the lead funnel. Converted and lost
// are terminal; everything else may advance forward or be lost.
func CanTransitionLeadStatus(from, to LeadStatus) bool {
	if from == to {
		return false
	}
	switch from {
	case LeadStatusNew:
		return to == LeadStatusContacted || to == LeadStatusQualified || to == LeadStatusLost
	case LeadStatusContacted:
		return to == LeadStatusQualified || to == LeadStatusLost
	case LeadStatusQualified:
		return to == LeadStatusConverted || to == LeadStatusLost
	default:
		return false
	}
}

type Lead struct {
	ID                  uuid.UUID       `json:"id"`
	FirstName           string          `json:"first_name"`
	LastName            string          `json:"last_name"`
	Company             string          `json:"company"`
	Email               string          `json:"email"`
	Phone               string          `json:"phone"`
	Source              LeadSource      `json:"source"`
	Status              LeadStatus      `json:"status"`
	EstimatedValue      decimal.Decimal `json:"estimated_value"`
	Notes               string          `json:"notes"`
	ConvertedCustomerID *uuid.UUID      `json:"converted_customer_id,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func (l *Lead) FullName() string {
	return strings.TrimSpace(l.FirstName + " " + l.LastName)
}

func (l *Lead) DisplayName() string {
	if strings.TrimSpace(l.Company) != "" {
		return strings.TrimSpace(l.Company)
	}
	return l.FullName()
}

// IsOpen reports whether the lead still counts toward the pipeline.
func (l *Lead) IsOpen() bool {
	return l.Status != LeadStatusConverted && l.Status != LeadStatusLost
}
