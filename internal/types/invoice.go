package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusSent          InvoiceStatus = "sent"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusOverdue       InvoiceStatus = "overdue"
	InvoiceStatusCancelled     InvoiceStatus = "cancelled"
)

func IsValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPartiallyPaid,
		InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	default:
		return false
	}
}

// AcceptsPayment reports whether a payment may be recorded in the
// invoice's current state.
func (s InvoiceStatus) AcceptsPayment() bool {
	switch s {
	case InvoiceStatusSent, InvoiceStatusPartiallyPaid, InvoiceStatusOverdue:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCheck    PaymentMethod = "check"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodOther    PaymentMethod = "other"
)

func IsValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCheck, PaymentMethodCard, PaymentMethodTransfer, PaymentMethodOther:
		return true
	default:
		return false
	}
}

type Payment struct {
	ID         uuid.UUID       `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Method     PaymentMethod   `json:"method"`
	ReceivedAt time.Time       `json:"received_at"`
	Reference  string          `json:"reference"`
	Notes      string          `json:"notes"`
}

type Invoice struct {
	ID         uuid.UUID       `json:"id"`
	Number     string          `json:"number"`
	CustomerID uuid.UUID       `json:"customer_id"`
	ProjectID  *uuid.UUID      `json:"project_id,omitempty"`
	EstimateID *uuid.UUID      `json:"estimate_id,omitempty"`
	Items      []LineItem      `json:"items"`
	TaxRate    decimal.Decimal `json:"tax_rate"`
	Status     InvoiceStatus   `json:"status"`
	IssueDate  time.Time       `json:"issue_date"`
	DueDate    time.Time       `json:"due_date"`
	Payments   []Payment       `json:"payments"`
	Notes      string          `json:"notes"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (inv *Invoice) Subtotal() decimal.Decimal {
	return sumLineItems(inv.Items)
}

func (inv *Invoice) TaxAmount() decimal.Decimal {
	return taxOn(inv.Subtotal(), inv.TaxRate)
}

func (inv *Invoice) Total() decimal.Decimal {
	return inv.Subtotal().Add(inv.TaxAmount())
}

func (inv *Invoice) PaidTotal() decimal.Decimal {
	paid := decimal.Zero
	for i := range inv.Payments {
		paid = paid.Add(inv.Payments[i].Amount)
	}
	return paid
}

func (inv *Invoice) Balance() decimal.Decimal {
	return inv.Total().Sub(inv.PaidTotal())
}

// IsOverdue is true for unpaid, uncancelled invoices past their due
// date, regardless of whether the overdue sweep has run yet.
func (inv *Invoice) IsOverdue(now time.Time) bool {
	switch inv.Status {
	case InvoiceStatusSent, InvoiceStatusPartiallyPaid, InvoiceStatusOverdue:
		return now.After(inv.DueDate)
	default:
		return false
	}
}
