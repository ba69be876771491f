package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
	CustomerStatusProspect CustomerStatus = "prospect"
)

func IsValidCustomerStatus(s CustomerStatus) bool {
	switch s {
	case CustomerStatusActive, CustomerStatusInactive, CustomerStatusProspect:
		return true
	default:
		return false
	}
}

type Customer struct {
	ID          uuid.UUID      `json:"id"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	Company     string         `json:"company"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	Street      string         `json:"street"`
	City        string         `json:"city"`
	PostalCode  string         `json:"postal_code"`
	Country     string         `json:"country"`
	Status      CustomerStatus `json:"status"`
	Notes       string         `json:"notes"`
	AvatarColor string         `json:"avatar_color"`
	AvatarURL   string         `json:"avatar_url"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// DisplayName prefers the company name for business accounts and
// falls back to the contact's full name.
func (c *Customer) DisplayName() string {
	if strings.TrimSpace(c.Company) != "" {
		return strings.TrimSpace(c.Company)
	}
	return c.FullName()
}

func (c *Customer) Initials() string {
	initials := firstLetter(c.FirstName) + firstLetter(c.LastName)
	if initials == "" {
		return firstLetter(c.Company)
	}
	return initials
}

// firstLetter returns the upper-cased first rune, not byte, so
// non-ASCII names keep valid UTF-8.
func firstLetter(s string) string {
	for _, r := range strings.TrimSpace(s) {
		return strings.ToUpper(string(r))
	}
	return ""
}
