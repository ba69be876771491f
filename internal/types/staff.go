package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Staff is the slot record. The password hash has to survive the JSON
// round-trip through the slot store, so it carries a tag; handlers
// must only ever return StaffView.
type Staff struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Title        string    `json:"title"`
	Department   string    `json:"department"`
	HireDate     time.Time `json:"hire_date"`
	Active       bool      `json:"active"`
	PasswordHash string    `json:"password_hash,omitempty"`
	AvatarURL    string    `json:"avatar_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StaffView is the API-facing shape without credentials.
type StaffView struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Title      string    `json:"title"`
	Department string    `json:"department"`
	HireDate   time.Time `json:"hire_date"`
	Active     bool      `json:"active"`
	AvatarURL  string    `json:"avatar_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (s *Staff) View() StaffView {
	return StaffView{
		ID:         s.ID,
		FirstName:  s.FirstName,
		LastName:   s.LastName,
		Email:      s.Email,
		Phone:      s.Phone,
		Title:      s.Title,
		Department: s.Department,
		HireDate:   s.HireDate,
		Active:     s.Active,
		AvatarURL:  s.AvatarURL,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func (s *Staff) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

func (s *Staff) Initials() string {
	return firstLetter(s.FirstName) + firstLetter(s.LastName)
}
