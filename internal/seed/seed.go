// Package seed holds the embedded sample dataset. Repositories fall
// back to it when a slot is missing or cannot be deserialized, which
// mirrors how the application behaved before it had any real data.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/nvelez/clientbridge-backend/internal/types"
)

//go:embed seed.yaml
var seedYAML []byte

type Dataset struct {
	Customers []types.Customer
	Leads     []types.Lead
	Projects  []types.Project
	Staff     []types.Staff
	Estimates []types.Estimate
	Invoices  []types.Invoice
}

type rawLineItem struct {
	Description string `yaml:"description"`
	Quantity    string `yaml:"quantity"`
	UnitPrice   string `yaml:"unit_price"`
}

type rawPayment struct {
	ID         string    `yaml:"id"`
	Amount     string    `yaml:"amount"`
	Method     string    `yaml:"method"`
	ReceivedAt time.Time `yaml:"received_at"`
	Reference  string    `yaml:"reference"`
	Notes      string    `yaml:"notes"`
}

type rawCustomer struct {
	ID         string    `yaml:"id"`
	FirstName  string    `yaml:"first_name"`
	LastName   string    `yaml:"last_name"`
	Company    string    `yaml:"company"`
	Email      string    `yaml:"email"`
	Phone      string    `yaml:"phone"`
	Street     string    `yaml:"street"`
	City       string    `yaml:"city"`
	PostalCode string    `yaml:"postal_code"`
	Country    string    `yaml:"country"`
	Status     string    `yaml:"status"`
	Notes      string    `yaml:"notes"`
	CreatedAt  time.Time `yaml:"created_at"`
}

type rawLead struct {
	ID             string    `yaml:"id"`
	FirstName      string    `yaml:"first_name"`
	LastName       string    `yaml:"last_name"`
	Company        string    `yaml:"company"`
	Email          string    `yaml:"email"`
	Phone          string    `yaml:"phone"`
	Source         string    `yaml:"source"`
	Status         string    `yaml:"status"`
	EstimatedValue string    `yaml:"estimated_value"`
	Notes          string    `yaml:"notes"`
	CreatedAt      time.Time `yaml:"created_at"`
}

type rawProject struct {
	ID          string     `yaml:"id"`
	CustomerID  string     `yaml:"customer_id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Status      string     `yaml:"status"`
	StartDate   *time.Time `yaml:"start_date"`
	EndDate     *time.Time `yaml:"end_date"`
	Budget      string     `yaml:"budget"`
	CreatedAt   time.Time  `yaml:"created_at"`
}

type rawStaff struct {
	ID         string    `yaml:"id"`
	FirstName  string    `yaml:"first_name"`
	LastName   string    `yaml:"last_name"`
	Email      string    `yaml:"email"`
	Phone      string    `yaml:"phone"`
	Title      string    `yaml:"title"`
	Department string    `yaml:"department"`
	HireDate   time.Time `yaml:"hire_date"`
	Active     bool      `yaml:"active"`
	Password   string    `yaml:"password"`
}

type rawEstimate struct {
	ID         string        `yaml:"id"`
	Number     string        `yaml:"number"`
	CustomerID string        `yaml:"customer_id"`
	ProjectID  string        `yaml:"project_id"`
	Status     string        `yaml:"status"`
	TaxRate    string        `yaml:"tax_rate"`
	IssueDate  time.Time     `yaml:"issue_date"`
	ValidUntil time.Time     `yaml:"valid_until"`
	Notes      string        `yaml:"notes"`
	Items      []rawLineItem `yaml:"items"`
}

type rawInvoice struct {
	ID         string        `yaml:"id"`
	Number     string        `yaml:"number"`
	CustomerID string        `yaml:"customer_id"`
	ProjectID  string        `yaml:"project_id"`
	EstimateID string        `yaml:"estimate_id"`
	Status     string        `yaml:"status"`
	TaxRate    string        `yaml:"tax_rate"`
	IssueDate  time.Time     `yaml:"issue_date"`
	DueDate    time.Time     `yaml:"due_date"`
	Notes      string        `yaml:"notes"`
	Items      []rawLineItem `yaml:"items"`
	Payments   []rawPayment  `yaml:"payments"`
}

type rawDataset struct {
	Customers []rawCustomer `yaml:"customers"`
	Leads     []rawLead     `yaml:"leads"`
	Projects  []rawProject  `yaml:"projects"`
	Staff     []rawStaff    `yaml:"staff"`
	Estimates []rawEstimate `yaml:"estimates"`
	Invoices  []rawInvoice  `yaml:"invoices"`
}

// Load parses the embedded dataset. The data is static, so any error
// here is a programming mistake in seed.yaml.
func Load() (*Dataset, error) {
	var raw rawDataset
	if err := yaml.Unmarshal(seedYAML, &raw); err != nil {
		return nil, fmt.Errorf("parse seed dataset: %w", err)
	}

	ds := &Dataset{}

	for _, rc := range raw.Customers {
		id, err := uuid.Parse(rc.ID)
		if err != nil {
			return nil, fmt.Errorf("seed customer %q: %w", rc.Email, err)
		}
		ds.Customers = append(ds.Customers, types.Customer{
			ID:         id,
			FirstName:  rc.FirstName,
			LastName:   rc.LastName,
			Company:    rc.Company,
			Email:      rc.Email,
			Phone:      rc.Phone,
			Street:     rc.Street,
			City:       rc.City,
			PostalCode: rc.PostalCode,
			Country:    rc.Country,
			Status:     types.CustomerStatus(rc.Status),
			Notes:      rc.Notes,
			CreatedAt:  rc.CreatedAt,
			UpdatedAt:  rc.CreatedAt,
		})
	}

	for _, rl := range raw.Leads {
		id, err := uuid.Parse(rl.ID)
		if err != nil {
			return nil, fmt.Errorf("seed lead %q: %w", rl.Email, err)
		}
		value, err := decimal.NewFromString(rl.EstimatedValue)
		if err != nil {
			return nil, fmt.Errorf("seed lead %q estimated_value: %w", rl.Email, err)
		}
		ds.Leads = append(ds.Leads, types.Lead{
			ID:             id,
			FirstName:      rl.FirstName,
			LastName:       rl.LastName,
			Company:        rl.Company,
			Email:          rl.Email,
			Phone:          rl.Phone,
			Source:         types.LeadSource(rl.Source),
			Status:         types.LeadStatus(rl.Status),
			EstimatedValue: value,
			Notes:          rl.Notes,
			CreatedAt:      rl.CreatedAt,
			UpdatedAt:      rl.CreatedAt,
		})
	}

	for _, rp := range raw.Projects {
		id, err := uuid.Parse(rp.ID)
		if err != nil {
			return nil, fmt.Errorf("seed project %q: %w", rp.Name, err)
		}
		customerID, err := uuid.Parse(rp.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("seed project %q customer_id: %w", rp.Name, err)
		}
		budget, err := decimal.NewFromString(rp.Budget)
		if err != nil {
			return nil, fmt.Errorf("seed project %q budget: %w", rp.Name, err)
		}
		ds.Projects = append(ds.Projects, types.Project{
			ID:          id,
			CustomerID:  customerID,
			Name:        rp.Name,
			Description: rp.Description,
			Status:      types.ProjectStatus(rp.Status),
			StartDate:   rp.StartDate,
			EndDate:     rp.EndDate,
			Budget:      budget,
			CreatedAt:   rp.CreatedAt,
			UpdatedAt:   rp.CreatedAt,
		})
	}

	for _, rs := range raw.Staff {
		id, err := uuid.Parse(rs.ID)
		if err != nil {
			return nil, fmt.Errorf("seed staff %q: %w", rs.Email, err)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(rs.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("seed staff %q password: %w", rs.Email, err)
		}
		ds.Staff = append(ds.Staff, types.Staff{
			ID:           id,
			FirstName:    rs.FirstName,
			LastName:     rs.LastName,
			Email:        rs.Email,
			Phone:        rs.Phone,
			Title:        rs.Title,
			Department:   rs.Department,
			HireDate:     rs.HireDate,
			Active:       rs.Active,
			PasswordHash: string(hash),
			CreatedAt:    rs.HireDate,
			UpdatedAt:    rs.HireDate,
		})
	}

	for _, re := range raw.Estimates {
		est, err := convertEstimate(re)
		if err != nil {
			return nil, err
		}
		ds.Estimates = append(ds.Estimates, est)
	}

	for _, ri := range raw.Invoices {
		inv, err := convertInvoice(ri)
		if err != nil {
			return nil, err
		}
		ds.Invoices = append(ds.Invoices, inv)
	}

	return ds, nil
}

func convertItems(number string, raw []rawLineItem) ([]types.LineItem, error) {
	items := make([]types.LineItem, 0, len(raw))
	for _, ri := range raw {
		qty, err := decimal.NewFromString(ri.Quantity)
		if err != nil {
			return nil, fmt.Errorf("seed document %q item quantity: %w", number, err)
		}
		price, err := decimal.NewFromString(ri.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("seed document %q item unit_price: %w", number, err)
		}
		items = append(items, types.LineItem{
			Description: ri.Description,
			Quantity:    qty,
			UnitPrice:   price,
		})
	}
	return items, nil
}

func parseOptionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func convertEstimate(re rawEstimate) (types.Estimate, error) {
	var est types.Estimate
	id, err := uuid.Parse(re.ID)
	if err != nil {
		return est, fmt.Errorf("seed estimate %q: %w", re.Number, err)
	}
	customerID, err := uuid.Parse(re.CustomerID)
	if err != nil {
		return est, fmt.Errorf("seed estimate %q customer_id: %w", re.Number, err)
	}
	projectID, err := parseOptionalUUID(re.ProjectID)
	if err != nil {
		return est, fmt.Errorf("seed estimate %q project_id: %w", re.Number, err)
	}
	taxRate, err := decimal.NewFromString(re.TaxRate)
	if err != nil {
		return est, fmt.Errorf("seed estimate %q tax_rate: %w", re.Number, err)
	}
	items, err := convertItems(re.Number, re.Items)
	if err != nil {
		return est, err
	}
	return types.Estimate{
		ID:         id,
		Number:     re.Number,
		CustomerID: customerID,
		ProjectID:  projectID,
		Items:      items,
		TaxRate:    taxRate,
		Status:     types.EstimateStatus(re.Status),
		IssueDate:  re.IssueDate,
		ValidUntil: re.ValidUntil,
		Notes:      re.Notes,
		CreatedAt:  re.IssueDate,
		UpdatedAt:  re.IssueDate,
	}, nil
}

func convertInvoice(ri rawInvoice) (types.Invoice, error) {
	var inv types.Invoice
	id, err := uuid.Parse(ri.ID)
	if err != nil {
		return inv, fmt.Errorf("seed invoice %q: %w", ri.Number, err)
	}
	customerID, err := uuid.Parse(ri.CustomerID)
	if err != nil {
		return inv, fmt.Errorf("seed invoice %q customer_id: %w", ri.Number, err)
	}
	projectID, err := parseOptionalUUID(ri.ProjectID)
	if err != nil {
		return inv, fmt.Errorf("seed invoice %q project_id: %w", ri.Number, err)
	}
	estimateID, err := parseOptionalUUID(ri.EstimateID)
	if err != nil {
		return inv, fmt.Errorf("seed invoice %q estimate_id: %w", ri.Number, err)
	}
	taxRate, err := decimal.NewFromString(ri.TaxRate)
	if err != nil {
		return inv, fmt.Errorf("seed invoice %q tax_rate: %w", ri.Number, err)
	}
	items, err := convertItems(ri.Number, ri.Items)
	if err != nil {
		return inv, err
	}
	payments := make([]types.Payment, 0, len(ri.Payments))
	for _, rp := range ri.Payments {
		pid, err := uuid.Parse(rp.ID)
		if err != nil {
			return inv, fmt.Errorf("seed invoice %q payment id: %w", ri.Number, err)
		}
		amount, err := decimal.NewFromString(rp.Amount)
		if err != nil {
			return inv, fmt.Errorf("seed invoice %q payment amount: %w", ri.Number, err)
		}
		payments = append(payments, types.Payment{
			ID:         pid,
			Amount:     amount,
			Method:     types.PaymentMethod(rp.Method),
			ReceivedAt: rp.ReceivedAt,
			Reference:  rp.Reference,
			Notes:      rp.Notes,
		})
	}
	return types.Invoice{
		ID:         id,
		Number:     ri.Number,
		CustomerID: customerID,
		ProjectID:  projectID,
		EstimateID: estimateID,
		Items:      items,
		TaxRate:    taxRate,
		Status:     types.InvoiceStatus(ri.Status),
		IssueDate:  ri.IssueDate,
		DueDate:    ri.DueDate,
		Payments:   payments,
		Notes:      ri.Notes,
		CreatedAt:  ri.IssueDate,
		UpdatedAt:  ri.IssueDate,
	}, nil
}
