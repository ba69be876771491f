package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nvelez/clientbridge-backend/internal/logger"
	"github.com/nvelez/clientbridge-backend/internal/repos"
	"github.com/nvelez/clientbridge-backend/internal/types"
)

type LeadInput struct {
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	Company        string           `json:"company"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Source         types.LeadSource `json:"source"`
	EstimatedValue decimal.Decimal  `json:"estimated_value"`
	Notes          string           `json:"notes"`
}

type LeadService interface {
	List(ctx context.Context) ([]types.Lead, error)
	ListByStatus(ctx context.Context, status types.LeadStatus) ([]types.Lead, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Lead, error)
	Create(ctx context.Context, input LeadInput) (*types.Lead, error)
	Update(ctx context.Context, id uuid.UUID, input LeadInput) (*types.Lead, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status types.LeadStatus) (*types.Lead, error)
	Convert(ctx context.Context, id uuid.UUID) (*types.Customer, *types.Lead, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type leadService struct {
	log             *logger.Logger
	leadRepo        repos.LeadRepo
	customerService CustomerService
}

func NewLeadService(log *logger.Logger, leadRepo repos.LeadRepo, customerService CustomerService) LeadService {
	serviceLog := log.With("service", "LeadService")
	return &leadService{
		log:             serviceLog,
		leadRepo:        leadRepo,
		customerService: customerService,
	}
}

func validateLeadInput(input *LeadInput) error {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Company = strings.TrimSpace(input.Company)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if input.FirstName == "" && input.LastName == "" && input.Company == "" {
		return fmt.Errorf("a contact name or company is required")
	}
	if input.Source == "" {
		input.Source = types.LeadSourceOther
	}
	if !types.IsValidLeadSource(input.Source) {
		return fmt.Errorf("unknown lead source %q", input.Source)
	}
	if input.EstimatedValue.IsNegative() {
		return fmt.Errorf("estimated value cannot be negative")
	}
	return nil
}

func (ls *leadService) List(ctx context.Context) ([]types.Lead, error) {
	return ls.leadRepo.List(ctx)
}

func (ls *leadService) ListByStatus(ctx context.Context, status types.LeadStatus) ([]types.Lead, error) {
	if !types.IsValidLeadStatus(status) {
		return nil, fmt.Errorf("unknown lead status %q", status)
	}
	return ls.leadRepo.ListByStatus(ctx, status)
}

func (ls *leadService) Get(ctx context.Context, id uuid.UUID) (*types.Lead, error) {
	return ls.leadRepo.GetByID(ctx, id)
}

func (ls *leadService) Create(ctx context.Context, input LeadInput) (*types.Lead, error) {
	if err := validateLeadInput(&input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	lead := types.Lead{
		ID:             uuid.New(),
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Company:        input.Company,
		Email:          input.Email,
		Phone:          input.Phone,
		Source:         input.Source,
		Status:         types.LeadStatusNew,
		EstimatedValue: input.EstimatedValue,
		Notes:          input.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := ls.leadRepo.Create(ctx, lead)
	if err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}
	ls.log.Info("Lead created", "lead_id", created.ID, "source", created.Source)
	return created, nil
}

func (ls *leadService) Update(ctx context.Context, id uuid.UUID, input LeadInput) (*types.Lead, error) {
	if err := validateLeadInput(&input); err != nil {
		return nil, err
	}

	existing, err := ls.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existing.IsOpen() {
		return nil, stateConflict("lead is %s and can no longer be edited", existing.Status)
	}

	updated := *existing
	updated.FirstName = input.FirstName
	updated.LastName = input.LastName
	updated.Company = input.Company
	updated.Email = input.Email
	updated.Phone = input.Phone
	updated.Source = input.Source
	updated.EstimatedValue = input.EstimatedValue
	updated.Notes = input.Notes
	updated.UpdatedAt = time.Now().UTC()

	return ls.leadRepo.Update(ctx, updated)
}

func (ls *leadService) UpdateStatus(ctx context.Context, id uuid.UUID, status types.LeadStatus) (*types.Lead, error) {
	if !types.IsValidLeadStatus(status) {
		return nil, fmt.Errorf("unknown lead status %q", status)
	}
	if status == types.LeadStatusConverted {
		return nil, fmt.Errorf("use the convert operation to convert a lead")
	}

	existing, err := ls.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !types.CanTransitionLeadStatus(existing.Status, status) {
		return nil, stateConflict("lead cannot move from %s to %s", existing.Status, status)
	}

	updated := *existing
	updated.Status = status
	updated.UpdatedAt = time.Now().UTC()
	return ls.leadRepo.Update(ctx, updated)
}

// Convert turns a qualified lead into an active customer and marks
// the lead converted with a back-reference to the new record.
func (ls *leadService) Convert(ctx context.Context, id uuid.UUID) (*types.Customer, *types.Lead, error) {
	lead, err := ls.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if lead.Status == types.LeadStatusConverted {
		return nil, nil, stateConflict("lead is already converted")
	}
	if lead.Status == types.LeadStatusLost {
		return nil, nil, stateConflict("a lost lead cannot be converted")
	}

	customer, err := ls.customerService.Create(ctx, CustomerInput{
		FirstName: lead.FirstName,
		LastName:  lead.LastName,
		Company:   lead.Company,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Status:    types.CustomerStatusActive,
		Notes:     lead.Notes,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create customer from lead: %w", err)
	}

	updated := *lead
	updated.Status = types.LeadStatusConverted
	updated.ConvertedCustomerID = &customer.ID
	updated.UpdatedAt = time.Now().UTC()

	saved, err := ls.leadRepo.Update(ctx, updated)
	if err != nil {
		return nil, nil, fmt.Errorf("mark lead converted: %w", err)
	}

	ls.log.Info("Lead converted", "lead_id", saved.ID, "customer_id", customer.ID)
	return customer, saved, nil
}

func (ls *leadService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ls.leadRepo.Delete(ctx, id); err != nil {
		return err
	}
	ls.log.Info("Lead deleted", "lead_id", id)
	return nil
}
