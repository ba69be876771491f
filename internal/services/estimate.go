package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nvelez/clientbridge-backend/internal/logger"
	"github.com/nvelez/clientbridge-backend/internal/repos"
	"github.com/nvelez/clientbridge-backend/internal/types"
)

type EstimateInput struct {
	CustomerID uuid.UUID        `json:"customer_id"`
	ProjectID  *uuid.UUID       `json:"project_id"`
	Items      []types.LineItem `json:"items"`
	TaxRate    decimal.Decimal  `json:"tax_rate"`
	IssueDate  *time.Time       `json:"issue_date"`
	ValidUntil *time.Time       `json:"valid_until"`
	Notes      string           `json:"notes"`
}

type EstimateService interface {
	List(ctx context.Context) ([]types.Estimate, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Estimate, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]types.Estimate, error)
	Create(ctx context.Context, input EstimateInput) (*types.Estimate, error)
	Update(ctx context.Context, id uuid.UUID, input EstimateInput) (*types.Estimate, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status types.EstimateStatus) (*types.Estimate, error)
	ConvertToInvoice(ctx context.Context, id uuid.UUID, dueInDays int) (*types.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type estimateService struct {
	log          *logger.Logger
	estimateRepo repos.EstimateRepo
	invoiceRepo  repos.InvoiceRepo
	customerRepo repos.CustomerRepo
	projectRepo  repos.ProjectRepo
}

func NewEstimateService(
	log *logger.Logger,
	estimateRepo repos.EstimateRepo,
	invoiceRepo repos.InvoiceRepo,
	customerRepo repos.CustomerRepo,
	projectRepo repos.ProjectRepo,
) EstimateService {
	serviceLog := log.With("service", "EstimateService")
	return &estimateService{
		log:          serviceLog,
		estimateRepo: estimateRepo,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		projectRepo:  projectRepo,
	}
}

func validateLineItems(items []types.LineItem) error {
	if len(items) == 0 {
		return fmt.Errorf("at least one line item is required")
	}
	for i := range items {
		if items[i].Description == "" {
			return fmt.Errorf("line item %d is missing a description", i+1)
		}
		if !items[i].Quantity.IsPositive() {
			return fmt.Errorf("line item %d quantity must be positive", i+1)
		}
		if items[i].UnitPrice.IsNegative() {
			return fmt.Errorf("line item %d unit price cannot be negative", i+1)
		}
	}
	return nil
}

func (es *estimateService) validateInput(ctx context.Context, input *EstimateInput) error {
	if input.CustomerID == uuid.Nil {
		return fmt.Errorf("a customer is required")
	}
	if _, err := es.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		return fmt.Errorf("estimate customer: %w", err)
	}
	if input.ProjectID != nil {
		if _, err := es.projectRepo.GetByID(ctx, *input.ProjectID); err != nil {
			return fmt.Errorf("estimate project: %w", err)
		}
	}
	if err := validateLineItems(input.Items); err != nil {
		return err
	}
	if input.TaxRate.IsNegative() || input.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("tax rate must be between 0 and 1")
	}
	return nil
}

func (es *estimateService) List(ctx context.Context) ([]types.Estimate, error) {
	return es.estimateRepo.List(ctx)
}

func (es *estimateService) Get(ctx context.Context, id uuid.UUID) (*types.Estimate, error) {
	return es.estimateRepo.GetByID(ctx, id)
}

func (es *estimateService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]types.Estimate, error) {
	return es.estimateRepo.ListByCustomer(ctx, customerID)
}

func (es *estimateService) Create(ctx context.Context, input EstimateInput) (*types.Estimate, error) {
	if err := es.validateInput(ctx, &input); err != nil {
		return nil, err
	}

	existing, err := es.estimateRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	numbers := make([]string, 0, len(existing))
	for i := range existing {
		numbers = append(numbers, existing[i].Number)
	}

	now := time.Now().UTC()
	issueDate := now
	if input.IssueDate != nil {
		issueDate = *input.IssueDate
	}
	validUntil := issueDate.AddDate(0, 1, 0)
	if input.ValidUntil != nil {
		validUntil = *input.ValidUntil
	}

	estimate := types.Estimate{
		ID:         uuid.New(),
		Number:     nextDocumentNumber("EST", issueDate.Year(), numbers),
		CustomerID: input.CustomerID,
		ProjectID:  input.ProjectID,
		Items:      input.Items,
		TaxRate:    input.TaxRate,
		Status:     types.EstimateStatusDraft,
		IssueDate:  issueDate,
		ValidUntil: validUntil,
		Notes:      input.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := es.estimateRepo.Create(ctx, estimate)
	if err != nil {
		return nil, fmt.Errorf("create estimate: %w", err)
	}
	es.log.Info("Estimate created", "estimate_id", created.ID, "number", created.Number)
	return created, nil
}

func (es *estimateService) Update(ctx context.Context, id uuid.UUID, input EstimateInput) (*types.Estimate, error) {
	existing, err := es.estimateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Status != types.EstimateStatusDraft && existing.Status != types.EstimateStatusSent {
		return nil, stateConflict("a %s estimate can no longer be edited", existing.Status)
	}
	if err := es.validateInput(ctx, &input); err != nil {
		return nil, err
	}

	updated := *existing
	updated.CustomerID = input.CustomerID
	updated.ProjectID = input.ProjectID
	updated.Items = input.Items
	updated.TaxRate = input.TaxRate
	if input.IssueDate != nil {
		updated.IssueDate = *input.IssueDate
	}
	if input.ValidUntil != nil {
		updated.ValidUntil = *input.ValidUntil
	}
	updated.Notes = input.Notes
	updated.UpdatedAt = time.Now().UTC()

	return es.estimateRepo.Update(ctx, updated)
}

func (es *estimateService) UpdateStatus(ctx context.Context, id uuid.UUID, status types.EstimateStatus) (*types.Estimate, error) {
	if !types.IsValidEstimateStatus(status) {
		return nil, fmt.Errorf("unknown estimate status %q", status)
	}

	existing, err := es.estimateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !types.CanTransitionEstimateStatus(existing.Status, status) {
		return nil, stateConflict("estimate cannot move from %s to %s", existing.Status, status)
	}

	updated := *existing
	updated.Status = status
	updated.UpdatedAt = time.Now().UTC()
	return es.estimateRepo.Update(ctx, updated)
}

// ConvertToInvoice copies an accepted estimate into a new draft
// invoice. The estimate back-reference makes the conversion
// idempotent: a second call returns an error instead of a duplicate.
func (es *estimateService) ConvertToInvoice(ctx context.Context, id uuid.UUID, dueInDays int) (*types.Invoice, error) {
	estimate, err := es.estimateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if estimate.Status != types.EstimateStatusAccepted {
		return nil, stateConflict("only accepted estimates can be invoiced, estimate is %s", estimate.Status)
	}
	if existing, err := es.invoiceRepo.GetByEstimateID(ctx, estimate.ID); err == nil {
		return nil, stateConflict("estimate is already invoiced as %s", existing.Number)
	} else if err != repos.ErrNotFound {
		return nil, fmt.Errorf("check existing invoice: %w", err)
	}

	invoices, err := es.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	numbers := make([]string, 0, len(invoices))
	for i := range invoices {
		numbers = append(numbers, invoices[i].Number)
	}

	if dueInDays <= 0 {
		dueInDays = 30
	}
	now := time.Now().UTC()
	estimateID := estimate.ID
	invoice := types.Invoice{
		ID:         uuid.New(),
		Number:     nextDocumentNumber("INV", now.Year(), numbers),
		CustomerID: estimate.CustomerID,
		ProjectID:  estimate.ProjectID,
		EstimateID: &estimateID,
		Items:      estimate.Items,
		TaxRate:    estimate.TaxRate,
		Status:     types.InvoiceStatusDraft,
		IssueDate:  now,
		DueDate:    now.AddDate(0, 0, dueInDays),
		Payments:   []types.Payment{},
		Notes:      estimate.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := es.invoiceRepo.Create(ctx, invoice)
	if err != nil {
		return nil, fmt.Errorf("create invoice from estimate: %w", err)
	}
	es.log.Info("Estimate converted to invoice", "estimate_id", estimate.ID, "invoice_id", created.ID, "number", created.Number)
	return created, nil
}

func (es *estimateService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := es.estimateRepo.Delete(ctx, id); err != nil {
		return err
	}
	es.log.Info("Estimate deleted", "estimate_id", id)
	return nil
}
