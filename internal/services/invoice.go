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

type InvoiceInput struct {
	CustomerID uuid.UUID        `json:"customer_id"`
	ProjectID  *uuid.UUID       `json:"project_id"`
	Items      []types.LineItem `json:"items"`
	TaxRate    decimal.Decimal  `json:"tax_rate"`
	IssueDate  *time.Time       `json:"issue_date"`
	DueDate    *time.Time       `json:"due_date"`
	Notes      string           `json:"notes"`
}

type PaymentInput struct {
	Amount     decimal.Decimal     `json:"amount"`
	Method     types.PaymentMethod `json:"method"`
	ReceivedAt *time.Time          `json:"received_at"`
	Reference  string              `json:"reference"`
	Notes      string              `json:"notes"`
}

type InvoiceService interface {
	List(ctx context.Context) ([]types.Invoice, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Invoice, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]types.Invoice, error)
	ListOverdue(ctx context.Context) ([]types.Invoice, error)
	Create(ctx context.Context, input InvoiceInput) (*types.Invoice, error)
	Update(ctx context.Context, id uuid.UUID, input InvoiceInput) (*types.Invoice, error)
	Send(ctx context.Context, id uuid.UUID) (*types.Invoice, error)
	Cancel(ctx context.Context, id uuid.UUID) (*types.Invoice, error)
	RecordPayment(ctx context.Context, id uuid.UUID, input PaymentInput) (*types.Invoice, error)
	MarkOverdue(ctx context.Context) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type invoiceService struct {
	log          *logger.Logger
	invoiceRepo  repos.InvoiceRepo
	customerRepo repos.CustomerRepo
	projectRepo  repos.ProjectRepo
	now          func() time.Time
}

func NewInvoiceService(
	log *logger.Logger,
	invoiceRepo repos.InvoiceRepo,
	customerRepo repos.CustomerRepo,
	projectRepo repos.ProjectRepo,
) InvoiceService {
	serviceLog := log.With("service", "InvoiceService")
	return &invoiceService{
		log:          serviceLog,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		projectRepo:  projectRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (is *invoiceService) validateInput(ctx context.Context, input *InvoiceInput) error {
	if input.CustomerID == uuid.Nil {
		return fmt.Errorf("a customer is required")
	}
	if _, err := is.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		return fmt.Errorf("invoice customer: %w", err)
	}
	if input.ProjectID != nil {
		if _, err := is.projectRepo.GetByID(ctx, *input.ProjectID); err != nil {
			return fmt.Errorf("invoice project: %w", err)
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

func (is *invoiceService) List(ctx context.Context) ([]types.Invoice, error) {
	return is.invoiceRepo.List(ctx)
}

func (is *invoiceService) Get(ctx context.Context, id uuid.UUID) (*types.Invoice, error) {
	return is.invoiceRepo.GetByID(ctx, id)
}

func (is *invoiceService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]types.Invoice, error) {
	return is.invoiceRepo.ListByCustomer(ctx, customerID)
}

func (is *invoiceService) ListOverdue(ctx context.Context) ([]types.Invoice, error) {
	return is.invoiceRepo.ListOverdue(ctx, is.now())
}

func (is *invoiceService) Create(ctx context.Context, input InvoiceInput) (*types.Invoice, error) {
	if err := is.validateInput(ctx, &input); err != nil {
		return nil, err
	}

	invoices, err := is.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	numbers := make([]string, 0, len(invoices))
	for i := range invoices {
		numbers = append(numbers, invoices[i].Number)
	}

	now := is.now()
	issueDate := now
	if input.IssueDate != nil {
		issueDate = *input.IssueDate
	}
	dueDate := issueDate.AddDate(0, 0, 30)
	if input.DueDate != nil {
		dueDate = *input.DueDate
	}
	if dueDate.Before(issueDate) {
		return nil, fmt.Errorf("due date cannot be before issue date")
	}

	invoice := types.Invoice{
		ID:         uuid.New(),
		Number:     nextDocumentNumber("INV", issueDate.Year(), numbers),
		CustomerID: input.CustomerID,
		ProjectID:  input.ProjectID,
		Items:      input.Items,
		TaxRate:    input.TaxRate,
		Status:     types.InvoiceStatusDraft,
		IssueDate:  issueDate,
		DueDate:    dueDate,
		Payments:   []types.Payment{},
		Notes:      input.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := is.invoiceRepo.Create(ctx, invoice)
	if err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	is.log.Info("Invoice created", "invoice_id", created.ID, "number", created.Number)
	return created, nil
}

func (is *invoiceService) Update(ctx context.Context, id uuid.UUID, input InvoiceInput) (*types.Invoice, error) {
	existing, err := is.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Status != types.InvoiceStatusDraft {
		return nil, stateConflict("only draft invoices can be edited, invoice is %s", existing.Status)
	}
	if err := is.validateInput(ctx, &input); err != nil {
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
	if input.DueDate != nil {
		updated.DueDate = *input.DueDate
	}
	updated.Notes = input.Notes
	updated.UpdatedAt = is.now()

	return is.invoiceRepo.Update(ctx, updated)
}

func (is *invoiceService) Send(ctx context.Context, id uuid.UUID) (*types.Invoice, error) {
	existing, err := is.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Status != types.InvoiceStatusDraft {
		return nil, stateConflict("only draft invoices can be sent, invoice is %s", existing.Status)
	}

	updated := *existing
	updated.Status = types.InvoiceStatusSent
	updated.UpdatedAt = is.now()
	return is.invoiceRepo.Update(ctx, updated)
}

func (is *invoiceService) Cancel(ctx context.Context, id uuid.UUID) (*types.Invoice, error) {
	existing, err := is.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch existing.Status {
	case types.InvoiceStatusPaid:
		return nil, stateConflict("a paid invoice cannot be cancelled")
	case types.InvoiceStatusCancelled:
		return nil, stateConflict("invoice is already cancelled")
	}
	if existing.PaidTotal().IsPositive() {
		return nil, stateConflict("an invoice with recorded payments cannot be cancelled")
	}

	updated := *existing
	updated.Status = types.InvoiceStatusCancelled
	updated.UpdatedAt = is.now()
	return is.invoiceRepo.Update(ctx, updated)
}

// RecordPayment appends a payment and advances the status by the
// remaining balance. Overpayment is rejected rather than credited.
func (is *invoiceService) RecordPayment(ctx context.Context, id uuid.UUID, input PaymentInput) (*types.Invoice, error) {
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("payment amount must be positive")
	}
	if input.Method == "" {
		input.Method = types.PaymentMethodOther
	}
	if !types.IsValidPaymentMethod(input.Method) {
		return nil, fmt.Errorf("unknown payment method %q", input.Method)
	}

	existing, err := is.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existing.Status.AcceptsPayment() {
		return nil, stateConflict("a %s invoice does not accept payments", existing.Status)
	}
	if input.Amount.GreaterThan(existing.Balance()) {
		return nil, fmt.Errorf("payment of %s exceeds the open balance of %s", input.Amount, existing.Balance())
	}

	receivedAt := is.now()
	if input.ReceivedAt != nil {
		receivedAt = *input.ReceivedAt
	}
	payment := types.Payment{
		ID:         uuid.New(),
		Amount:     input.Amount,
		Method:     input.Method,
		ReceivedAt: receivedAt,
		Reference:  input.Reference,
		Notes:      input.Notes,
	}

	updated := *existing
	updated.Payments = append(append([]types.Payment{}, existing.Payments...), payment)
	if updated.Balance().IsZero() {
		updated.Status = types.InvoiceStatusPaid
	} else {
		updated.Status = types.InvoiceStatusPartiallyPaid
	}
	updated.UpdatedAt = is.now()

	saved, err := is.invoiceRepo.Update(ctx, updated)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}
	is.log.Info("Payment recorded", "invoice_id", saved.ID, "amount", input.Amount, "status", saved.Status)
	return saved, nil
}

// MarkOverdue sweeps sent and partially paid invoices past their due
// date into the overdue status and reports how many changed.
func (is *invoiceService) MarkOverdue(ctx context.Context) (int, error) {
	invoices, err := is.invoiceRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	now := is.now()
	changed := 0
	for i := range invoices {
		inv := invoices[i]
		if inv.Status != types.InvoiceStatusSent && inv.Status != types.InvoiceStatusPartiallyPaid {
			continue
		}
		if !now.After(inv.DueDate) {
			continue
		}
		inv.Status = types.InvoiceStatusOverdue
		inv.UpdatedAt = now
		if _, err := is.invoiceRepo.Update(ctx, inv); err != nil {
			return changed, fmt.Errorf("mark invoice %s overdue: %w", inv.Number, err)
		}
		changed++
	}
	if changed > 0 {
		is.log.Info("Invoices marked overdue", "count", changed)
	}
	return changed, nil
}

func (is *invoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := is.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.PaidTotal().IsPositive() {
		return stateConflict("an invoice with recorded payments cannot be deleted")
	}
	if err := is.invoiceRepo.Delete(ctx, id); err != nil {
		return err
	}
	is.log.Info("Invoice deleted", "invoice_id", id)
	return nil
}
