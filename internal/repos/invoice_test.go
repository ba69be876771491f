package repos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nvelez/clientbridge-backend/internal/kvstore"
	"github.com/nvelez/clientbridge-backend/internal/types"
)

func newInvoice(status types.InvoiceStatus, due time.Time) types.Invoice {
	now := time.Now().UTC()
	return types.Invoice{
		ID:         uuid.New(),
		Number:     "INV-2026-9999",
		CustomerID: uuid.New(),
		Items: []types.LineItem{
			{Description: "Work", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		},
		TaxRate:   decimal.Zero,
		Status:    status,
		IssueDate: now,
		DueDate:   due,
		Payments:  []types.Payment{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func emptyInvoiceRepo(t *testing.T) (InvoiceRepo, kvstore.Store) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	t.Cleanup(func() { store.Close() })
	if err := store.Set(context.Background(), SlotInvoices, []byte("[]")); err != nil {
		t.Fatalf("reset slot: %v", err)
	}
	return NewInvoiceRepo(store, newTestLogger(t)), store
}

func TestInvoiceRepoGetByEstimateID(t *testing.T) {
	ctx := context.Background()
	repo, _ := emptyInvoiceRepo(t)

	estimateID := uuid.New()
	linked := newInvoice(types.InvoiceStatusDraft, time.Now().UTC())
	linked.EstimateID = &estimateID
	unlinked := newInvoice(types.InvoiceStatusDraft, time.Now().UTC())

	for _, inv := range []types.Invoice{linked, unlinked} {
		if _, err := repo.Create(ctx, inv); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.GetByEstimateID(ctx, estimateID)
	if err != nil {
		t.Fatalf("GetByEstimateID: %v", err)
	}
	if got.ID != linked.ID {
		t.Fatalf("GetByEstimateID: want=%s got=%s", linked.ID, got.ID)
	}

	if _, err := repo.GetByEstimateID(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown estimate: want=ErrNotFound got=%v", err)
	}
}

func TestInvoiceRepoListOverdue(t *testing.T) {
	ctx := context.Background()
	repo, _ := emptyInvoiceRepo(t)

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	pastDue := now.AddDate(0, 0, -5)
	future := now.AddDate(0, 0, 5)

	sentLate := newInvoice(types.InvoiceStatusSent, pastDue)
	sentOnTime := newInvoice(types.InvoiceStatusSent, future)
	draftLate := newInvoice(types.InvoiceStatusDraft, pastDue)
	paidLate := newInvoice(types.InvoiceStatusPaid, pastDue)

	for _, inv := range []types.Invoice{sentLate, sentOnTime, draftLate, paidLate} {
		if _, err := repo.Create(ctx, inv); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	overdue, err := repo.ListOverdue(ctx, now)
	if err != nil {
		t.Fatalf("ListOverdue: %v", err)
	}
	if len(overdue) != 1 || overdue[0].ID != sentLate.ID {
		t.Fatalf("ListOverdue: want=[%s] got=%d entries", sentLate.ID, len(overdue))
	}
}

func TestInvoiceRepoListByCustomer(t *testing.T) {
	ctx := context.Background()
	repo, _ := emptyInvoiceRepo(t)

	customerID := uuid.New()
	mine := newInvoice(types.InvoiceStatusSent, time.Now().UTC())
	mine.CustomerID = customerID
	other := newInvoice(types.InvoiceStatusSent, time.Now().UTC())

	for _, inv := range []types.Invoice{mine, other} {
		if _, err := repo.Create(ctx, inv); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.ListByCustomer(ctx, customerID)
	if err != nil {
		t.Fatalf("ListByCustomer: %v", err)
	}
	if len(got) != 1 || got[0].ID != mine.ID {
		t.Fatalf("ListByCustomer: want=[%s] got=%d entries", mine.ID, len(got))
	}
}
