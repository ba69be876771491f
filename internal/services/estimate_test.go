package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nvelez/clientbridge-backend/internal/types"
)

type estimateFixture struct {
	service    EstimateService
	repos      testRepos
	customerID uuid.UUID
}

func newEstimateFixture(t *testing.T) estimateFixture {
	t.Helper()
	ctx := context.Background()
	log := newTestLogger(t)
	reposet := newTestRepos(t)

	now := time.Now().UTC()
	customer, err := reposet.Customer.Create(ctx, types.Customer{
		ID:        uuid.New(),
		FirstName: "Lena",
		LastName:  "Brandt",
		Email:     "lena@example.com",
		Status:    types.CustomerStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	service := NewEstimateService(log, reposet.Estimate, reposet.Invoice, reposet.Customer, reposet.Project)
	return estimateFixture{service: service, repos: reposet, customerID: customer.ID}
}

func testItems() []types.LineItem {
	return []types.LineItem{
		{Description: "Consulting", Quantity: decimal.NewFromInt(8), UnitPrice: decimal.NewFromInt(150)},
	}
}

func TestEstimateServiceCreateAssignsNumber(t *testing.T) {
	ctx := context.Background()
	fx := newEstimateFixture(t)

	first, err := fx.service.Create(ctx, EstimateInput{
		CustomerID: fx.customerID,
		Items:      testItems(),
		TaxRate:    decimal.NewFromFloat(0.19),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.Status != types.EstimateStatusDraft {
		t.Fatalf("status: want=%s got=%s", types.EstimateStatusDraft, first.Status)
	}
	wantNumber := "EST-" + time.Now().UTC().Format("2006") + "-0001"
	if first.Number != wantNumber {
		t.Fatalf("number: want=%q got=%q", wantNumber, first.Number)
	}

	second, err := fx.service.Create(ctx, EstimateInput{
		CustomerID: fx.customerID,
		Items:      testItems(),
		TaxRate:    decimal.Zero,
	})
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}
	if !strings.HasSuffix(second.Number, "-0002") {
		t.Fatalf("second number: want suffix -0002 got=%q", second.Number)
	}
}

func TestEstimateServiceCreateValidation(t *testing.T) {
	ctx := context.Background()
	fx := newEstimateFixture(t)

	cases := []struct {
		name  string
		input EstimateInput
	}{
		{"missing customer", EstimateInput{Items: testItems()}},
		{"unknown customer", EstimateInput{CustomerID: uuid.New(), Items: testItems()}},
		{"no items", EstimateInput{CustomerID: fx.customerID}},
		{"zero quantity", EstimateInput{CustomerID: fx.customerID, Items: []types.LineItem{
			{Description: "Work", Quantity: decimal.Zero, UnitPrice: decimal.NewFromInt(10)},
		}}},
		{"negative price", EstimateInput{CustomerID: fx.customerID, Items: []types.LineItem{
			{Description: "Work", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(-10)},
		}}},
		{"tax rate above one", EstimateInput{CustomerID: fx.customerID, Items: testItems(), TaxRate: decimal.NewFromInt(2)}},
	}
	for _, tc := range cases {
		if _, err := fx.service.Create(ctx, tc.input); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestEstimateServiceStatusTransitions(t *testing.T) {
	ctx := context.Background()
	fx := newEstimateFixture(t)

	estimate, err := fx.service.Create(ctx, EstimateInput{CustomerID: fx.customerID, Items: testItems()})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := fx.service.UpdateStatus(ctx, estimate.ID, types.EstimateStatusAccepted); err == nil {
		t.Fatalf("UpdateStatus: draft cannot jump to accepted")
	}

	sent, err := fx.service.UpdateStatus(ctx, estimate.ID, types.EstimateStatusSent)
	if err != nil {
		t.Fatalf("UpdateStatus to sent: %v", err)
	}
	if sent.Status != types.EstimateStatusSent {
		t.Fatalf("status: want=%s got=%s", types.EstimateStatusSent, sent.Status)
	}

	accepted, err := fx.service.UpdateStatus(ctx, estimate.ID, types.EstimateStatusAccepted)
	if err != nil {
		t.Fatalf("UpdateStatus to accepted: %v", err)
	}
	if accepted.Status != types.EstimateStatusAccepted {
		t.Fatalf("status: want=%s got=%s", types.EstimateStatusAccepted, accepted.Status)
	}

	if _, err := fx.service.UpdateStatus(ctx, estimate.ID, types.EstimateStatusRejected); err == nil {
		t.Fatalf("UpdateStatus: accepted is terminal")
	}
}

func TestEstimateServiceConvertToInvoice(t *testing.T) {
	ctx := context.Background()
	fx := newEstimateFixture(t)

	estimate, err := fx.service.Create(ctx, EstimateInput{
		CustomerID: fx.customerID,
		Items:      testItems(),
		TaxRate:    decimal.NewFromFloat(0.19),
		Notes:      "spring campaign",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := fx.service.ConvertToInvoice(ctx, estimate.ID, 0); err == nil {
		t.Fatalf("ConvertToInvoice: draft estimate must be rejected")
	}

	if _, err := fx.service.UpdateStatus(ctx, estimate.ID, types.EstimateStatusSent); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if _, err := fx.service.UpdateStatus(ctx, estimate.ID, types.EstimateStatusAccepted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	invoice, err := fx.service.ConvertToInvoice(ctx, estimate.ID, 0)
	if err != nil {
		t.Fatalf("ConvertToInvoice: %v", err)
	}
	if invoice.Status != types.InvoiceStatusDraft {
		t.Fatalf("invoice status: want=%s got=%s", types.InvoiceStatusDraft, invoice.Status)
	}
	if invoice.EstimateID == nil || *invoice.EstimateID != estimate.ID {
		t.Fatalf("invoice back-reference: want=%s got=%v", estimate.ID, invoice.EstimateID)
	}
	if invoice.CustomerID != estimate.CustomerID {
		t.Fatalf("invoice customer: want=%s got=%s", estimate.CustomerID, invoice.CustomerID)
	}
	if len(invoice.Items) != len(estimate.Items) {
		t.Fatalf("invoice items: want=%d got=%d", len(estimate.Items), len(invoice.Items))
	}
	if !invoice.TaxRate.Equal(estimate.TaxRate) {
		t.Fatalf("invoice tax rate: want=%s got=%s", estimate.TaxRate, invoice.TaxRate)
	}
	if !strings.HasPrefix(invoice.Number, "INV-") {
		t.Fatalf("invoice number: want INV prefix got=%q", invoice.Number)
	}
	wantDue := invoice.IssueDate.AddDate(0, 0, 30)
	if !invoice.DueDate.Equal(wantDue) {
		t.Fatalf("due date: want=%s got=%s", wantDue, invoice.DueDate)
	}

	if _, err := fx.service.ConvertToInvoice(ctx, estimate.ID, 0); err == nil || !strings.Contains(err.Error(), "already invoiced") {
		t.Fatalf("second ConvertToInvoice: want already-invoiced error, got=%v", err)
	}
}

func TestEstimateServiceUpdateLockedStatuses(t *testing.T) {
	ctx := context.Background()
	fx := newEstimateFixture(t)

	estimate, err := fx.service.Create(ctx, EstimateInput{CustomerID: fx.customerID, Items: testItems()})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := fx.service.UpdateStatus(ctx, estimate.ID, types.EstimateStatusSent); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if _, err := fx.service.UpdateStatus(ctx, estimate.ID, types.EstimateStatusRejected); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	_, err = fx.service.Update(ctx, estimate.ID, EstimateInput{CustomerID: fx.customerID, Items: testItems()})
	if err == nil {
		t.Fatalf("Update: rejected estimate must not be editable")
	}
}
