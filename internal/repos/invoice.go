package repos

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nvelez/clientbridge-backend/internal/kvstore"
	"github.com/nvelez/clientbridge-backend/internal/logger"
	"github.com/nvelez/clientbridge-backend/internal/seed"
	"github.com/nvelez/clientbridge-backend/internal/types"
)

type InvoiceRepo interface {
	List(ctx context.Context) ([]types.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Invoice, error)
	GetByEstimateID(ctx context.Context, estimateID uuid.UUID) (*types.Invoice, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]types.Invoice, error)
	ListOverdue(ctx context.Context, now time.Time) ([]types.Invoice, error)
	Create(ctx context.Context, invoice types.Invoice) (*types.Invoice, error)
	Update(ctx context.Context, invoice types.Invoice) (*types.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type invoiceRepo struct {
	mu   sync.Mutex
	coll collection[types.Invoice]
	log  *logger.Logger
}

func NewInvoiceRepo(store kvstore.Store, baseLog *logger.Logger) InvoiceRepo {
	repoLog := baseLog.With("repo", "InvoiceRepo")
	return &invoiceRepo{
		coll: collection[types.Invoice]{
			store:    store,
			log:      repoLog,
			key:      SlotInvoices,
			seedFrom: func(ds *seed.Dataset) []types.Invoice { return ds.Invoices },
		},
		log: repoLog,
	}
}

func (ir *invoiceRepo) List(ctx context.Context) ([]types.Invoice, error) {
	return ir.coll.load(ctx)
}

func (ir *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*types.Invoice, error) {
	invoices, err := ir.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		if invoices[i].ID == id {
			return &invoices[i], nil
		}
	}
	return nil, ErrNotFound
}

func (ir *invoiceRepo) GetByEstimateID(ctx context.Context, estimateID uuid.UUID) (*types.Invoice, error) {
	invoices, err := ir.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		if invoices[i].EstimateID != nil && *invoices[i].EstimateID == estimateID {
			return &invoices[i], nil
		}
	}
	return nil, ErrNotFound
}

func (ir *invoiceRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]types.Invoice, error) {
	invoices, err := ir.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]types.Invoice, 0)
	for i := range invoices {
		if invoices[i].CustomerID == customerID {
			results = append(results, invoices[i])
		}
	}
	return results, nil
}

func (ir *invoiceRepo) ListOverdue(ctx context.Context, now time.Time) ([]types.Invoice, error) {
	invoices, err := ir.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]types.Invoice, 0)
	for i := range invoices {
		if invoices[i].IsOverdue(now) {
			results = append(results, invoices[i])
		}
	}
	return results, nil
}

func (ir *invoiceRepo) Create(ctx context.Context, invoice types.Invoice) (*types.Invoice, error) {
	ir.mu.Lock()
	defer ir.mu.Unlock()

	invoices, err := ir.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		if invoices[i].ID == invoice.ID {
			return nil, ErrConflict
		}
	}
	invoices = append(invoices, invoice)
	if err := ir.coll.save(ctx, invoices); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (ir *invoiceRepo) Update(ctx context.Context, invoice types.Invoice) (*types.Invoice, error) {
	ir.mu.Lock()
	defer ir.mu.Unlock()

	invoices, err := ir.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		if invoices[i].ID == invoice.ID {
			invoices[i] = invoice
			if err := ir.coll.save(ctx, invoices); err != nil {
				return nil, err
			}
			return &invoice, nil
		}
	}
	return nil, ErrNotFound
}

func (ir *invoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	ir.mu.Lock()
	defer ir.mu.Unlock()

	invoices, err := ir.coll.load(ctx)
	if err != nil {
		return err
	}
	for i := range invoices {
		if invoices[i].ID == id {
			invoices = append(invoices[:i], invoices[i+1:]...)
			return ir.coll.save(ctx, invoices)
		}
	}
	return ErrNotFound
}
