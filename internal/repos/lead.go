package repos

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nvelez/clientbridge-backend/internal/kvstore"
	"github.com/nvelez/clientbridge-backend/internal/logger"
	"github.com/nvelez/clientbridge-backend/internal/seed"
	"github.com/nvelez/clientbridge-backend/internal/types"
)

type LeadRepo interface {
	List(ctx context.Context) ([]types.Lead, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Lead, error)
	ListByStatus(ctx context.Context, status types.LeadStatus) ([]types.Lead, error)
	Create(ctx context.Context, lead types.Lead) (*types.Lead, error)
	Update(ctx context.Context, lead types.Lead) (*types.Lead, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type leadRepo struct {
	mu   sync.Mutex
	coll collection[types.Lead]
	log  *logger.Logger
}

func NewLeadRepo(store kvstore.Store, baseLog *logger.Logger) LeadRepo {
	repoLog := baseLog.With("repo", "LeadRepo")
	return &leadRepo{
		coll: collection[types.Lead]{
			store:    store,
			log:      repoLog,
			key:      SlotLeads,
			seedFrom: func(ds *seed.Dataset) []types.Lead { return ds.Leads },
		},
		log: repoLog,
	}
}

func (lr *leadRepo) List(ctx context.Context) ([]types.Lead, error) {
	return lr.coll.load(ctx)
}

func (lr *leadRepo) GetByID(ctx context.Context, id uuid.UUID) (*types.Lead, error) {
	leads, err := lr.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range leads {
		if leads[i].ID == id {
			return &leads[i], nil
		}
	}
	return nil, ErrNotFound
}

func (lr *leadRepo) ListByStatus(ctx context.Context, status types.LeadStatus) ([]types.Lead, error) {
	leads, err := lr.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]types.Lead, 0)
	for i := range leads {
		if leads[i].Status == status {
			results = append(results, leads[i])
		}
	}
	return results, nil
}

func (lr *leadRepo) Create(ctx context.Context, lead types.Lead) (*types.Lead, error) {
	lr.mu.Lock()
	defer lr.mu.Unlock()

	leads, err := lr.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range leads {
		if leads[i].ID == lead.ID {
			return nil, ErrConflict
		}
	}
	leads = append(leads, lead)
	if err := lr.coll.save(ctx, leads); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (lr *leadRepo) Update(ctx context.Context, lead types.Lead) (*types.Lead, error) {
	lr.mu.Lock()
	defer lr.mu.Unlock()

	leads, err := lr.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range leads {
		if leads[i].ID == lead.ID {
			leads[i] = lead
			if err := lr.coll.save(ctx, leads); err != nil {
				return nil, err
			}
			return &lead, nil
		}
	}
	return nil, ErrNotFound
}

func (lr *leadRepo) Delete(ctx context.Context, id uuid.UUID) error {
	lr.mu.Lock()
	defer lr.mu.Unlock()

	leads, err := lr.coll.load(ctx)
	if err != nil {
		return err
	}
	for i := range leads {
		if leads[i].ID == id {
			leads = append(leads[:i], leads[i+1:]...)
			return lr.coll.save(ctx, leads)
		}
	}
	return ErrNotFound
}
