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

type EstimateRepo interface {
	List(ctx context.Context) ([]types.Estimate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Estimate, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]types.Estimate, error)
	Create(ctx context.Context, estimate types.Estimate) (*types.Estimate, error)
	Update(ctx context.Context, estimate types.Estimate) (*types.Estimate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type estimateRepo struct {
	mu   sync.Mutex
	coll collection[types.Estimate]
	log  *logger.Logger
}

func NewEstimateRepo(store kvstore.Store, baseLog *logger.Logger) EstimateRepo {
	repoLog := baseLog.With("repo", "EstimateRepo")
	return &estimateRepo{
		coll: collection[types.Estimate]{
			store:    store,
			log:      repoLog,
			key:      SlotEstimates,
			seedFrom: func(ds *seed.Dataset) []types.Estimate { return ds.Estimates },
		},
		log: repoLog,
	}
}

func (er *estimateRepo) List(ctx context.Context) ([]types.Estimate, error) {
	return er.coll.load(ctx)
}

func (er *estimateRepo) GetByID(ctx context.Context, id uuid.UUID) (*types.Estimate, error) {
	estimates, err := er.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range estimates {
		if estimates[i].ID == id {
			return &estimates[i], nil
		}
	}
	return nil, ErrNotFound
}

func (er *estimateRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]types.Estimate, error) {
	estimates, err := er.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]types.Estimate, 0)
	for i := range estimates {
		if estimates[i].CustomerID == customerID {
			results = append(results, estimates[i])
		}
	}
	return results, nil
}

func (er *estimateRepo) Create(ctx context.Context, estimate types.Estimate) (*types.Estimate, error) {
	er.mu.Lock()
	defer er.mu.Unlock()

	estimates, err := er.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range estimates {
		if estimates[i].ID == estimate.ID {
			return nil, ErrConflict
		}
	}
	estimates = append(estimates, estimate)
	if err := er.coll.save(ctx, estimates); err != nil {
		return nil, err
	}
	return &estimate, nil
}

func (er *estimateRepo) Update(ctx context.Context, estimate types.Estimate) (*types.Estimate, error) {
	er.mu.Lock()
	defer er.mu.Unlock()

	estimates, err := er.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range estimates {
		if estimates[i].ID == estimate.ID {
			estimates[i] = estimate
			if err := er.coll.save(ctx, estimates); err != nil {
				return nil, err
			}
			return &estimate, nil
		}
	}
	return nil, ErrNotFound
}

func (er *estimateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	er.mu.Lock()
	defer er.mu.Unlock()

	estimates, err := er.coll.load(ctx)
	if err != nil {
		return err
	}
	for i := range estimates {
		if estimates[i].ID == id {
			estimates = append(estimates[:i], estimates[i+1:]...)
			return er.coll.save(ctx, estimates)
		}
	}
	return ErrNotFound
}
