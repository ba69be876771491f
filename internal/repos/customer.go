package repos

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/nvelez/clientbridge-backend/internal/kvstore"
	"github.com/nvelez/clientbridge-backend/internal/logger"
	"github.com/nvelez/clientbridge-backend/internal/seed"
	"github.com/nvelez/clientbridge-backend/internal/types"
)

type CustomerRepo interface {
	List(ctx context.Context) ([]types.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Customer, error)
	Search(ctx context.Context, query string) ([]types.Customer, error)
	CountByStatus(ctx context.Context) (map[types.CustomerStatus]int, error)
	Create(ctx context.Context, customer types.Customer) (*types.Customer, error)
	Update(ctx context.Context, customer types.Customer) (*types.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerRepo struct {
	mu   sync.Mutex
	coll collection[types.Customer]
	log  *logger.Logger
}

func NewCustomerRepo(store kvstore.Store, baseLog *logger.Logger) CustomerRepo {
	repoLog := baseLog.With("repo", "CustomerRepo")
	return &customerRepo{
		coll: collection[types.Customer]{
			store:    store,
			log:      repoLog,
			key:      SlotCustomers,
			seedFrom: func(ds *seed.Dataset) []types.Customer { return ds.Customers },
		},
		log: repoLog,
	}
}

func (cr *customerRepo) List(ctx context.Context) ([]types.Customer, error) {
	return cr.coll.load(ctx)
}

func (cr *customerRepo) GetByID(ctx context.Context, id uuid.UUID) (*types.Customer, error) {
	customers, err := cr.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i], nil
		}
	}
	return nil, ErrNotFound
}

func (cr *customerRepo) Search(ctx context.Context, query string) ([]types.Customer, error) {
	customers, err := cr.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return customers, nil
	}
	results := make([]types.Customer, 0)
	for i := range customers {
		c := &customers[i]
		if strings.Contains(strings.ToLower(c.FullName()), q) ||
			strings.Contains(strings.ToLower(c.Company), q) ||
			strings.Contains(strings.ToLower(c.Email), q) {
			results = append(results, *c)
		}
	}
	return results, nil
}

func (cr *customerRepo) CountByStatus(ctx context.Context) (map[types.CustomerStatus]int, error) {
	customers, err := cr.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[types.CustomerStatus]int)
	for i := range customers {
		counts[customers[i].Status]++
	}
	return counts, nil
}

func (cr *customerRepo) Create(ctx context.Context, customer types.Customer) (*types.Customer, error) {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	customers, err := cr.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == customer.ID {
			return nil, ErrConflict
		}
	}
	customers = append(customers, customer)
	if err := cr.coll.save(ctx, customers); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (cr *customerRepo) Update(ctx context.Context, customer types.Customer) (*types.Customer, error) {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	customers, err := cr.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == customer.ID {
			customers[i] = customer
			if err := cr.coll.save(ctx, customers); err != nil {
				return nil, err
			}
			return &customer, nil
		}
	}
	return nil, ErrNotFound
}

func (cr *customerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	customers, err := cr.coll.load(ctx)
	if err != nil {
		return err
	}
	for i := range customers {
		if customers[i].ID == id {
			customers = append(customers[:i], customers[i+1:]...)
			return cr.coll.save(ctx, customers)
		}
	}
	return ErrNotFound
}
