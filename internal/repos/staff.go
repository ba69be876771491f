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

type StaffRepo interface {
	List(ctx context.Context) ([]types.Staff, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Staff, error)
	GetByEmail(ctx context.Context, email string) (*types.Staff, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, staff types.Staff) (*types.Staff, error)
	Update(ctx context.Context, staff types.Staff) (*types.Staff, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type staffRepo struct {
	mu   sync.Mutex
	coll collection[types.Staff]
	log  *logger.Logger
}

func NewStaffRepo(store kvstore.Store, baseLog *logger.Logger) StaffRepo {
	repoLog := baseLog.With("repo", "StaffRepo")
	return &staffRepo{
		coll: collection[types.Staff]{
			store:    store,
			log:      repoLog,
			key:      SlotStaff,
			seedFrom: func(ds *seed.Dataset) []types.Staff { return ds.Staff },
		},
		log: repoLog,
	}
}

func (sr *staffRepo) List(ctx context.Context) ([]types.Staff, error) {
	return sr.coll.load(ctx)
}

func (sr *staffRepo) GetByID(ctx context.Context, id uuid.UUID) (*types.Staff, error) {
	members, err := sr.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].ID == id {
			return &members[i], nil
		}
	}
	return nil, ErrNotFound
}

func (sr *staffRepo) GetByEmail(ctx context.Context, email string) (*types.Staff, error) {
	members, err := sr.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(email))
	for i := range members {
		if strings.ToLower(members[i].Email) == needle {
			return &members[i], nil
		}
	}
	return nil, ErrNotFound
}

func (sr *staffRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := sr.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if err == ErrNotFound {
		return false, nil
	}
	return false, err
}

func (sr *staffRepo) Create(ctx context.Context, staff types.Staff) (*types.Staff, error) {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	members, err := sr.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].ID == staff.ID {
			return nil, ErrConflict
		}
	}
	members = append(members, staff)
	if err := sr.coll.save(ctx, members); err != nil {
		return nil, err
	}
	return &staff, nil
}

func (sr *staffRepo) Update(ctx context.Context, staff types.Staff) (*types.Staff, error) {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	members, err := sr.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].ID == staff.ID {
			members[i] = staff
			if err := sr.coll.save(ctx, members); err != nil {
				return nil, err
			}
			return &staff, nil
		}
	}
	return nil, ErrNotFound
}

func (sr *staffRepo) Delete(ctx context.Context, id uuid.UUID) error {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	members, err := sr.coll.load(ctx)
	if err != nil {
		return err
	}
	for i := range members {
		if members[i].ID == id {
			members = append(members[:i], members[i+1:]...)
			return sr.coll.save(ctx, members)
		}
	}
	return ErrNotFound
}
