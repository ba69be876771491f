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

type ProjectRepo interface {
	List(ctx context.Context) ([]types.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Project, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]types.Project, error)
	ListByStatus(ctx context.Context, status types.ProjectStatus) ([]types.Project, error)
	Create(ctx context.Context, project types.Project) (*types.Project, error)
	Update(ctx context.Context, project types.Project) (*types.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectRepo struct {
	mu   sync.Mutex
	coll collection[types.Project]
	log  *logger.Logger
}

func NewProjectRepo(store kvstore.Store, baseLog *logger.Logger) ProjectRepo {
	repoLog := baseLog.With("repo", "ProjectRepo")
	return &projectRepo{
		coll: collection[types.Project]{
			store:    store,
			log:      repoLog,
			key:      SlotProjects,
			seedFrom: func(ds *seed.Dataset) []types.Project { return ds.Projects },
		},
		log: repoLog,
	}
}

func (pr *projectRepo) List(ctx context.Context) ([]types.Project, error) {
	return pr.coll.load(ctx)
}

func (pr *projectRepo) GetByID(ctx context.Context, id uuid.UUID) (*types.Project, error) {
	projects, err := pr.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, ErrNotFound
}

func (pr *projectRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]types.Project, error) {
	projects, err := pr.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]types.Project, 0)
	for i := range projects {
		if projects[i].CustomerID == customerID {
			results = append(results, projects[i])
		}
	}
	return results, nil
}

func (pr *projectRepo) ListByStatus(ctx context.Context, status types.ProjectStatus) ([]types.Project, error) {
	projects, err := pr.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]types.Project, 0)
	for i := range projects {
		if projects[i].Status == status {
			results = append(results, projects[i])
		}
	}
	return results, nil
}

func (pr *projectRepo) Create(ctx context.Context, project types.Project) (*types.Project, error) {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	projects, err := pr.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == project.ID {
			return nil, ErrConflict
		}
	}
	projects = append(projects, project)
	if err := pr.coll.save(ctx, projects); err != nil {
		return nil, err
	}
	return &project, nil
}

func (pr *projectRepo) Update(ctx context.Context, project types.Project) (*types.Project, error) {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	projects, err := pr.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == project.ID {
			projects[i] = project
			if err := pr.coll.save(ctx, projects); err != nil {
				return nil, err
			}
			return &project, nil
		}
	}
	return nil, ErrNotFound
}

func (pr *projectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	projects, err := pr.coll.load(ctx)
	if err != nil {
		return err
	}
	for i := range projects {
		if projects[i].ID == id {
			projects = append(projects[:i], projects[i+1:]...)
			return pr.coll.save(ctx, projects)
		}
	}
	return ErrNotFound
}
