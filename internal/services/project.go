package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nvelez/clientbridge-backend/internal/logger"
	"github.com/nvelez/clientbridge-backend/internal/repos"
	"github.com/nvelez/clientbridge-backend/internal/types"
)

type ProjectInput struct {
	CustomerID  uuid.UUID       `json:"customer_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	StartDate   *time.Time      `json:"start_date"`
	EndDate     *time.Time      `json:"end_date"`
	Budget      decimal.Decimal `json:"budget"`
}

type ProjectService interface {
	List(ctx context.Context) ([]types.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Project, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]types.Project, error)
	ListByStatus(ctx context.Context, status types.ProjectStatus) ([]types.Project, error)
	Create(ctx context.Context, input ProjectInput) (*types.Project, error)
	Update(ctx context.Context, id uuid.UUID, input ProjectInput) (*types.Project, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status types.ProjectStatus) (*types.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
	log          *logger.Logger
	projectRepo  repos.ProjectRepo
	customerRepo repos.CustomerRepo
}

func NewProjectService(log *logger.Logger, projectRepo repos.ProjectRepo, customerRepo repos.CustomerRepo) ProjectService {
	serviceLog := log.With("service", "ProjectService")
	return &projectService{
		log:          serviceLog,
		projectRepo:  projectRepo,
		customerRepo: customerRepo,
	}
}

func validateProjectInput(input *ProjectInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return fmt.Errorf("a project name is required")
	}
	if input.CustomerID == uuid.Nil {
		return fmt.Errorf("a customer is required")
	}
	if input.Budget.IsNegative() {
		return fmt.Errorf("budget cannot be negative")
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return fmt.Errorf("end date cannot be before start date")
	}
	return nil
}

func (ps *projectService) List(ctx context.Context) ([]types.Project, error) {
	return ps.projectRepo.List(ctx)
}

func (ps *projectService) Get(ctx context.Context, id uuid.UUID) (*types.Project, error) {
	return ps.projectRepo.GetByID(ctx, id)
}

func (ps *projectService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]types.Project, error) {
	return ps.projectRepo.ListByCustomer(ctx, customerID)
}

func (ps *projectService) ListByStatus(ctx context.Context, status types.ProjectStatus) ([]types.Project, error) {
	if !types.IsValidProjectStatus(status) {
		return nil, fmt.Errorf("unknown project status %q", status)
	}
	return ps.projectRepo.ListByStatus(ctx, status)
}

func (ps *projectService) Create(ctx context.Context, input ProjectInput) (*types.Project, error) {
	if err := validateProjectInput(&input); err != nil {
		return nil, err
	}
	if _, err := ps.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		return nil, fmt.Errorf("project customer: %w", err)
	}

	now := time.Now().UTC()
	project := types.Project{
		ID:          uuid.New(),
		CustomerID:  input.CustomerID,
		Name:        input.Name,
		Description: input.Description,
		Status:      types.ProjectStatusPlanned,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Budget:      input.Budget,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := ps.projectRepo.Create(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	ps.log.Info("Project created", "project_id", created.ID, "customer_id", created.CustomerID)
	return created, nil
}

func (ps *projectService) Update(ctx context.Context, id uuid.UUID, input ProjectInput) (*types.Project, error) {
	if err := validateProjectInput(&input); err != nil {
		return nil, err
	}

	existing, err := ps.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.CustomerID != existing.CustomerID {
		if _, err := ps.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
			return nil, fmt.Errorf("project customer: %w", err)
		}
	}

	updated := *existing
	updated.CustomerID = input.CustomerID
	updated.Name = input.Name
	updated.Description = input.Description
	updated.StartDate = input.StartDate
	updated.EndDate = input.EndDate
	updated.Budget = input.Budget
	updated.UpdatedAt = time.Now().UTC()

	return ps.projectRepo.Update(ctx, updated)
}

func (ps *projectService) UpdateStatus(ctx context.Context, id uuid.UUID, status types.ProjectStatus) (*types.Project, error) {
	if !types.IsValidProjectStatus(status) {
		return nil, fmt.Errorf("unknown project status %q", status)
	}

	existing, err := ps.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Status = status
	updated.UpdatedAt = time.Now().UTC()
	return ps.projectRepo.Update(ctx, updated)
}

func (ps *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ps.projectRepo.Delete(ctx, id); err != nil {
		return err
	}
	ps.log.Info("Project deleted", "project_id", id)
	return nil
}
