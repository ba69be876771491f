package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nvelez/clientbridge-backend/internal/types"
)

func newProjectService(t *testing.T) (ProjectService, testRepos) {
	t.Helper()
	log := newTestLogger(t)
	reposet := newTestRepos(t)
	return NewProjectService(log, reposet.Project, reposet.Customer), reposet
}

func seedProjectCustomer(t *testing.T, reposet testRepos) uuid.UUID {
	t.Helper()
	customer, err := reposet.Customer.Create(context.Background(), types.Customer{
		ID:        uuid.New(),
		FirstName: "Lena",
		LastName:  "Berg",
		Email:     "lena@example.com",
		Status:    types.CustomerStatusActive,
	})
	if err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return customer.ID
}

func TestProjectServiceCreateDefaults(t *testing.T) {
	ctx := context.Background()
	projectService, reposet := newProjectService(t)
	customerID := seedProjectCustomer(t, reposet)

	project, err := projectService.Create(ctx, ProjectInput{
		CustomerID: customerID,
		Name:       "  Website Relaunch  ",
		Budget:     decimal.NewFromInt(25000),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if project.Status != types.ProjectStatusPlanned {
		t.Fatalf("status: want=%s got=%s", types.ProjectStatusPlanned, project.Status)
	}
	if project.Name != "Website Relaunch" {
		t.Fatalf("name not trimmed: got=%q", project.Name)
	}

	if _, err := projectService.Get(ctx, project.ID); err != nil {
		t.Fatalf("Get after Create: %v", err)
	}
}

func TestProjectServiceCreateRequiresCustomer(t *testing.T) {
	ctx := context.Background()
	projectService, reposet := newProjectService(t)
	seedProjectCustomer(t, reposet)

	if _, err := projectService.Create(ctx, ProjectInput{Name: "Orphan"}); err == nil {
		t.Fatalf("Create: expected error without a customer")
	}
	if _, err := projectService.Create(ctx, ProjectInput{
		CustomerID: uuid.New(),
		Name:       "Ghost customer",
	}); err == nil {
		t.Fatalf("Create: expected error for unknown customer")
	}
}

func TestProjectServiceCreateValidation(t *testing.T) {
	ctx := context.Background()
	projectService, reposet := newProjectService(t)
	customerID := seedProjectCustomer(t, reposet)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -7)

	cases := []struct {
		name  string
		input ProjectInput
	}{
		{"empty name", ProjectInput{CustomerID: customerID, Name: "   "}},
		{"negative budget", ProjectInput{CustomerID: customerID, Name: "P", Budget: decimal.NewFromInt(-1)}},
		{"end before start", ProjectInput{CustomerID: customerID, Name: "P", StartDate: &start, EndDate: &end}},
	}
	for _, tc := range cases {
		if _, err := projectService.Create(ctx, tc.input); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestProjectServiceUpdateStatus(t *testing.T) {
	ctx := context.Background()
	projectService, reposet := newProjectService(t)
	customerID := seedProjectCustomer(t, reposet)

	project, err := projectService.Create(ctx, ProjectInput{CustomerID: customerID, Name: "Rollout"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := projectService.UpdateStatus(ctx, project.ID, types.ProjectStatusInProgress)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != types.ProjectStatusInProgress {
		t.Fatalf("status: want=%s got=%s", types.ProjectStatusInProgress, updated.Status)
	}

	if _, err := projectService.UpdateStatus(ctx, project.ID, "archived"); err == nil {
		t.Fatalf("UpdateStatus: expected error for unknown status")
	}
}

func TestProjectServiceListFilters(t *testing.T) {
	ctx := context.Background()
	projectService, reposet := newProjectService(t)
	customerID := seedProjectCustomer(t, reposet)
	otherID := func() uuid.UUID {
		customer, err := reposet.Customer.Create(ctx, types.Customer{
			ID:        uuid.New(),
			FirstName: "Omar",
			Email:     "omar@example.com",
			Status:    types.CustomerStatusActive,
		})
		if err != nil {
			t.Fatalf("seed customer: %v", err)
		}
		return customer.ID
	}()

	first, err := projectService.Create(ctx, ProjectInput{CustomerID: customerID, Name: "First"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := projectService.Create(ctx, ProjectInput{CustomerID: otherID, Name: "Second"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := projectService.UpdateStatus(ctx, second.ID, types.ProjectStatusInProgress); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	byCustomer, err := projectService.ListByCustomer(ctx, customerID)
	if err != nil {
		t.Fatalf("ListByCustomer: %v", err)
	}
	if len(byCustomer) != 1 || byCustomer[0].ID != first.ID {
		t.Fatalf("ListByCustomer: want=[%s] got=%v", first.ID, byCustomer)
	}

	byStatus, err := projectService.ListByStatus(ctx, types.ProjectStatusInProgress)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(byStatus) != 1 || byStatus[0].ID != second.ID {
		t.Fatalf("ListByStatus: want=[%s] got=%v", second.ID, byStatus)
	}

	if _, err := projectService.ListByStatus(ctx, "someday"); err == nil {
		t.Fatalf("ListByStatus: expected error for unknown status")
	}
}

func TestProjectServiceUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	projectService, reposet := newProjectService(t)
	customerID := seedProjectCustomer(t, reposet)

	project, err := projectService.Create(ctx, ProjectInput{CustomerID: customerID, Name: "Draft plan"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := projectService.Update(ctx, project.ID, ProjectInput{
		CustomerID:  customerID,
		Name:        "Final plan",
		Description: "Scoped",
		Budget:      decimal.NewFromInt(4000),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Final plan" || updated.Description != "Scoped" {
		t.Fatalf("Update fields: got=%+v", updated)
	}

	if err := projectService.Delete(ctx, project.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := projectService.Get(ctx, project.ID); err == nil {
		t.Fatalf("Get after Delete: expected error")
	}
}
