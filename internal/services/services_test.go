package services

import (
	"context"
	"testing"

	"github.com/nvelez/clientbridge-backend/internal/kvstore"
	"github.com/nvelez/clientbridge-backend/internal/logger"
	"github.com/nvelez/clientbridge-backend/internal/repos"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(func() { log.Sync() })
	return log
}

// stubAvatarService keeps service tests off the PNG renderer.
type stubAvatarService struct{}

func (stubAvatarService) Generate(ctx context.Context, ownerID, initials, displayName string) (string, string, error) {
	return "data:image/png;base64,stub", "#1f2937", nil
}

func (stubAvatarService) Get(ctx context.Context, ownerID string) (string, error) {
	return "", nil
}

func (stubAvatarService) Remove(ctx context.Context, ownerID string) error {
	return nil
}

type testRepos struct {
	Customer repos.CustomerRepo
	Lead     repos.LeadRepo
	Project  repos.ProjectRepo
	Staff    repos.StaffRepo
	Estimate repos.EstimateRepo
	Invoice  repos.InvoiceRepo
}

// newTestRepos wires every repo over one in-memory store with all
// slots emptied so the seed dataset cannot leak into assertions.
func newTestRepos(t *testing.T) testRepos {
	t.Helper()
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	t.Cleanup(func() { store.Close() })

	for _, slot := range []string{
		repos.SlotCustomers,
		repos.SlotLeads,
		repos.SlotProjects,
		repos.SlotStaff,
		repos.SlotEstimates,
		repos.SlotInvoices,
	} {
		if err := store.Set(ctx, slot, []byte("[]")); err != nil {
			t.Fatalf("reset slot %q: %v", slot, err)
		}
	}

	log := newTestLogger(t)
	return testRepos{
		Customer: repos.NewCustomerRepo(store, log),
		Lead:     repos.NewLeadRepo(store, log),
		Project:  repos.NewProjectRepo(store, log),
		Staff:    repos.NewStaffRepo(store, log),
		Estimate: repos.NewEstimateRepo(store, log),
		Invoice:  repos.NewInvoiceRepo(store, log),
	}
}
