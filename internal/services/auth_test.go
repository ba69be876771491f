package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nvelez/clientbridge-backend/internal/requestdata"
	"github.com/nvelez/clientbridge-backend/internal/types"
)

func seedStaffMember(t *testing.T, reposet testRepos, email, password string, active bool) *types.Staff {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	member, err := reposet.Staff.Create(context.Background(), types.Staff{
		ID:           uuid.New(),
		FirstName:    "Rita",
		LastName:     "Lang",
		Email:        email,
		Active:       active,
		PasswordHash: string(hash),
	})
	if err != nil {
		t.Fatalf("seed staff: %v", err)
	}
	return member
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()
	log := newTestLogger(t)
	reposet := newTestRepos(t)
	seedStaffMember(t, reposet, "rita@example.com", "opensesame", true)

	authService := NewAuthService(log, reposet.Staff, "test-secret", time.Hour)

	token, view, err := authService.Login(ctx, "Rita@Example.com ", "opensesame")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatalf("Login: expected token")
	}
	if view.Email != "rita@example.com" {
		t.Fatalf("view email: want=%q got=%q", "rita@example.com", view.Email)
	}

	if _, _, err := authService.Login(ctx, "rita@example.com", "wrong"); err == nil {
		t.Fatalf("Login: wrong password must fail")
	}
	if _, _, err := authService.Login(ctx, "nobody@example.com", "opensesame"); err == nil {
		t.Fatalf("Login: unknown email must fail")
	}
	if _, _, err := authService.Login(ctx, "", "opensesame"); err == nil {
		t.Fatalf("Login: empty email must fail")
	}
}

func TestAuthServiceLoginDeactivated(t *testing.T) {
	ctx := context.Background()
	log := newTestLogger(t)
	reposet := newTestRepos(t)
	seedStaffMember(t, reposet, "gone@example.com", "opensesame", false)

	authService := NewAuthService(log, reposet.Staff, "test-secret", time.Hour)
	if _, _, err := authService.Login(ctx, "gone@example.com", "opensesame"); err == nil {
		t.Fatalf("Login: deactivated account must fail")
	}
}

func TestAuthServiceTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	log := newTestLogger(t)
	reposet := newTestRepos(t)
	member := seedStaffMember(t, reposet, "rita@example.com", "opensesame", true)

	authService := NewAuthService(log, reposet.Staff, "test-secret", time.Hour)
	token, _, err := authService.Login(ctx, "rita@example.com", "opensesame")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	withRD, err := authService.SetContextFromToken(ctx, token)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	rd := requestdata.GetRequestData(withRD)
	if rd == nil {
		t.Fatalf("request data missing from context")
	}
	if rd.StaffID != member.ID {
		t.Fatalf("staff id: want=%s got=%s", member.ID, rd.StaffID)
	}
	if rd.StaffEmail != "rita@example.com" {
		t.Fatalf("staff email: want=%q got=%q", "rita@example.com", rd.StaffEmail)
	}
}

func TestAuthServiceRejectsForgedToken(t *testing.T) {
	ctx := context.Background()
	log := newTestLogger(t)
	reposet := newTestRepos(t)
	seedStaffMember(t, reposet, "rita@example.com", "opensesame", true)

	issuer := NewAuthService(log, reposet.Staff, "issuer-secret", time.Hour)
	verifier := NewAuthService(log, reposet.Staff, "other-secret", time.Hour)

	token, _, err := issuer.Login(ctx, "rita@example.com", "opensesame")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := verifier.SetContextFromToken(ctx, token); err == nil {
		t.Fatalf("SetContextFromToken: token signed with another secret must fail")
	}
	if _, err := verifier.SetContextFromToken(ctx, "not-a-token"); err == nil {
		t.Fatalf("SetContextFromToken: garbage must fail")
	}
}

func TestAuthServiceTokenForDeactivatedMember(t *testing.T) {
	ctx := context.Background()
	log := newTestLogger(t)
	reposet := newTestRepos(t)
	member := seedStaffMember(t, reposet, "rita@example.com", "opensesame", true)

	authService := NewAuthService(log, reposet.Staff, "test-secret", time.Hour)
	token, _, err := authService.Login(ctx, "rita@example.com", "opensesame")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	deactivated := *member
	deactivated.Active = false
	if _, err := reposet.Staff.Update(ctx, deactivated); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if _, err := authService.SetContextFromToken(ctx, token); err == nil {
		t.Fatalf("SetContextFromToken: deactivated member token must fail")
	}
}
