package services

import (
	"context"
	"testing"
)

func newStaffService(t *testing.T) (StaffService, testRepos) {
	t.Helper()
	log := newTestLogger(t)
	reposet := newTestRepos(t)
	return NewStaffService(log, reposet.Staff, stubAvatarService{}), reposet
}

func TestStaffServiceCreate(t *testing.T) {
	ctx := context.Background()
	staffService, reposet := newStaffService(t)

	view, err := staffService.Create(ctx, StaffInput{
		FirstName: "Karl",
		LastName:  "Ritter",
		Email:     "Karl.Ritter@Example.com",
		Password:  "secretpass",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !view.Active {
		t.Fatalf("new member must be active")
	}
	if view.Email != "karl.ritter@example.com" {
		t.Fatalf("email not normalized: got=%q", view.Email)
	}

	// The stored record carries the hash, never the plaintext.
	stored, err := reposet.Staff.GetByID(ctx, view.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.PasswordHash == "" || stored.PasswordHash == "secretpass" {
		t.Fatalf("password hash: got=%q", stored.PasswordHash)
	}

	if _, err := staffService.Create(ctx, StaffInput{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "karl.ritter@example.com",
		Password:  "anotherpass",
	}); err == nil {
		t.Fatalf("Create: duplicate email must fail")
	}

	if _, err := staffService.Create(ctx, StaffInput{
		FirstName: "No",
		LastName:  "Password",
		Email:     "nopass@example.com",
	}); err == nil {
		t.Fatalf("Create: missing password must fail")
	}
}

func TestStaffServiceDeactivate(t *testing.T) {
	ctx := context.Background()
	staffService, _ := newStaffService(t)

	view, err := staffService.Create(ctx, StaffInput{
		FirstName: "Eva",
		LastName:  "Stein",
		Email:     "eva@example.com",
		Password:  "secretpass",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	deactivated, err := staffService.Deactivate(ctx, view.ID)
	if err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	if deactivated.Active {
		t.Fatalf("member still active after deactivate")
	}
}

func TestStaffServiceUpdatePasswordChange(t *testing.T) {
	ctx := context.Background()
	staffService, reposet := newStaffService(t)

	view, err := staffService.Create(ctx, StaffInput{
		FirstName: "Jan",
		LastName:  "Meyer",
		Email:     "jan@example.com",
		Password:  "firstpass",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	before, err := reposet.Staff.GetByID(ctx, view.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	// Update without a password keeps the old hash.
	if _, err := staffService.Update(ctx, view.ID, StaffInput{
		FirstName: "Jan",
		LastName:  "Meyer",
		Email:     "jan@example.com",
		Title:     "Lead",
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	unchanged, err := reposet.Staff.GetByID(ctx, view.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if unchanged.PasswordHash != before.PasswordHash {
		t.Fatalf("password hash changed without new password")
	}
	if unchanged.Title != "Lead" {
		t.Fatalf("title: want=%q got=%q", "Lead", unchanged.Title)
	}

	// Update with a password rotates the hash.
	if _, err := staffService.Update(ctx, view.ID, StaffInput{
		FirstName: "Jan",
		LastName:  "Meyer",
		Email:     "jan@example.com",
		Password:  "secondpass",
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	rotated, err := reposet.Staff.GetByID(ctx, view.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if rotated.PasswordHash == before.PasswordHash {
		t.Fatalf("password hash not rotated")
	}
}
