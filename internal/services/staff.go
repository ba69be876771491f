package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nvelez/clientbridge-backend/internal/logger"
	"github.com/nvelez/clientbridge-backend/internal/repos"
	"github.com/nvelez/clientbridge-backend/internal/types"
)

type StaffInput struct {
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Title      string     `json:"title"`
	Department string     `json:"department"`
	HireDate   *time.Time `json:"hire_date"`
	Password   string     `json:"password,omitempty"`
}

type StaffService interface {
	List(ctx context.Context) ([]types.StaffView, error)
	Get(ctx context.Context, id uuid.UUID) (*types.StaffView, error)
	Create(ctx context.Context, input StaffInput) (*types.StaffView, error)
	Update(ctx context.Context, id uuid.UUID, input StaffInput) (*types.StaffView, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*types.StaffView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type staffService struct {
	log           *logger.Logger
	staffRepo     repos.StaffRepo
	avatarService AvatarService
}

func NewStaffService(log *logger.Logger, staffRepo repos.StaffRepo, avatarService AvatarService) StaffService {
	serviceLog := log.With("service", "StaffService")
	return &staffService{
		log:           serviceLog,
		staffRepo:     staffRepo,
		avatarService: avatarService,
	}
}

func validateStaffInput(input *StaffInput) error {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if input.FirstName == "" {
		return fmt.Errorf("a first name is required")
	}
	if input.LastName == "" {
		return fmt.Errorf("a last name is required")
	}
	if input.Email == "" {
		return fmt.Errorf("an email is required")
	}
	return nil
}

func (ss *staffService) List(ctx context.Context) ([]types.StaffView, error) {
	members, err := ss.staffRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]types.StaffView, 0, len(members))
	for i := range members {
		views = append(views, members[i].View())
	}
	return views, nil
}

func (ss *staffService) Get(ctx context.Context, id uuid.UUID) (*types.StaffView, error) {
	member, err := ss.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := member.View()
	return &view, nil
}

func (ss *staffService) Create(ctx context.Context, input StaffInput) (*types.StaffView, error) {
	if err := validateStaffInput(&input); err != nil {
		return nil, err
	}
	if input.Password == "" {
		return nil, fmt.Errorf("a password is required")
	}

	exists, err := ss.staffRepo.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("check staff email: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("email is already in use")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	hireDate := now
	if input.HireDate != nil {
		hireDate = *input.HireDate
	}
	member := types.Staff{
		ID:           uuid.New(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		Title:        input.Title,
		Department:   input.Department,
		HireDate:     hireDate,
		Active:       true,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	avatarURL, _, err := ss.avatarService.Generate(ctx, member.ID.String(), member.Initials(), member.FullName())
	if err != nil {
		ss.log.Warn("Avatar generation failed", "error", err)
	} else {
		member.AvatarURL = avatarURL
	}

	created, err := ss.staffRepo.Create(ctx, member)
	if err != nil {
		return nil, fmt.Errorf("create staff member: %w", err)
	}
	ss.log.Info("Staff member created", "staff_id", created.ID)
	view := created.View()
	return &view, nil
}

func (ss *staffService) Update(ctx context.Context, id uuid.UUID, input StaffInput) (*types.StaffView, error) {
	if err := validateStaffInput(&input); err != nil {
		return nil, err
	}

	existing, err := ss.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Email != strings.ToLower(existing.Email) {
		exists, err := ss.staffRepo.EmailExists(ctx, input.Email)
		if err != nil {
			return nil, fmt.Errorf("check staff email: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("email is already in use")
		}
	}

	updated := *existing
	updated.FirstName = input.FirstName
	updated.LastName = input.LastName
	updated.Email = input.Email
	updated.Phone = input.Phone
	updated.Title = input.Title
	updated.Department = input.Department
	if input.HireDate != nil {
		updated.HireDate = *input.HireDate
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		updated.PasswordHash = string(hash)
	}
	updated.UpdatedAt = time.Now().UTC()

	saved, err := ss.staffRepo.Update(ctx, updated)
	if err != nil {
		return nil, err
	}
	view := saved.View()
	return &view, nil
}

func (ss *staffService) Deactivate(ctx context.Context, id uuid.UUID) (*types.StaffView, error) {
	existing, err := ss.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := *existing
	updated.Active = false
	updated.UpdatedAt = time.Now().UTC()

	saved, err := ss.staffRepo.Update(ctx, updated)
	if err != nil {
		return nil, err
	}
	ss.log.Info("Staff member deactivated", "staff_id", id)
	view := saved.View()
	return &view, nil
}

func (ss *staffService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ss.staffRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := ss.avatarService.Remove(ctx, id.String()); err != nil {
		ss.log.Warn("Avatar cleanup failed", "staff_id", id, "error", err)
	}
	ss.log.Info("Staff member deleted", "staff_id", id)
	return nil
}
