package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nvelez/clientbridge-backend/internal/logger"
	"github.com/nvelez/clientbridge-backend/internal/repos"
	"github.com/nvelez/clientbridge-backend/internal/types"
)

// CustomerInput is the write shape shared by create and update.
type CustomerInput struct {
	FirstName  string               `json:"first_name"`
	LastName   string               `json:"last_name"`
	Company    string               `json:"company"`
	Email      string               `json:"email"`
	Phone      string               `json:"phone"`
	Street     string               `json:"street"`
	City       string               `json:"city"`
	PostalCode string               `json:"postal_code"`
	Country    string               `json:"country"`
	Status     types.CustomerStatus `json:"status"`
	Notes      string               `json:"notes"`
}

type CustomerService interface {
	List(ctx context.Context) ([]types.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Customer, error)
	Search(ctx context.Context, query string) ([]types.Customer, error)
	Create(ctx context.Context, input CustomerInput) (*types.Customer, error)
	Update(ctx context.Context, id uuid.UUID, input CustomerInput) (*types.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	log           *logger.Logger
	customerRepo  repos.CustomerRepo
	avatarService AvatarService
}

func NewCustomerService(log *logger.Logger, customerRepo repos.CustomerRepo, avatarService AvatarService) CustomerService {
	serviceLog := log.With("service", "CustomerService")
	return &customerService{
		log:           serviceLog,
		customerRepo:  customerRepo,
		avatarService: avatarService,
	}
}

func validateCustomerInput(input *CustomerInput) error {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Company = strings.TrimSpace(input.Company)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if input.FirstName == "" && input.LastName == "" && input.Company == "" {
		return fmt.Errorf("a contact name or company is required")
	}
	if input.Email == "" {
		return fmt.Errorf("an email is required")
	}
	if input.Status == "" {
		input.Status = types.CustomerStatusProspect
	}
	if !types.IsValidCustomerStatus(input.Status) {
		return fmt.Errorf("unknown customer status %q", input.Status)
	}
	return nil
}

func (cs *customerService) List(ctx context.Context) ([]types.Customer, error) {
	return cs.customerRepo.List(ctx)
}

func (cs *customerService) Get(ctx context.Context, id uuid.UUID) (*types.Customer, error) {
	return cs.customerRepo.GetByID(ctx, id)
}

func (cs *customerService) Search(ctx context.Context, query string) ([]types.Customer, error) {
	return cs.customerRepo.Search(ctx, query)
}

func (cs *customerService) Create(ctx context.Context, input CustomerInput) (*types.Customer, error) {
	if err := validateCustomerInput(&input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	customer := types.Customer{
		ID:         uuid.New(),
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Company:    input.Company,
		Email:      input.Email,
		Phone:      input.Phone,
		Street:     input.Street,
		City:       input.City,
		PostalCode: input.PostalCode,
		Country:    input.Country,
		Status:     input.Status,
		Notes:      input.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	avatarURL, avatarColor, err := cs.avatarService.Generate(ctx, customer.ID.String(), customer.Initials(), customer.DisplayName())
	if err != nil {
		// The customer record is worth more than its picture.
		cs.log.Warn("Avatar generation failed", "error", err)
	} else {
		customer.AvatarURL = avatarURL
		customer.AvatarColor = avatarColor
	}

	created, err := cs.customerRepo.Create(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	cs.log.Info("Customer created", "customer_id", created.ID)
	return created, nil
}

func (cs *customerService) Update(ctx context.Context, id uuid.UUID, input CustomerInput) (*types.Customer, error) {
	if err := validateCustomerInput(&input); err != nil {
		return nil, err
	}

	existing, err := cs.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	regenAvatar := existing.FirstName != input.FirstName ||
		existing.LastName != input.LastName ||
		existing.Company != input.Company

	updated := *existing
	updated.FirstName = input.FirstName
	updated.LastName = input.LastName
	updated.Company = input.Company
	updated.Email = input.Email
	updated.Phone = input.Phone
	updated.Street = input.Street
	updated.City = input.City
	updated.PostalCode = input.PostalCode
	updated.Country = input.Country
	updated.Status = input.Status
	updated.Notes = input.Notes
	updated.UpdatedAt = time.Now().UTC()

	if regenAvatar {
		avatarURL, avatarColor, err := cs.avatarService.Generate(ctx, updated.ID.String(), updated.Initials(), updated.DisplayName())
		if err != nil {
			cs.log.Warn("Avatar regeneration failed", "error", err)
		} else {
			updated.AvatarURL = avatarURL
			updated.AvatarColor = avatarColor
		}
	}

	return cs.customerRepo.Update(ctx, updated)
}

func (cs *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := cs.customerRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := cs.avatarService.Remove(ctx, id.String()); err != nil {
		cs.log.Warn("Avatar cleanup failed", "customer_id", id, "error", err)
	}
	cs.log.Info("Customer deleted", "customer_id", id)
	return nil
}
