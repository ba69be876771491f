package app

import (
	"fmt"

	"github.com/nvelez/clientbridge-backend/internal/logger"
	"github.com/nvelez/clientbridge-backend/internal/services"
)

type Services struct {
	Avatar    services.AvatarService
	Auth      services.AuthService
	Customer  services.CustomerService
	Lead      services.LeadService
	Project   services.ProjectService
	Staff     services.StaffService
	Estimate  services.EstimateService
	Invoice   services.InvoiceService
	Analytics services.AnalyticsService
}

func wireServices(log *logger.Logger, cfg Config, reposet Repos) (Services, error) {
	log.Info("Wiring services...")

	avatarService, err := services.NewAvatarService(log, reposet.Avatar)
	if err != nil {
		return Services{}, fmt.Errorf("init avatar service: %w", err)
	}

	customerService := services.NewCustomerService(log, reposet.Customer, avatarService)

	return Services{
		Avatar:   avatarService,
		Auth:     services.NewAuthService(log, reposet.Staff, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		Customer: customerService,
		Lead:     services.NewLeadService(log, reposet.Lead, customerService),
		Project:  services.NewProjectService(log, reposet.Project, reposet.Customer),
		Staff:    services.NewStaffService(log, reposet.Staff, avatarService),
		Estimate: services.NewEstimateService(log, reposet.Estimate, reposet.Invoice, reposet.Customer, reposet.Project),
		Invoice:  services.NewInvoiceService(log, reposet.Invoice, reposet.Customer, reposet.Project),
		Analytics: services.NewAnalyticsService(
			log,
			reposet.Customer,
			reposet.Lead,
			reposet.Project,
			reposet.Invoice,
		),
	}, nil
}
