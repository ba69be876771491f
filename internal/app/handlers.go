package app

import (
	"github.com/nvelez/clientbridge-backend/internal/handlers"
	"github.com/nvelez/clientbridge-backend/internal/logger"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Customer  *handlers.CustomerHandler
	Lead      *handlers.LeadHandler
	Project   *handlers.ProjectHandler
	Staff     *handlers.StaffHandler
	Estimate  *handlers.EstimateHandler
	Invoice   *handlers.InvoiceHandler
	Analytics *handlers.AnalyticsHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:      handlers.NewAuthHandler(services.Auth),
		Customer:  handlers.NewCustomerHandler(services.Customer),
		Lead:      handlers.NewLeadHandler(services.Lead),
		Project:   handlers.NewProjectHandler(services.Project),
		Staff:     handlers.NewStaffHandler(services.Staff),
		Estimate:  handlers.NewEstimateHandler(services.Estimate),
		Invoice:   handlers.NewInvoiceHandler(services.Invoice),
		Analytics: handlers.NewAnalyticsHandler(services.Analytics),
	}
}
