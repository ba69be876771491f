package app

import (
	"github.com/nvelez/clientbridge-backend/internal/kvstore"
	"github.com/nvelez/clientbridge-backend/internal/logger"
	"github.com/nvelez/clientbridge-backend/internal/repos"
)

type Repos struct {
	Customer repos.CustomerRepo
	Lead     repos.LeadRepo
	Project  repos.ProjectRepo
	Staff    repos.StaffRepo
	Estimate repos.EstimateRepo
	Invoice  repos.InvoiceRepo
	Avatar   repos.AvatarRepo
}

func wireRepos(store kvstore.Store, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Customer: repos.NewCustomerRepo(store, log),
		Lead:     repos.NewLeadRepo(store, log),
		Project:  repos.NewProjectRepo(store, log),
		Staff:    repos.NewStaffRepo(store, log),
		Estimate: repos.NewEstimateRepo(store, log),
		Invoice:  repos.NewInvoiceRepo(store, log),
		Avatar:   repos.NewAvatarRepo(store, log),
	}
}
