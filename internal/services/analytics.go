package services

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/nvelez/clientbridge-backend/internal/logger"
	"github.com/nvelez/clientbridge-backend/internal/repos"
	"github.com/nvelez/clientbridge-backend/internal/types"
)

const (
	defaultTrendMonths  = 12
	defaultTopCustomers = 5
)

// AnalyticsService re-derives every aggregate from the full
// collections on each call. The datasets are small enough that
// recomputation beats keeping any materialized state in sync.
type AnalyticsService interface {
	DashboardSummary(ctx context.Context) (*types.DashboardSummary, error)
	RevenueTrend(ctx context.Context, months int) ([]types.RevenueMonth, error)
	PipelineByStage(ctx context.Context) ([]types.PipelineStage, error)
	TopCustomers(ctx context.Context, limit int) ([]types.CustomerRevenue, error)
	ProjectBreakdown(ctx context.Context) ([]types.ProjectStatusCount, error)
}

type analyticsService struct {
	log          *logger.Logger
	customerRepo repos.CustomerRepo
	leadRepo     repos.LeadRepo
	projectRepo  repos.ProjectRepo
	invoiceRepo  repos.InvoiceRepo
	now          func() time.Time
}

func NewAnalyticsService(
	log *logger.Logger,
	customerRepo repos.CustomerRepo,
	leadRepo repos.LeadRepo,
	projectRepo repos.ProjectRepo,
	invoiceRepo repos.InvoiceRepo,
) AnalyticsService {
	serviceLog := log.With("service", "AnalyticsService")
	return &analyticsService{
		log:          serviceLog,
		customerRepo: customerRepo,
		leadRepo:     leadRepo,
		projectRepo:  projectRepo,
		invoiceRepo:  invoiceRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (an *analyticsService) DashboardSummary(ctx context.Context) (*types.DashboardSummary, error) {
	var (
		customerCounts map[types.CustomerStatus]int
		leads          []types.Lead
		projects       []types.Project
		invoices       []types.Invoice
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customerCounts, err = an.customerRepo.CountByStatus(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		leads, err = an.leadRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = an.projectRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		invoices, err = an.invoiceRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &types.DashboardSummary{
		CustomersByStatus: map[string]int{},
		PipelineValue:     decimal.Zero,
		InvoicedTotal:     decimal.Zero,
		PaidTotal:         decimal.Zero,
		OutstandingTotal:  decimal.Zero,
		OverdueTotal:      decimal.Zero,
	}

	for status, count := range customerCounts {
		summary.CustomersByStatus[string(status)] = count
		summary.CustomersTotal += count
	}

	converted := 0
	for i := range leads {
		l := &leads[i]
		if l.IsOpen() {
			summary.OpenLeads++
			summary.PipelineValue = summary.PipelineValue.Add(l.EstimatedValue)
		}
		if l.Status == types.LeadStatusConverted {
			converted++
		}
	}
	if len(leads) > 0 {
		summary.LeadConversion = float64(converted) / float64(len(leads))
	}

	for i := range projects {
		if projects[i].IsActive() {
			summary.ActiveProjects++
		}
	}

	now := an.now()
	for i := range invoices {
		inv := &invoices[i]
		if inv.Status == types.InvoiceStatusDraft || inv.Status == types.InvoiceStatusCancelled {
			continue
		}
		summary.InvoicedTotal = summary.InvoicedTotal.Add(inv.Total())
		summary.PaidTotal = summary.PaidTotal.Add(inv.PaidTotal())
		summary.OutstandingTotal = summary.OutstandingTotal.Add(inv.Balance())
		if inv.IsOverdue(now) {
			summary.OverdueTotal = summary.OverdueTotal.Add(inv.Balance())
			summary.OverdueCount++
		}
	}

	return summary, nil
}

// RevenueTrend buckets received payments by calendar month for the
// trailing window, newest bucket last. Every month in the window is
// present even when empty so charts do not skip gaps.
func (an *analyticsService) RevenueTrend(ctx context.Context, months int) ([]types.RevenueMonth, error) {
	if months <= 0 {
		months = defaultTrendMonths
	}

	invoices, err := an.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := an.now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	byMonth := map[string]decimal.Decimal{}
	for i := range invoices {
		if invoices[i].Status == types.InvoiceStatusCancelled {
			continue
		}
		for _, p := range invoices[i].Payments {
			if p.ReceivedAt.Before(start) {
				continue
			}
			key := p.ReceivedAt.Format("2006-01")
			byMonth[key] = byMonth[key].Add(p.Amount)
		}
	}

	trend := make([]types.RevenueMonth, 0, months)
	prev := decimal.Zero
	for i := 0; i < months; i++ {
		month := start.AddDate(0, i, 0)
		key := month.Format("2006-01")
		revenue := byMonth[key]
		trend = append(trend, types.RevenueMonth{
			Month:   key,
			Revenue: revenue,
			Delta:   revenue.Sub(prev),
		})
		prev = revenue
	}
	return trend, nil
}

func (an *analyticsService) PipelineByStage(ctx context.Context) ([]types.PipelineStage, error) {
	leads, err := an.leadRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	order := []types.LeadStatus{
		types.LeadStatusNew,
		types.LeadStatusContacted,
		types.LeadStatusQualified,
		types.LeadStatusConverted,
		types.LeadStatusLost,
	}
	byStatus := map[types.LeadStatus]*types.PipelineStage{}
	for _, status := range order {
		byStatus[status] = &types.PipelineStage{Status: status, Value: decimal.Zero}
	}
	for i := range leads {
		stage, ok := byStatus[leads[i].Status]
		if !ok {
			continue
		}
		stage.Count++
		stage.Value = stage.Value.Add(leads[i].EstimatedValue)
	}

	stages := make([]types.PipelineStage, 0, len(order))
	for _, status := range order {
		stages = append(stages, *byStatus[status])
	}
	return stages, nil
}

func (an *analyticsService) TopCustomers(ctx context.Context, limit int) ([]types.CustomerRevenue, error) {
	if limit <= 0 {
		limit = defaultTopCustomers
	}

	var (
		customers []types.Customer
		invoices  []types.Invoice
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customers, err = an.customerRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		invoices, err = an.invoiceRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := make(map[string]string, len(customers))
	for i := range customers {
		names[customers[i].ID.String()] = customers[i].DisplayName()
	}

	byCustomer := map[string]*types.CustomerRevenue{}
	for i := range invoices {
		inv := &invoices[i]
		if inv.Status == types.InvoiceStatusDraft || inv.Status == types.InvoiceStatusCancelled {
			continue
		}
		key := inv.CustomerID.String()
		entry, ok := byCustomer[key]
		if !ok {
			entry = &types.CustomerRevenue{
				CustomerID:   key,
				CustomerName: names[key],
				Invoiced:     decimal.Zero,
				Paid:         decimal.Zero,
			}
			byCustomer[key] = entry
		}
		entry.Invoiced = entry.Invoiced.Add(inv.Total())
		entry.Paid = entry.Paid.Add(inv.PaidTotal())
	}

	ranked := make([]types.CustomerRevenue, 0, len(byCustomer))
	for _, entry := range byCustomer {
		ranked = append(ranked, *entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].Invoiced.Equal(ranked[j].Invoiced) {
			return ranked[i].Invoiced.GreaterThan(ranked[j].Invoiced)
		}
		return ranked[i].CustomerName < ranked[j].CustomerName
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (an *analyticsService) ProjectBreakdown(ctx context.Context) ([]types.ProjectStatusCount, error) {
	projects, err := an.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	order := []types.ProjectStatus{
		types.ProjectStatusPlanned,
		types.ProjectStatusInProgress,
		types.ProjectStatusOnHold,
		types.ProjectStatusCompleted,
		types.ProjectStatusCancelled,
	}
	counts := map[types.ProjectStatus]int{}
	for i := range projects {
		counts[projects[i].Status]++
	}

	breakdown := make([]types.ProjectStatusCount, 0, len(order))
	for _, status := range order {
		breakdown = append(breakdown, types.ProjectStatusCount{Status: status, Count: counts[status]})
	}
	return breakdown, nil
}
