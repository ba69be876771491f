package app

import (
	"github.com/gin-gonic/gin"

	"github.com/nvelez/clientbridge-backend/internal/logger"
	mw "github.com/nvelez/clientbridge-backend/internal/middleware"
	"github.com/nvelez/clientbridge-backend/internal/observability"
	"github.com/nvelez/clientbridge-backend/internal/server"
)

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware, metrics *observability.Metrics) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		CORSOrigins:      cfg.CORSOrigins,
		AuthHandler:      handlers.Auth,
		AuthMiddleware:   middleware.Auth,
		CustomerHandler:  handlers.Customer,
		LeadHandler:      handlers.Lead,
		ProjectHandler:   handlers.Project,
		StaffHandler:     handlers.Staff,
		EstimateHandler:  handlers.Estimate,
		InvoiceHandler:   handlers.Invoice,
		AnalyticsHandler: handlers.Analytics,
		RequestLogger:    mw.RequestLogger(log),
		Metrics:          metrics,
	})
}
