package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nvelez/clientbridge-backend/internal/handlers"
	"github.com/nvelez/clientbridge-backend/internal/middleware"
	"github.com/nvelez/clientbridge-backend/internal/observability"
)

type RouterConfig struct {
	CORSOrigins []string

	AuthHandler      *handlers.AuthHandler
	AuthMiddleware   *middleware.AuthMiddleware
	CustomerHandler  *handlers.CustomerHandler
	LeadHandler      *handlers.LeadHandler
	ProjectHandler   *handlers.ProjectHandler
	StaffHandler     *handlers.StaffHandler
	EstimateHandler  *handlers.EstimateHandler
	InvoiceHandler   *handlers.InvoiceHandler
	AnalyticsHandler *handlers.AnalyticsHandler

	RequestLogger gin.HandlerFunc
	Metrics       *observability.Metrics
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5173",
		}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	if cfg.Metrics != nil {
		router.Use(middleware.Metrics(cfg.Metrics))
	}
	if cfg.RequestLogger != nil {
		router.Use(cfg.RequestLogger)
	}

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/login", cfg.AuthHandler.Login)
	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.GET("/me", cfg.AuthHandler.Me)
	// Customers
	protected.GET("/customers", cfg.CustomerHandler.List)
	protected.GET("/customers/:id", cfg.CustomerHandler.Get)
	protected.POST("/customers", cfg.CustomerHandler.Create)
	protected.PUT("/customers/:id", cfg.CustomerHandler.Update)
	protected.DELETE("/customers/:id", cfg.CustomerHandler.Delete)
	// Leads
	protected.GET("/leads", cfg.LeadHandler.List)
	protected.GET("/leads/:id", cfg.LeadHandler.Get)
	protected.POST("/leads", cfg.LeadHandler.Create)
	protected.PUT("/leads/:id", cfg.LeadHandler.Update)
	protected.PATCH("/leads/:id/status", cfg.LeadHandler.UpdateStatus)
	protected.POST("/leads/:id/convert", cfg.LeadHandler.Convert)
	protected.DELETE("/leads/:id", cfg.LeadHandler.Delete)
	// Projects
	protected.GET("/projects", cfg.ProjectHandler.List)
	protected.GET("/projects/:id", cfg.ProjectHandler.Get)
	protected.POST("/projects", cfg.ProjectHandler.Create)
	protected.PUT("/projects/:id", cfg.ProjectHandler.Update)
	protected.PATCH("/projects/:id/status", cfg.ProjectHandler.UpdateStatus)
	protected.DELETE("/projects/:id", cfg.ProjectHandler.Delete)
	// Staff
	protected.GET("/staff", cfg.StaffHandler.List)
	protected.GET("/staff/:id", cfg.StaffHandler.Get)
	protected.POST("/staff", cfg.StaffHandler.Create)
	protected.PUT("/staff/:id", cfg.StaffHandler.Update)
	protected.POST("/staff/:id/deactivate", cfg.StaffHandler.Deactivate)
	protected.DELETE("/staff/:id", cfg.StaffHandler.Delete)
	// Estimates
	protected.GET("/estimates", cfg.EstimateHandler.List)
	protected.GET("/estimates/:id", cfg.EstimateHandler.Get)
	protected.POST("/estimates", cfg.EstimateHandler.Create)
	protected.PUT("/estimates/:id", cfg.EstimateHandler.Update)
	protected.PATCH("/estimates/:id/status", cfg.EstimateHandler.UpdateStatus)
	protected.POST("/estimates/:id/convert", cfg.EstimateHandler.Convert)
	protected.DELETE("/estimates/:id", cfg.EstimateHandler.Delete)
	// Invoices
	protected.GET("/invoices", cfg.InvoiceHandler.List)
	protected.GET("/invoices/:id", cfg.InvoiceHandler.Get)
	protected.POST("/invoices", cfg.InvoiceHandler.Create)
	protected.PUT("/invoices/:id", cfg.InvoiceHandler.Update)
	protected.POST("/invoices/:id/send", cfg.InvoiceHandler.Send)
	protected.POST("/invoices/:id/cancel", cfg.InvoiceHandler.Cancel)
	protected.POST("/invoices/:id/payments", cfg.InvoiceHandler.RecordPayment)
	protected.POST("/invoices/mark-overdue", cfg.InvoiceHandler.MarkOverdue)
	protected.DELETE("/invoices/:id", cfg.InvoiceHandler.Delete)
	// Analytics
	protected.GET("/analytics/summary", cfg.AnalyticsHandler.Summary)
	protected.GET("/analytics/revenue", cfg.AnalyticsHandler.RevenueTrend)
	protected.GET("/analytics/pipeline", cfg.AnalyticsHandler.Pipeline)
	protected.GET("/analytics/top-customers", cfg.AnalyticsHandler.TopCustomers)
	protected.GET("/analytics/projects", cfg.AnalyticsHandler.ProjectBreakdown)

	return router
}
