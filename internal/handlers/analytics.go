package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nvelez/clientbridge-backend/internal/response"
	"github.com/nvelez/clientbridge-backend/internal/services"
)

type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GET /analytics/summary
func (ah *AnalyticsHandler) Summary(c *gin.Context) {
	summary, err := ah.analyticsService.DashboardSummary(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "analytics_summary_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"summary": summary})
}

// GET /analytics/revenue?months=12
func (ah *AnalyticsHandler) RevenueTrend(c *gin.Context) {
	months := 0
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_months", err)
			return
		}
		months = parsed
	}
	trend, err := ah.analyticsService.RevenueTrend(c.Request.Context(), months)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "analytics_revenue_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"trend": trend})
}

// GET /analytics/pipeline
func (ah *AnalyticsHandler) Pipeline(c *gin.Context) {
	stages, err := ah.analyticsService.PipelineByStage(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "analytics_pipeline_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"stages": stages})
}

// GET /analytics/top-customers?limit=5
func (ah *AnalyticsHandler) TopCustomers(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_limit", err)
			return
		}
		limit = parsed
	}
	customers, err := ah.analyticsService.TopCustomers(c.Request.Context(), limit)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "analytics_top_customers_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"customers": customers})
}

// GET /analytics/projects
func (ah *AnalyticsHandler) ProjectBreakdown(c *gin.Context) {
	breakdown, err := ah.analyticsService.ProjectBreakdown(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "analytics_projects_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"breakdown": breakdown})
}
