package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nvelez/clientbridge-backend/internal/response"
	"github.com/nvelez/clientbridge-backend/internal/services"
	"github.com/nvelez/clientbridge-backend/internal/types"
)

type EstimateHandler struct {
	estimateService services.EstimateService
}

func NewEstimateHandler(estimateService services.EstimateService) *EstimateHandler {
	return &EstimateHandler{estimateService: estimateService}
}

// GET /estimates?customer_id=...
func (eh *EstimateHandler) List(c *gin.Context) {
	if raw := c.Query("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_customer_id", err)
			return
		}
		estimates, err := eh.estimateService.ListByCustomer(c.Request.Context(), customerID)
		if err != nil {
			response.RespondServiceError(c, "estimate_list_failed", err)
			return
		}
		response.RespondOK(c, gin.H{"estimates": estimates})
		return
	}
	estimates, err := eh.estimateService.List(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, "estimate_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"estimates": estimates})
}

// GET /estimates/:id
func (eh *EstimateHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	estimate, err := eh.estimateService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, "estimate_get_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"estimate": estimate})
}

// POST /estimates
func (eh *EstimateHandler) Create(c *gin.Context) {
	var req services.EstimateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	estimate, err := eh.estimateService.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondServiceError(c, "estimate_create_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"estimate": estimate})
}

// PUT /estimates/:id
func (eh *EstimateHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req services.EstimateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	estimate, err := eh.estimateService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.RespondServiceError(c, "estimate_update_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"estimate": estimate})
}

// PATCH /estimates/:id/status
// body: { "status": "sent" }
func (eh *EstimateHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		Status types.EstimateStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	estimate, err := eh.estimateService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.RespondServiceError(c, "estimate_status_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"estimate": estimate})
}

// POST /estimates/:id/convert
// body: { "due_in_days": 30 } (optional)
func (eh *EstimateHandler) Convert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		DueInDays int `json:"due_in_days"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
	}
	invoice, err := eh.estimateService.ConvertToInvoice(c.Request.Context(), id, req.DueInDays)
	if err != nil {
		response.RespondServiceError(c, "estimate_convert_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"invoice": invoice})
}

// DELETE /estimates/:id
func (eh *EstimateHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := eh.estimateService.Delete(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, "estimate_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
