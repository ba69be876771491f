package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nvelez/clientbridge-backend/internal/response"
	"github.com/nvelez/clientbridge-backend/internal/services"
	"github.com/nvelez/clientbridge-backend/internal/types"
)

type LeadHandler struct {
	leadService services.LeadService
}

func NewLeadHandler(leadService services.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// GET /leads?status=...
func (lh *LeadHandler) List(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		leads, err := lh.leadService.ListByStatus(c.Request.Context(), types.LeadStatus(status))
		if err != nil {
			response.RespondServiceError(c, "lead_list_failed", err)
			return
		}
		response.RespondOK(c, gin.H{"leads": leads})
		return
	}
	leads, err := lh.leadService.List(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, "lead_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"leads": leads})
}

// GET /leads/:id
func (lh *LeadHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	lead, err := lh.leadService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, "lead_get_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"lead": lead})
}

// POST /leads
func (lh *LeadHandler) Create(c *gin.Context) {
	var req services.LeadInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	lead, err := lh.leadService.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondServiceError(c, "lead_create_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"lead": lead})
}

// PUT /leads/:id
func (lh *LeadHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req services.LeadInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	lead, err := lh.leadService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.RespondServiceError(c, "lead_update_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"lead": lead})
}

// PATCH /leads/:id/status
// body: { "status": "contacted" }
func (lh *LeadHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		Status types.LeadStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	lead, err := lh.leadService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.RespondServiceError(c, "lead_status_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"lead": lead})
}

// POST /leads/:id/convert
func (lh *LeadHandler) Convert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	customer, lead, err := lh.leadService.Convert(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, "lead_convert_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"customer": customer, "lead": lead})
}

// DELETE /leads/:id
func (lh *LeadHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := lh.leadService.Delete(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, "lead_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
