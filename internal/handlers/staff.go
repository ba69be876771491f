package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nvelez/clientbridge-backend/internal/response"
	"github.com/nvelez/clientbridge-backend/internal/services"
)

type StaffHandler struct {
	staffService services.StaffService
}

func NewStaffHandler(staffService services.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// GET /staff
func (sh *StaffHandler) List(c *gin.Context) {
	members, err := sh.staffService.List(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, "staff_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"staff": members})
}

// GET /staff/:id
func (sh *StaffHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	member, err := sh.staffService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, "staff_get_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"staff": member})
}

// POST /staff
func (sh *StaffHandler) Create(c *gin.Context) {
	var req services.StaffInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	member, err := sh.staffService.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondServiceError(c, "staff_create_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"staff": member})
}

// PUT /staff/:id
func (sh *StaffHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req services.StaffInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	member, err := sh.staffService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.RespondServiceError(c, "staff_update_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"staff": member})
}

// POST /staff/:id/deactivate
func (sh *StaffHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	member, err := sh.staffService.Deactivate(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, "staff_deactivate_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"staff": member})
}

// DELETE /staff/:id
func (sh *StaffHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := sh.staffService.Delete(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, "staff_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
