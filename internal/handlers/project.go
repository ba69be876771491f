package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nvelez/clientbridge-backend/internal/response"
	"github.com/nvelez/clientbridge-backend/internal/services"
	"github.com/nvelez/clientbridge-backend/internal/types"
)

type ProjectHandler struct {
	projectService services.ProjectService
}

func NewProjectHandler(projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// GET /projects?customer_id=...&status=...
func (ph *ProjectHandler) List(c *gin.Context) {
	if raw := c.Query("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_customer_id", err)
			return
		}
		projects, err := ph.projectService.ListByCustomer(c.Request.Context(), customerID)
		if err != nil {
			response.RespondServiceError(c, "project_list_failed", err)
			return
		}
		response.RespondOK(c, gin.H{"projects": projects})
		return
	}
	if status := c.Query("status"); status != "" {
		projects, err := ph.projectService.ListByStatus(c.Request.Context(), types.ProjectStatus(status))
		if err != nil {
			response.RespondServiceError(c, "project_list_failed", err)
			return
		}
		response.RespondOK(c, gin.H{"projects": projects})
		return
	}
	projects, err := ph.projectService.List(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, "project_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"projects": projects})
}

// GET /projects/:id
func (ph *ProjectHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	project, err := ph.projectService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, "project_get_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"project": project})
}

// POST /projects
func (ph *ProjectHandler) Create(c *gin.Context) {
	var req services.ProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	project, err := ph.projectService.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondServiceError(c, "project_create_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"project": project})
}

// PUT /projects/:id
func (ph *ProjectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req services.ProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	project, err := ph.projectService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.RespondServiceError(c, "project_update_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"project": project})
}

// PATCH /projects/:id/status
// body: { "status": "in_progress" }
func (ph *ProjectHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		Status types.ProjectStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	project, err := ph.projectService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.RespondServiceError(c, "project_status_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"project": project})
}

// DELETE /projects/:id
func (ph *ProjectHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := ph.projectService.Delete(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, "project_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
