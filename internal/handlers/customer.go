package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nvelez/clientbridge-backend/internal/response"
	"github.com/nvelez/clientbridge-backend/internal/services"
)

type CustomerHandler struct {
	customerService services.CustomerService
}

func NewCustomerHandler(customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// GET /customers?q=...
func (ch *CustomerHandler) List(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		customers, err := ch.customerService.Search(c.Request.Context(), q)
		if err != nil {
			response.RespondServiceError(c, "customer_search_failed", err)
			return
		}
		response.RespondOK(c, gin.H{"customers": customers})
		return
	}
	customers, err := ch.customerService.List(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, "customer_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"customers": customers})
}

// GET /customers/:id
func (ch *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	customer, err := ch.customerService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, "customer_get_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"customer": customer})
}

// POST /customers
func (ch *CustomerHandler) Create(c *gin.Context) {
	var req services.CustomerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	customer, err := ch.customerService.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondServiceError(c, "customer_create_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"customer": customer})
}

// PUT /customers/:id
func (ch *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req services.CustomerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	customer, err := ch.customerService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.RespondServiceError(c, "customer_update_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"customer": customer})
}

// DELETE /customers/:id
func (ch *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := ch.customerService.Delete(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, "customer_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
