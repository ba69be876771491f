package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nvelez/clientbridge-backend/internal/response"
	"github.com/nvelez/clientbridge-backend/internal/services"
)

type InvoiceHandler struct {
	invoiceService services.InvoiceService
}

func NewInvoiceHandler(invoiceService services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// GET /invoices?customer_id=...&overdue=true
func (ih *InvoiceHandler) List(c *gin.Context) {
	if raw := c.Query("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_customer_id", err)
			return
		}
		invoices, err := ih.invoiceService.ListByCustomer(c.Request.Context(), customerID)
		if err != nil {
			response.RespondServiceError(c, "invoice_list_failed", err)
			return
		}
		response.RespondOK(c, gin.H{"invoices": invoices})
		return
	}
	if c.Query("overdue") == "true" {
		invoices, err := ih.invoiceService.ListOverdue(c.Request.Context())
		if err != nil {
			response.RespondServiceError(c, "invoice_list_failed", err)
			return
		}
		response.RespondOK(c, gin.H{"invoices": invoices})
		return
	}
	invoices, err := ih.invoiceService.List(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, "invoice_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"invoices": invoices})
}

// GET /invoices/:id
func (ih *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	invoice, err := ih.invoiceService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, "invoice_get_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"invoice": invoice})
}

// POST /invoices
func (ih *InvoiceHandler) Create(c *gin.Context) {
	var req services.InvoiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	invoice, err := ih.invoiceService.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondServiceError(c, "invoice_create_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"invoice": invoice})
}

// PUT /invoices/:id
func (ih *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req services.InvoiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	invoice, err := ih.invoiceService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.RespondServiceError(c, "invoice_update_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"invoice": invoice})
}

// POST /invoices/:id/send
func (ih *InvoiceHandler) Send(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	invoice, err := ih.invoiceService.Send(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, "invoice_send_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"invoice": invoice})
}

// POST /invoices/:id/cancel
func (ih *InvoiceHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	invoice, err := ih.invoiceService.Cancel(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, "invoice_cancel_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"invoice": invoice})
}

// POST /invoices/:id/payments
func (ih *InvoiceHandler) RecordPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req services.PaymentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	invoice, err := ih.invoiceService.RecordPayment(c.Request.Context(), id, req)
	if err != nil {
		response.RespondServiceError(c, "invoice_payment_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"invoice": invoice})
}

// POST /invoices/mark-overdue
func (ih *InvoiceHandler) MarkOverdue(c *gin.Context) {
	changed, err := ih.invoiceService.MarkOverdue(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, "invoice_overdue_sweep_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"marked": changed})
}

// DELETE /invoices/:id
func (ih *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := ih.invoiceService.Delete(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, "invoice_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
