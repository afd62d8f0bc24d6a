package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/chinook-backend/internal/http/response"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
	"github.com/yungbote/chinook-backend/internal/services"
)

type InvoiceHandler struct {
	log      *logger.Logger
	invoices services.InvoiceService
}

func NewInvoiceHandler(log *logger.Logger, invoices services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		log:      log.With("handler", "InvoiceHandler"),
		invoices: invoices,
	}
}

// GET /invoices?skip=0&limit=100
func (h *InvoiceHandler) List(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}
	rows, err := h.invoices.List(c.Request.Context(), page)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	list(c, rows)
}

// GET /invoices/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.invoices.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// POST /invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	var in services.InvoiceInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.invoices.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// PUT /invoices/:id
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in services.InvoiceInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.invoices.Update(c.Request.Context(), id, in)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// DELETE /invoices/:id
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.invoices.Delete(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// GET /invoices/customer/:customer_id
func (h *InvoiceHandler) ListByCustomer(c *gin.Context) {
	customerID, ok := pathID(c, "customer_id")
	if !ok {
		return
	}
	rows, err := h.invoices.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	list(c, rows)
}

// GET /invoices/:id/lines
func (h *InvoiceHandler) Lines(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rows, err := h.invoices.Lines(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	list(c, rows)
}

// POST /invoices/:id/lines
// The body's InvoiceId must match :id. The invoice Total is recomputed.
func (h *InvoiceHandler) AddLine(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in services.InvoiceLineInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.invoices.AddLine(c.Request.Context(), id, in)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}
