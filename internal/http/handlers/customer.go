package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/chinook-backend/internal/http/response"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
	"github.com/yungbote/chinook-backend/internal/services"
)

type CustomerHandler struct {
	log       *logger.Logger
	customers services.CustomerService
}

func NewCustomerHandler(log *logger.Logger, customers services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		log:       log.With("handler", "CustomerHandler"),
		customers: customers,
	}
}

// GET /customers?skip=0&limit=100
func (h *CustomerHandler) List(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}
	rows, err := h.customers.List(c.Request.Context(), page)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	list(c, rows)
}

// GET /customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.customers.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// POST /customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var in services.CustomerInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.customers.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// PUT /customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in services.CustomerInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.customers.Update(c.Request.Context(), id, in)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// DELETE /customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.customers.Delete(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// GET /customers/:id/with-invoices
func (h *CustomerHandler) GetWithInvoices(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.customers.GetWithInvoices(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// GET /customers/search/:query
func (h *CustomerHandler) Search(c *gin.Context) {
	rows, err := h.customers.Search(c.Request.Context(), c.Param("query"))
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	list(c, rows)
}
