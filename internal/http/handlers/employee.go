package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/chinook-backend/internal/http/response"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
	"github.com/yungbote/chinook-backend/internal/services"
)

type EmployeeHandler struct {
	log       *logger.Logger
	employees services.EmployeeService
}

func NewEmployeeHandler(log *logger.Logger, employees services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		log:       log.With("handler", "EmployeeHandler"),
		employees: employees,
	}
}

// GET /employees?skip=0&limit=100
func (h *EmployeeHandler) List(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}
	rows, err := h.employees.List(c.Request.Context(), page)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	list(c, rows)
}

// GET /employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.employees.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// POST /employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var in services.EmployeeInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.employees.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// PUT /employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in services.EmployeeInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.employees.Update(c.Request.Context(), id, in)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// DELETE /employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.employees.Delete(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// GET /employees/:id/subordinates
func (h *EmployeeHandler) Subordinates(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rows, err := h.employees.Subordinates(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	list(c, rows)
}
