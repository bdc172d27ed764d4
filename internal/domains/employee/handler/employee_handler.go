package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-backend/internal/domains/employee"
	"library-backend/internal/shared/response"
)

type EmployeeHandler struct {
	svc employee.Service
}

func NewEmployeeHandler(svc employee.Service) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// Create registers a new employee.
// POST /employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req employee.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	e, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, e)
}

// GetByID returns one employee.
// GET /employees/:id
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	e, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, e)
}

// Update replaces an employee's mutable fields.
// PUT /employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	e, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, e)
}

// List returns employees matching the filter query parameters.
// GET /employees?q=&department=&status=
func (h *EmployeeHandler) List(c *gin.Context) {
	filter := employee.Filter{
		Query:      c.Query("q"),
		Department: c.Query("department"),
		Status:     employee.Status(c.Query("status")),
	}

	employees, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, employees, &response.Meta{Total: len(employees)})
}

// ListActive returns active employees for dropdown population.
// GET /employees/active
func (h *EmployeeHandler) ListActive(c *gin.Context) {
	employees, err := h.svc.List(c.Request.Context(), employee.Filter{Status: employee.StatusActive})
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, employees)
}

// Departments returns the distinct department names.
// GET /employees/departments
func (h *EmployeeHandler) Departments(c *gin.Context) {
	departments, err := h.svc.Departments(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, departments)
}

func (h *EmployeeHandler) writeError(c *gin.Context, err error) {
	var verr validation.Errors
	switch {
	case errors.As(err, &verr):
		response.ValidationFailed(c, verr)
	case errors.Is(err, employee.ErrEmployeeNotFound):
		response.NotFound(c, "Employee not found")
	case errors.Is(err, employee.ErrDuplicateEmployeeID):
		response.Conflict(c, "Employee ID already exists")
	case errors.Is(err, employee.ErrDuplicateEmail):
		response.Conflict(c, "Email already exists")
	case errors.Is(err, employee.ErrInvalidStatus):
		response.BadRequest(c, "Invalid employee status")
	default:
		response.InternalServerError(c, "Failed to process employee request")
	}
}
