package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/circulation"
	"library-backend/internal/domains/employee"
	"library-backend/internal/shared/response"
)

type CirculationHandler struct {
	svc circulation.Service
}

func NewCirculationHandler(svc circulation.Service) *CirculationHandler {
	return &CirculationHandler{svc: svc}
}

// Checkout lends a book to an employee.
// POST /books/:id/checkout
func (h *CirculationHandler) Checkout(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	var req circulation.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(c, err)
		return
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}
	dueDate, err := circulation.ParseDueDate(req.DueDate)
	if err != nil {
		response.BadRequest(c, "Invalid due date, expected YYYY-MM-DD")
		return
	}

	loan, err := h.svc.Checkout(c.Request.Context(), bookID, employeeID, dueDate)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, loan)
}

// Return closes the open loan on a book.
// POST /books/:id/return
func (h *CirculationHandler) Return(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	if err := h.svc.Return(c.Request.Context(), bookID); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"book_id": bookID})
}

// Reserve queues an employee for a borrowed book.
// POST /books/:id/reservations
func (h *CirculationHandler) Reserve(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	var req circulation.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(c, err)
		return
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	res, err := h.svc.Reserve(c.Request.Context(), bookID, employeeID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res)
}

// CancelReservation cancels an active reservation.
// DELETE /reservations/:id
func (h *CirculationHandler) CancelReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid reservation ID")
		return
	}

	if err := h.svc.CancelReservation(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// BookLoans returns a book's loan history, newest first.
// GET /books/:id/loans
func (h *CirculationHandler) BookLoans(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	loans, err := h.svc.LoansForBook(c.Request.Context(), bookID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, loans, &response.Meta{Total: len(loans)})
}

// EmployeeLoans returns an employee's loan history, newest first.
// GET /employees/:id/loans
func (h *CirculationHandler) EmployeeLoans(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	loans, err := h.svc.LoansForEmployee(c.Request.Context(), employeeID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, loans, &response.Meta{Total: len(loans)})
}

// OverdueLoans returns open loans flagged overdue.
// GET /loans/overdue
func (h *CirculationHandler) OverdueLoans(c *gin.Context) {
	loans, err := h.svc.OverdueLoans(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, loans, &response.Meta{Total: len(loans)})
}

// BookReservations returns the active reservation queue for a book in
// first-come-first-served order.
// GET /books/:id/reservations
func (h *CirculationHandler) BookReservations(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	reservations, err := h.svc.ActiveReservationsForBook(c.Request.Context(), bookID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, reservations, &response.Meta{Total: len(reservations)})
}

// EmployeeReservations returns an employee's active reservations.
// GET /employees/:id/reservations
func (h *CirculationHandler) EmployeeReservations(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	reservations, err := h.svc.ActiveReservationsForEmployee(c.Request.Context(), employeeID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, reservations, &response.Meta{Total: len(reservations)})
}

func (h *CirculationHandler) writeError(c *gin.Context, err error) {
	var verr validation.Errors
	switch {
	case errors.As(err, &verr):
		response.ValidationFailed(c, verr)
	case errors.Is(err, book.ErrBookNotFound):
		response.NotFound(c, "Book not found")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		response.NotFound(c, "Employee not found")
	case errors.Is(err, circulation.ErrReservationNotFound):
		response.NotFound(c, "Reservation not found")
	case errors.Is(err, circulation.ErrLoanNotFound):
		response.NotFound(c, "Loan not found")
	case errors.Is(err, circulation.ErrBookNotAvailable):
		response.Conflict(c, "Book is not available")
	case errors.Is(err, circulation.ErrBookNotBorrowed):
		response.Conflict(c, "Book is not borrowed")
	case errors.Is(err, circulation.ErrBookAvailable):
		response.Conflict(c, "Book is available, checkout instead")
	case errors.Is(err, circulation.ErrEmployeeInactive):
		response.Conflict(c, "Employee cannot borrow")
	case errors.Is(err, circulation.ErrDuplicateReservation):
		response.Conflict(c, "Employee already holds an active reservation for this book")
	case errors.Is(err, circulation.ErrReservationClosed):
		response.Conflict(c, "Reservation is already closed")
	default:
		response.InternalServerError(c, "Failed to process circulation request")
	}
}
