package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/genre"
	"library-backend/internal/shared/response"
)

type BookHandler struct {
	svc book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{svc: svc}
}

// Create adds a catalog entry.
// POST /books
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	b, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, b)
}

// GetByID returns one book.
// GET /books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	b, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// Update replaces a book's catalog fields.
// PUT /books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	var req book.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	b, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// List returns books matching the filter query parameters.
// GET /books?q=&author=&genre_id=&status=
func (h *BookHandler) List(c *gin.Context) {
	filter := book.Filter{
		Query:  c.Query("q"),
		Author: c.Query("author"),
		Status: book.Status(c.Query("status")),
	}

	if raw := c.Query("genre_id"); raw != "" {
		genreID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid genre ID")
			return
		}
		filter.GenreID = &genreID
	}

	books, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, books, &response.Meta{Total: len(books)})
}

// Stats returns the dashboard summary.
// GET /stats
func (h *BookHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

func (h *BookHandler) writeError(c *gin.Context, err error) {
	var verr validation.Errors
	switch {
	case errors.As(err, &verr):
		response.ValidationFailed(c, verr)
	case errors.Is(err, book.ErrBookNotFound):
		response.NotFound(c, "Book not found")
	case errors.Is(err, genre.ErrGenreNotFound):
		response.NotFound(c, "Genre not found")
	case errors.Is(err, book.ErrInvalidStatus):
		response.BadRequest(c, "Invalid book status")
	default:
		response.InternalServerError(c, "Failed to process book request")
	}
}
