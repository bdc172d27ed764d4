package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-backend/internal/domains/genre"
	"library-backend/internal/shared/response"
)

type GenreHandler struct {
	svc genre.Service
}

func NewGenreHandler(svc genre.Service) *GenreHandler {
	return &GenreHandler{svc: svc}
}

// Create adds a genre, optionally under a parent.
// POST /genres
func (h *GenreHandler) Create(c *gin.Context) {
	var req genre.CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	g, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, g)
}

// GetByID returns one genre.
// GET /genres/:id
func (h *GenreHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid genre ID")
		return
	}

	g, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, g)
}

// Update renames, re-describes or reparents a genre.
// PUT /genres/:id
func (h *GenreHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid genre ID")
		return
	}

	var req genre.UpdateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	g, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, g)
}

// Delete removes a childless, unreferenced genre.
// DELETE /genres/:id
func (h *GenreHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid genre ID")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// List returns the flattened pre-order genre sequence with display paths,
// for dropdown population.
// GET /genres
func (h *GenreHandler) List(c *gin.Context) {
	entries, err := h.svc.Flattened(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, entries, &response.Meta{Total: len(entries)})
}

// Tree returns the nested genre forest.
// GET /genres/tree
func (h *GenreHandler) Tree(c *gin.Context) {
	tree, err := h.svc.Tree(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, tree)
}

func (h *GenreHandler) writeError(c *gin.Context, err error) {
	var verr validation.Errors
	switch {
	case errors.As(err, &verr):
		response.ValidationFailed(c, verr)
	case errors.Is(err, genre.ErrGenreNotFound):
		response.NotFound(c, "Genre not found")
	case errors.Is(err, genre.ErrParentNotFound):
		response.NotFound(c, "Parent genre not found")
	case errors.Is(err, genre.ErrDuplicateName):
		response.Conflict(c, "Genre name already exists")
	case errors.Is(err, genre.ErrMaxDepthExceeded):
		response.Conflict(c, "Genre tree is limited to three levels")
	case errors.Is(err, genre.ErrCycleDetected):
		response.Conflict(c, "Cannot move a genre under its own descendant")
	case errors.Is(err, genre.ErrHasChildren):
		response.Conflict(c, "Genre still has child genres")
	case errors.Is(err, genre.ErrGenreInUse):
		response.Conflict(c, "Genre is referenced by books")
	default:
		response.InternalServerError(c, "Failed to process genre request")
	}
}
