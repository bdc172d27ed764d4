package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for the book catalog.
type Repository interface {
	Create(ctx context.Context, b *Book) error
	// GetByID returns the book with its genre name resolved.
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)
	// Update persists the catalog fields; circulation fields are written by
	// the circulation repository.
	Update(ctx context.Context, b *Book) error
	List(ctx context.Context, filter Filter) ([]Book, error)
	Stats(ctx context.Context) (*Stats, error)
}
