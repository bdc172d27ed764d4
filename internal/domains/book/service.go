package book

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for the book catalog.
type Service interface {
	Create(ctx context.Context, req CreateBookRequest) (*Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateBookRequest) (*Book, error)
	List(ctx context.Context, filter Filter) ([]Book, error)
	Stats(ctx context.Context) (*Stats, error)
}
