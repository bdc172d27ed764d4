package genre

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for the genre hierarchy.
type Service interface {
	Create(ctx context.Context, req CreateGenreRequest) (*Genre, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Genre, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateGenreRequest) (*Genre, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns all genres ordered by level then name, for dropdowns.
	List(ctx context.Context) ([]Genre, error)
	// Tree returns the nested genre forest.
	Tree(ctx context.Context) ([]*TreeNode, error)
	// Flattened returns the pre-order sequence with display paths.
	Flattened(ctx context.Context) ([]Entry, error)
}
