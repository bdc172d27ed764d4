package genre

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for the genre hierarchy.
type Repository interface {
	Create(ctx context.Context, g *Genre) error
	GetByID(ctx context.Context, id uuid.UUID) (*Genre, error)
	// ExistsByName checks global name uniqueness, optionally excluding one
	// genre (for renames).
	ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
	// List returns the complete genre set; the tree is materialized in
	// memory from it.
	List(ctx context.Context) ([]Genre, error)
	// Update persists the genre row together with the cascaded level
	// updates of its subtree, atomically.
	Update(ctx context.Context, g *Genre, levelUpdates map[uuid.UUID]int) error
	HasChildren(ctx context.Context, id uuid.UUID) (bool, error)
	InUseByBooks(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
