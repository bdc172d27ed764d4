package employee

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for employees.
type Repository interface {
	Create(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	Update(ctx context.Context, e *Employee) error
	List(ctx context.Context, filter Filter) ([]Employee, error)
	// Departments returns the distinct non-empty department names, for the
	// list view filter dropdown.
	Departments(ctx context.Context) ([]string, error)
}
