package employee

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for employees.
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (*Employee, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateEmployeeRequest) (*Employee, error)
	List(ctx context.Context, filter Filter) ([]Employee, error)
	Departments(ctx context.Context) ([]string, error)
}
