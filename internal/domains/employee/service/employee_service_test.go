package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/employee"
)

type fakeEmployeeRepository struct {
	employees map[uuid.UUID]*employee.Employee
}

func newFakeEmployeeRepository() *fakeEmployeeRepository {
	return &fakeEmployeeRepository{employees: make(map[uuid.UUID]*employee.Employee)}
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	for _, existing := range f.employees {
		if existing.EmployeeID == e.EmployeeID {
			return employee.ErrDuplicateEmployeeID
		}
		if existing.Email != nil && e.Email != nil && *existing.Email == *e.Email {
			return employee.ErrDuplicateEmail
		}
	}
	copied := *e
	f.employees[e.ID] = &copied
	return nil
}

func (f *fakeEmployeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	if _, ok := f.employees[e.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	copied := *e
	f.employees[e.ID] = &copied
	return nil
}

func (f *fakeEmployeeRepository) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, error) {
	employees := make([]employee.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		employees = append(employees, *e)
	}
	return employees, nil
}

func (f *fakeEmployeeRepository) Departments(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	departments := []string{}
	for _, e := range f.employees {
		if e.Department != nil && !seen[*e.Department] {
			seen[*e.Department] = true
			departments = append(departments, *e.Department)
		}
	}
	return departments, nil
}

var _ employee.Repository = (*fakeEmployeeRepository)(nil)

func TestCreateEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to active", func(t *testing.T) {
		repo := newFakeEmployeeRepository()
		svc := NewEmployeeService(repo)

		e, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeID: "EMP001",
			Name:       "Taro Yamada",
			Department: "Engineering",
			HireDate:   "2020-04-01",
		})
		require.NoError(t, err)

		assert.Equal(t, employee.StatusActive, e.Status)
		require.NotNil(t, e.HireDate)
		assert.True(t, e.CanBorrow())
	})

	t.Run("empty optionals become nil", func(t *testing.T) {
		svc := NewEmployeeService(newFakeEmployeeRepository())

		e, err := svc.Create(ctx, employee.CreateEmployeeRequest{EmployeeID: "EMP002", Name: "Hanako"})
		require.NoError(t, err)
		assert.Nil(t, e.Email)
		assert.Nil(t, e.Department)
		assert.Nil(t, e.HireDate)
	})

	t.Run("duplicate staff code", func(t *testing.T) {
		svc := NewEmployeeService(newFakeEmployeeRepository())

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{EmployeeID: "EMP001", Name: "A"})
		require.NoError(t, err)

		_, err = svc.Create(ctx, employee.CreateEmployeeRequest{EmployeeID: "EMP001", Name: "B"})
		assert.ErrorIs(t, err, employee.ErrDuplicateEmployeeID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := NewEmployeeService(newFakeEmployeeRepository())

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{EmployeeID: "EMP001", Name: "A", Email: "a@example.com"})
		require.NoError(t, err)

		_, err = svc.Create(ctx, employee.CreateEmployeeRequest{EmployeeID: "EMP002", Name: "B", Email: "a@example.com"})
		assert.ErrorIs(t, err, employee.ErrDuplicateEmail)
	})
}

func TestUpdateEmployee(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepository()
	svc := NewEmployeeService(repo)

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{EmployeeID: "EMP001", Name: "Taro"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, employee.UpdateEmployeeRequest{
		EmployeeID: "EMP001",
		Name:       "Taro Yamada",
		Status:     "retired",
	})
	require.NoError(t, err)

	assert.Equal(t, employee.StatusRetired, updated.Status)
	assert.False(t, updated.CanBorrow())
	assert.Equal(t, "Taro Yamada", repo.employees[created.ID].Name)

	_, err = svc.Update(ctx, uuid.New(), employee.UpdateEmployeeRequest{EmployeeID: "X", Name: "X", Status: "active"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListEmployees(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newFakeEmployeeRepository())

	_, err := svc.List(ctx, employee.Filter{Status: "ghost"})
	assert.ErrorIs(t, err, employee.ErrInvalidStatus)
}

func TestDepartments(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepository()
	svc := NewEmployeeService(repo)

	for _, dept := range []string{"Engineering", "Sales", "Engineering"} {
		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeID: uuid.New().String()[:8],
			Name:       "N",
			Department: dept,
		})
		require.NoError(t, err)
	}

	departments, err := svc.Departments(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Engineering", "Sales"}, departments)
}
