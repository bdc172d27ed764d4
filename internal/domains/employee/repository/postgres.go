package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/employee"
	"library-backend/internal/shared/utils"
)

const employeeColumns = `
	id, employee_id, name, name_kana, email, department, position,
	phone, hire_date, status, notes, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) employee.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, e *employee.Employee) error {
	query := `
		INSERT INTO employees (
			id, employee_id, name, name_kana, email, department, position,
			phone, hire_date, status, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.pool.Exec(ctx, query,
		e.ID,
		e.EmployeeID,
		e.Name,
		e.NameKana,
		e.Email,
		e.Department,
		e.Position,
		e.Phone,
		e.HireDate,
		e.Status,
		e.Notes,
		e.CreatedAt,
		e.UpdatedAt,
	)
	if err != nil {
		if dup := mapUniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
	query := `SELECT` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *postgresRepository) Update(ctx context.Context, e *employee.Employee) error {
	query := `
		UPDATE employees SET
			employee_id = $2, name = $3, name_kana = $4, email = $5,
			department = $6, position = $7, phone = $8, hire_date = $9,
			status = $10, notes = $11, updated_at = $12
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		e.ID,
		e.EmployeeID,
		e.Name,
		e.NameKana,
		e.Email,
		e.Department,
		e.Position,
		e.Phone,
		e.HireDate,
		e.Status,
		e.Notes,
		e.UpdatedAt,
	)
	if err != nil {
		if dup := mapUniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *postgresRepository) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, error) {
	query, args := buildListQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, *e)
	}

	return employees, rows.Err()
}

func (r *postgresRepository) Departments(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT department FROM employees
		WHERE department IS NOT NULL
		ORDER BY department
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	departments := make([]string, 0)
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	return departments, rows.Err()
}

// buildListQuery composes the filter predicates into a SELECT. Containment
// matches are case-sensitive LIKE, mirroring the list view semantics.
func buildListQuery(filter employee.Filter) (string, []any) {
	conditions := []string{}
	args := []any{}
	argIndex := 1

	if filter.Query != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(name LIKE '%%' || $%d || '%%' OR employee_id LIKE '%%' || $%d || '%%'"+
				" OR name_kana LIKE '%%' || $%d || '%%' OR email LIKE '%%' || $%d || '%%')",
			argIndex, argIndex, argIndex, argIndex))
		args = append(args, filter.Query)
		argIndex++
	}

	if filter.Department != "" {
		conditions = append(conditions, fmt.Sprintf("department LIKE '%%' || $%d || '%%'", argIndex))
		args = append(args, filter.Department)
		argIndex++
	}

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, filter.Status)
	}

	query := `SELECT` + employeeColumns + ` FROM employees`
	if len(conditions) > 0 {
		query += " WHERE " + utils.JoinWithAnd(conditions)
	}
	query += " ORDER BY employee_id ASC"

	return query, args
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "employees_employee_id_key":
			return employee.ErrDuplicateEmployeeID
		case "employees_email_key":
			return employee.ErrDuplicateEmail
		}
		return employee.ErrDuplicateEmployeeID
	}
	return nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	e := &employee.Employee{}
	err := row.Scan(
		&e.ID,
		&e.EmployeeID,
		&e.Name,
		&e.NameKana,
		&e.Email,
		&e.Department,
		&e.Position,
		&e.Phone,
		&e.HireDate,
		&e.Status,
		&e.Notes,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}
