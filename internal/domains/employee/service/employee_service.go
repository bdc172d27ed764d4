package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/employee"
	"library-backend/internal/shared/utils"
	"library-backend/pkg/logger"
)

type employeeService struct {
	repo employee.Repository
}

func NewEmployeeService(repo employee.Repository) employee.Service {
	return &employeeService{repo: repo}
}

func (s *employeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (*employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hireDate, err := employee.ParseHireDate(req.HireDate)
	if err != nil {
		return nil, fmt.Errorf("create employee: invalid hire date: %w", err)
	}

	now := time.Now().UTC()
	e := &employee.Employee{
		ID:         uuid.New(),
		EmployeeID: strings.TrimSpace(req.EmployeeID),
		Name:       strings.TrimSpace(req.Name),
		NameKana:   utils.OptionalString(req.NameKana),
		Email:      utils.OptionalString(req.Email),
		Department: utils.OptionalString(req.Department),
		Position:   utils.OptionalString(req.Position),
		Phone:      utils.OptionalString(req.Phone),
		HireDate:   hireDate,
		Status:     employee.StatusActive,
		Notes:      utils.OptionalString(req.Notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		logger.Error("create employee failed", err)
		return nil, err
	}

	logger.Info("employee created", map[string]interface{}{
		"id":          e.ID.String(),
		"employee_id": e.EmployeeID,
	})
	return e, nil
}

func (s *employeeService) GetByID(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *employeeService) Update(ctx context.Context, id uuid.UUID, req employee.UpdateEmployeeRequest) (*employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hireDate, err := employee.ParseHireDate(req.HireDate)
	if err != nil {
		return nil, fmt.Errorf("update employee: invalid hire date: %w", err)
	}

	e.EmployeeID = strings.TrimSpace(req.EmployeeID)
	e.Name = strings.TrimSpace(req.Name)
	e.NameKana = utils.OptionalString(req.NameKana)
	e.Email = utils.OptionalString(req.Email)
	e.Department = utils.OptionalString(req.Department)
	e.Position = utils.OptionalString(req.Position)
	e.Phone = utils.OptionalString(req.Phone)
	e.HireDate = hireDate
	e.Status = employee.Status(req.Status)
	e.Notes = utils.OptionalString(req.Notes)
	e.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, e); err != nil {
		logger.Error("update employee failed", err)
		return nil, err
	}

	return e, nil
}

func (s *employeeService) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, employee.ErrInvalidStatus
	}
	return s.repo.List(ctx, filter)
}

func (s *employeeService) Departments(ctx context.Context) ([]string, error) {
	return s.repo.Departments(ctx)
}
