package employee

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const hireDateLayout = "2006-01-02"

// CreateEmployeeRequest registers a new borrower. Optional text fields left
// empty are stored as NULL.
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	NameKana   string `json:"name_kana,omitempty"`
	Email      string `json:"email,omitempty"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
	Phone      string `json:"phone,omitempty"`
	HireDate   string `json:"hire_date,omitempty"` // YYYY-MM-DD
	Notes      string `json:"notes,omitempty"`
}

func (r CreateEmployeeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EmployeeID,
			validation.Required.Error("employee id is required"),
			validation.Length(1, 32),
		),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Email,
			validation.When(r.Email != "", is.Email.Error("invalid email format")),
		),
		validation.Field(&r.HireDate,
			validation.When(r.HireDate != "",
				validation.Date(hireDateLayout).Error("hire date must be YYYY-MM-DD"),
			),
		),
	)
}

// UpdateEmployeeRequest replaces the mutable fields of an employee.
type UpdateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	NameKana   string `json:"name_kana,omitempty"`
	Email      string `json:"email,omitempty"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
	Phone      string `json:"phone,omitempty"`
	HireDate   string `json:"hire_date,omitempty"`
	Status     string `json:"status"`
	Notes      string `json:"notes,omitempty"`
}

func (r UpdateEmployeeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EmployeeID,
			validation.Required.Error("employee id is required"),
			validation.Length(1, 32),
		),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Email,
			validation.When(r.Email != "", is.Email.Error("invalid email format")),
		),
		validation.Field(&r.HireDate,
			validation.When(r.HireDate != "",
				validation.Date(hireDateLayout).Error("hire date must be YYYY-MM-DD"),
			),
		),
		validation.Field(&r.Status,
			validation.Required,
			validation.In(string(StatusActive), string(StatusInactive), string(StatusRetired)).
				Error("status must be active, inactive or retired"),
		),
	)
}

// ParseHireDate returns the parsed hire date or nil when not supplied.
// Validate must have been called first.
func ParseHireDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(hireDateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
