package employee

import (
	"time"

	"github.com/google/uuid"
)

// Status is the employment status of an employee. Only active employees may
// check out or reserve books.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusRetired  Status = "retired"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusRetired:
		return true
	}
	return false
}

// Employee is a borrower registered in the system. EmployeeID is the
// external-facing staff code, distinct from the surrogate ID.
type Employee struct {
	ID         uuid.UUID  `json:"id"`
	EmployeeID string     `json:"employee_id"`
	Name       string     `json:"name"`
	NameKana   *string    `json:"name_kana"`
	Email      *string    `json:"email"`
	Department *string    `json:"department"`
	Position   *string    `json:"position"`
	Phone      *string    `json:"phone"`
	HireDate   *time.Time `json:"hire_date"`
	Status     Status     `json:"status"`
	Notes      *string    `json:"notes"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CanBorrow reports whether the employee is eligible for checkouts and
// reservations.
func (e *Employee) CanBorrow() bool {
	return e.Status == StatusActive
}

// Filter holds the AND-combined list predicates for employees. Zero values
// mean "no constraint". Query matches name, employee_id, name_kana or email
// by case-sensitive containment.
type Filter struct {
	Query      string
	Department string
	Status     Status
}
