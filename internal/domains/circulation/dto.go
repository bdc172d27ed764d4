package circulation

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const dueDateLayout = "2006-01-02"

// CheckoutRequest lends a book to an employee until DueDate (YYYY-MM-DD).
type CheckoutRequest struct {
	EmployeeID string `json:"employee_id"`
	DueDate    string `json:"due_date"`
}

func (r CheckoutRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EmployeeID,
			validation.Required.Error("employee_id is required"),
			is.UUIDv4.Error("employee_id must be a UUID"),
		),
		validation.Field(&r.DueDate,
			validation.Required.Error("due_date is required"),
			validation.Date(dueDateLayout).Error("due_date must be YYYY-MM-DD"),
		),
	)
}

// ParseDueDate returns the parsed due date. Validate must have been called
// first.
func ParseDueDate(value string) (time.Time, error) {
	return time.Parse(dueDateLayout, value)
}

// ReserveRequest places a reservation on a book that is currently out.
type ReserveRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r ReserveRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EmployeeID,
			validation.Required.Error("employee_id is required"),
			is.UUIDv4.Error("employee_id must be a UUID"),
		),
	)
}
