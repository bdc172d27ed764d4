package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrDuplicateEmployeeID = errors.New("employee id already exists")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrInvalidStatus       = errors.New("invalid employee status")
)
