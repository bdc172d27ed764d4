package circulation

import "errors"

var (
	// ErrBookNotAvailable rejects a checkout on a book that is already out.
	// Re-invoking checkout on a borrowed book is a no-op returning this
	// error, never a duplicate loan.
	ErrBookNotAvailable = errors.New("book is not available")
	// ErrBookNotBorrowed rejects a return on a book with no open loan.
	ErrBookNotBorrowed = errors.New("book is not borrowed")
	// ErrBookAvailable rejects a reservation on a book that could simply be
	// checked out.
	ErrBookAvailable = errors.New("book is available, reserve not needed")
	// ErrEmployeeInactive rejects circulation operations by employees that
	// are not active.
	ErrEmployeeInactive = errors.New("employee is not active")
	// ErrDuplicateReservation rejects a second active reservation by the
	// same employee on the same book.
	ErrDuplicateReservation = errors.New("employee already holds an active reservation for this book")
	// ErrReservationClosed rejects cancelling a reservation that is already
	// completed or cancelled.
	ErrReservationClosed   = errors.New("reservation is already closed")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrLoanNotFound        = errors.New("loan not found")
)
