package circulation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service is the circulation state machine. All mutating operations are
// atomic with respect to concurrent requests on the same book.
type Service interface {
	Checkout(ctx context.Context, bookID, employeeID uuid.UUID, dueDate time.Time) (*Loan, error)
	Return(ctx context.Context, bookID uuid.UUID) error
	Reserve(ctx context.Context, bookID, employeeID uuid.UUID) (*Reservation, error)
	CancelReservation(ctx context.Context, reservationID uuid.UUID) error
	// DetectOverdue refreshes the overdue cache on open loans and returns
	// how many loans were newly marked.
	DetectOverdue(ctx context.Context, now time.Time) (int64, error)

	LoansForBook(ctx context.Context, bookID uuid.UUID) ([]Loan, error)
	LoansForEmployee(ctx context.Context, employeeID uuid.UUID) ([]Loan, error)
	OverdueLoans(ctx context.Context) ([]Loan, error)
	ActiveReservationsForBook(ctx context.Context, bookID uuid.UUID) ([]Reservation, error)
	ActiveReservationsForEmployee(ctx context.Context, employeeID uuid.UUID) ([]Reservation, error)
}
