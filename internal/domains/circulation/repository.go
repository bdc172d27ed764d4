package circulation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/employee"
)

// Store is the set of reads and writes available inside a circulation
// transaction. The check-then-write sequences of the state machine
// (is the book available? then mark it borrowed) must run against a single
// Store instance obtained from WithinTx, so that concurrent requests on the
// same book serialize on the locked row.
type Store interface {
	// GetBookForUpdate loads the book row and locks it for the duration of
	// the transaction.
	GetBookForUpdate(ctx context.Context, bookID uuid.UUID) (*book.Book, error)
	// UpdateBookCirculation writes only status, borrower and due date.
	UpdateBookCirculation(ctx context.Context, b *book.Book) error

	GetEmployee(ctx context.Context, employeeID uuid.UUID) (*employee.Employee, error)

	InsertLoan(ctx context.Context, l *Loan) error
	// OpenLoanForBook returns the single loan with returned_at IS NULL, or
	// ErrLoanNotFound.
	OpenLoanForBook(ctx context.Context, bookID uuid.UUID) (*Loan, error)
	UpdateLoan(ctx context.Context, l *Loan) error

	InsertReservation(ctx context.Context, r *Reservation) error
	GetReservation(ctx context.Context, id uuid.UUID) (*Reservation, error)
	UpdateReservation(ctx context.Context, r *Reservation) error
	// ActiveReservation returns the active reservation held by employee on
	// book, or ErrReservationNotFound.
	ActiveReservation(ctx context.Context, bookID, employeeID uuid.UUID) (*Reservation, error)
	CountActiveReservations(ctx context.Context, bookID uuid.UUID) (int, error)
}

// Repository is the data access contract for loans and reservations.
type Repository interface {
	// WithinTx runs fn inside one transaction; every Store call in fn sees
	// and writes the same consistent snapshot.
	WithinTx(ctx context.Context, fn func(Store) error) error

	GetReservation(ctx context.Context, id uuid.UUID) (*Reservation, error)

	// MarkOverdueLoans flags every open loan past due as overdue and
	// returns the number of newly flagged loans. Repeated calls with the
	// same now converge to zero.
	MarkOverdueLoans(ctx context.Context, now time.Time) (int64, error)

	LoansForBook(ctx context.Context, bookID uuid.UUID) ([]Loan, error)
	LoansForEmployee(ctx context.Context, employeeID uuid.UUID) ([]Loan, error)
	OverdueLoans(ctx context.Context) ([]Loan, error)

	ActiveReservationsForBook(ctx context.Context, bookID uuid.UUID) ([]Reservation, error)
	ActiveReservationsForEmployee(ctx context.Context, employeeID uuid.UUID) ([]Reservation, error)
}
