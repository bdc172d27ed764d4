package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/circulation"
	"library-backend/internal/domains/employee"
	"library-backend/pkg/database"
)

const loanColumns = `id, book_id, employee_id, checkout_at, due_date, returned_at, is_overdue`

const reservationColumns = `id, book_id, employee_id, status, reserved_at, notified_at, expires_at`

// dbtx is satisfied by both *pgxpool.Pool and pgx.Tx, letting the store run
// the same queries inside and outside a transaction.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type store struct {
	db dbtx
}

type postgresRepository struct {
	pool *pgxpool.Pool
	store
}

func NewPostgresRepository(pool *pgxpool.Pool) circulation.Repository {
	return &postgresRepository{pool: pool, store: store{db: pool}}
}

// WithinTx hands fn a store bound to one transaction. Row locks taken via
// GetBookForUpdate hold until commit or rollback.
func (r *postgresRepository) WithinTx(ctx context.Context, fn func(circulation.Store) error) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(&store{db: tx})
	})
}

// GetBookForUpdate locks the book row for the rest of the transaction; a
// concurrent circulation operation on the same book blocks here until this
// one finishes.
func (s *store) GetBookForUpdate(ctx context.Context, bookID uuid.UUID) (*book.Book, error) {
	query := `
		SELECT id, title, author, description, genre_id, isbn, publisher,
			publication_year, pages, status, borrower_id, due_date,
			created_at, updated_at
		FROM books WHERE id = $1
		FOR UPDATE
	`

	b := &book.Book{}
	err := s.db.QueryRow(ctx, query, bookID).Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.Description,
		&b.GenreID,
		&b.ISBN,
		&b.Publisher,
		&b.PublicationYear,
		&b.Pages,
		&b.Status,
		&b.BorrowerID,
		&b.DueDate,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to lock book: %w", err)
	}

	return b, nil
}

func (s *store) UpdateBookCirculation(ctx context.Context, b *book.Book) error {
	query := `
		UPDATE books SET status = $2, borrower_id = $3, due_date = $4, updated_at = $5
		WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, query, b.ID, b.Status, b.BorrowerID, b.DueDate, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update book circulation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

func (s *store) GetEmployee(ctx context.Context, employeeID uuid.UUID) (*employee.Employee, error) {
	query := `
		SELECT id, employee_id, name, name_kana, email, department, position,
			phone, hire_date, status, notes, created_at, updated_at
		FROM employees WHERE id = $1
	`

	e := &employee.Employee{}
	err := s.db.QueryRow(ctx, query, employeeID).Scan(
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
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (s *store) InsertLoan(ctx context.Context, l *circulation.Loan) error {
	query := `
		INSERT INTO loans (id, book_id, employee_id, checkout_at, due_date, returned_at, is_overdue)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.Exec(ctx, query,
		l.ID,
		l.BookID,
		l.EmployeeID,
		l.CheckoutAt,
		l.DueDate,
		l.ReturnedAt,
		l.IsOverdue,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// The partial unique index on open loans fired: another open
			// loan exists for this book.
			return circulation.ErrBookNotAvailable
		}
		return fmt.Errorf("failed to insert loan: %w", err)
	}

	return nil
}

func (s *store) OpenLoanForBook(ctx context.Context, bookID uuid.UUID) (*circulation.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE book_id = $1 AND returned_at IS NULL`

	l, err := scanLoan(s.db.QueryRow(ctx, query, bookID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, circulation.ErrLoanNotFound
		}
		return nil, fmt.Errorf("failed to get open loan: %w", err)
	}

	return l, nil
}

func (s *store) UpdateLoan(ctx context.Context, l *circulation.Loan) error {
	query := `
		UPDATE loans SET returned_at = $2, is_overdue = $3
		WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, query, l.ID, l.ReturnedAt, l.IsOverdue)
	if err != nil {
		return fmt.Errorf("failed to update loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return circulation.ErrLoanNotFound
	}

	return nil
}

func (s *store) InsertReservation(ctx context.Context, res *circulation.Reservation) error {
	query := `
		INSERT INTO reservations (id, book_id, employee_id, status, reserved_at, notified_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.Exec(ctx, query,
		res.ID,
		res.BookID,
		res.EmployeeID,
		res.Status,
		res.ReservedAt,
		res.NotifiedAt,
		res.ExpiresAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return circulation.ErrDuplicateReservation
		}
		return fmt.Errorf("failed to insert reservation: %w", err)
	}

	return nil
}

func (s *store) GetReservation(ctx context.Context, id uuid.UUID) (*circulation.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	res, err := scanReservation(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, circulation.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	return res, nil
}

func (s *store) UpdateReservation(ctx context.Context, res *circulation.Reservation) error {
	query := `
		UPDATE reservations SET status = $2, notified_at = $3, expires_at = $4
		WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, query, res.ID, res.Status, res.NotifiedAt, res.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to update reservation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return circulation.ErrReservationNotFound
	}

	return nil
}

func (s *store) ActiveReservation(ctx context.Context, bookID, employeeID uuid.UUID) (*circulation.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + ` FROM reservations
		WHERE book_id = $1 AND employee_id = $2 AND status = 'active'
	`

	res, err := scanReservation(s.db.QueryRow(ctx, query, bookID, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, circulation.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to get active reservation: %w", err)
	}

	return res, nil
}

func (s *store) CountActiveReservations(ctx context.Context, bookID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM reservations WHERE book_id = $1 AND status = 'active'`,
		bookID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active reservations: %w", err)
	}
	return count, nil
}

// MarkOverdueLoans is a single idempotent UPDATE: only open, not yet flagged
// loans past due are touched.
func (r *postgresRepository) MarkOverdueLoans(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE loans SET is_overdue = TRUE
		WHERE returned_at IS NULL AND due_date < $1 AND is_overdue = FALSE
	`

	tag, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue loans: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *postgresRepository) LoansForBook(ctx context.Context, bookID uuid.UUID) ([]circulation.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE book_id = $1 ORDER BY checkout_at DESC`
	return r.queryLoans(ctx, query, bookID)
}

func (r *postgresRepository) LoansForEmployee(ctx context.Context, employeeID uuid.UUID) ([]circulation.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE employee_id = $1 ORDER BY checkout_at DESC`
	return r.queryLoans(ctx, query, employeeID)
}

func (r *postgresRepository) OverdueLoans(ctx context.Context) ([]circulation.Loan, error) {
	query := `
		SELECT ` + loanColumns + ` FROM loans
		WHERE returned_at IS NULL AND is_overdue = TRUE
		ORDER BY due_date ASC
	`
	return r.queryLoans(ctx, query)
}

func (r *postgresRepository) ActiveReservationsForBook(ctx context.Context, bookID uuid.UUID) ([]circulation.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + ` FROM reservations
		WHERE book_id = $1 AND status = 'active'
		ORDER BY reserved_at ASC
	`
	return r.queryReservations(ctx, query, bookID)
}

func (r *postgresRepository) ActiveReservationsForEmployee(ctx context.Context, employeeID uuid.UUID) ([]circulation.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + ` FROM reservations
		WHERE employee_id = $1 AND status = 'active'
		ORDER BY reserved_at ASC
	`
	return r.queryReservations(ctx, query, employeeID)
}

func (r *postgresRepository) queryLoans(ctx context.Context, query string, args ...any) ([]circulation.Loan, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	loans := make([]circulation.Loan, 0)
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, *l)
	}

	return loans, rows.Err()
}

func (r *postgresRepository) queryReservations(ctx context.Context, query string, args ...any) ([]circulation.Reservation, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	reservations := make([]circulation.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, *res)
	}

	return reservations, rows.Err()
}

func scanLoan(row pgx.Row) (*circulation.Loan, error) {
	l := &circulation.Loan{}
	err := row.Scan(
		&l.ID,
		&l.BookID,
		&l.EmployeeID,
		&l.CheckoutAt,
		&l.DueDate,
		&l.ReturnedAt,
		&l.IsOverdue,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func scanReservation(row pgx.Row) (*circulation.Reservation, error) {
	res := &circulation.Reservation{}
	err := row.Scan(
		&res.ID,
		&res.BookID,
		&res.EmployeeID,
		&res.Status,
		&res.ReservedAt,
		&res.NotifiedAt,
		&res.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	return res, nil
}
