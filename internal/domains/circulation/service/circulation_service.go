package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/circulation"
	"library-backend/pkg/logger"
)

type circulationService struct {
	repo circulation.Repository
}

func NewCirculationService(repo circulation.Repository) circulation.Service {
	return &circulationService{repo: repo}
}

// Checkout lends an available book to an active employee. The whole
// check-then-write sequence runs on the locked book row, so a concurrent
// checkout on the same book observes the new status and fails with
// ErrBookNotAvailable instead of creating a second open loan. If the
// employee held an active reservation on the book, the checkout completes
// it (manual promotion).
func (s *circulationService) Checkout(ctx context.Context, bookID, employeeID uuid.UUID, dueDate time.Time) (*circulation.Loan, error) {
	var loan *circulation.Loan

	err := s.repo.WithinTx(ctx, func(store circulation.Store) error {
		b, err := store.GetBookForUpdate(ctx, bookID)
		if err != nil {
			return err
		}
		if !b.IsAvailable() {
			return circulation.ErrBookNotAvailable
		}

		e, err := store.GetEmployee(ctx, employeeID)
		if err != nil {
			return err
		}
		if !e.CanBorrow() {
			return circulation.ErrEmployeeInactive
		}

		now := time.Now().UTC()

		res, err := store.ActiveReservation(ctx, bookID, employeeID)
		switch {
		case err == nil:
			res.Status = circulation.ReservationCompleted
			if err := store.UpdateReservation(ctx, res); err != nil {
				return err
			}
		case !errors.Is(err, circulation.ErrReservationNotFound):
			return err
		}

		b.MarkBorrowed(employeeID, dueDate, now)

		// Reservations by other employees survive the checkout and keep
		// the book flagged as reserved.
		pending, err := store.CountActiveReservations(ctx, bookID)
		if err != nil {
			return err
		}
		if pending > 0 {
			b.MarkReserved(now)
		}

		if err := store.UpdateBookCirculation(ctx, b); err != nil {
			return err
		}

		loan = &circulation.Loan{
			ID:         uuid.New(),
			BookID:     bookID,
			EmployeeID: employeeID,
			CheckoutAt: now,
			DueDate:    dueDate,
		}
		return store.InsertLoan(ctx, loan)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("book checked out", map[string]interface{}{
		"book_id":     bookID.String(),
		"employee_id": employeeID.String(),
		"due_date":    dueDate.Format("2006-01-02"),
	})
	return loan, nil
}

// Return closes the single open loan of a borrowed book and makes the book
// available again. A second return on the same book fails with
// ErrBookNotBorrowed.
func (s *circulationService) Return(ctx context.Context, bookID uuid.UUID) error {
	err := s.repo.WithinTx(ctx, func(store circulation.Store) error {
		b, err := store.GetBookForUpdate(ctx, bookID)
		if err != nil {
			return err
		}
		if !b.IsOut() {
			return circulation.ErrBookNotBorrowed
		}

		loan, err := store.OpenLoanForBook(ctx, bookID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		loan.ReturnedAt = &now
		if err := store.UpdateLoan(ctx, loan); err != nil {
			return err
		}

		b.MarkReturned(now)
		return store.UpdateBookCirculation(ctx, b)
	})
	if err != nil {
		return err
	}

	logger.Info("book returned", map[string]interface{}{"book_id": bookID.String()})
	return nil
}

// Reserve places an active reservation on a book that is currently out.
// Available books cannot be reserved, and an employee holds at most one
// active reservation per book.
func (s *circulationService) Reserve(ctx context.Context, bookID, employeeID uuid.UUID) (*circulation.Reservation, error) {
	var reservation *circulation.Reservation

	err := s.repo.WithinTx(ctx, func(store circulation.Store) error {
		b, err := store.GetBookForUpdate(ctx, bookID)
		if err != nil {
			return err
		}
		if b.IsAvailable() {
			return circulation.ErrBookAvailable
		}

		e, err := store.GetEmployee(ctx, employeeID)
		if err != nil {
			return err
		}
		if !e.CanBorrow() {
			return circulation.ErrEmployeeInactive
		}

		_, err = store.ActiveReservation(ctx, bookID, employeeID)
		switch {
		case err == nil:
			return circulation.ErrDuplicateReservation
		case !errors.Is(err, circulation.ErrReservationNotFound):
			return err
		}

		now := time.Now().UTC()
		reservation = &circulation.Reservation{
			ID:         uuid.New(),
			BookID:     bookID,
			EmployeeID: employeeID,
			Status:     circulation.ReservationActive,
			ReservedAt: now,
		}
		if err := store.InsertReservation(ctx, reservation); err != nil {
			return err
		}

		if b.Status != book.StatusReserved {
			b.MarkReserved(now)
			return store.UpdateBookCirculation(ctx, b)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("reservation placed", map[string]interface{}{
		"book_id":     bookID.String(),
		"employee_id": employeeID.String(),
	})
	return reservation, nil
}

// CancelReservation closes an active reservation. Cancelling a reservation
// that is already completed or cancelled fails with ErrReservationClosed.
// When the last active reservation on a book disappears, the reserved flag
// on the book is cleared.
func (s *circulationService) CancelReservation(ctx context.Context, reservationID uuid.UUID) error {
	return s.repo.WithinTx(ctx, func(store circulation.Store) error {
		res, err := store.GetReservation(ctx, reservationID)
		if err != nil {
			return err
		}
		if res.Terminal() {
			return circulation.ErrReservationClosed
		}

		// Lock the book before touching the reservation so cancel and
		// checkout serialize in the same order.
		b, err := store.GetBookForUpdate(ctx, res.BookID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		res.Status = circulation.ReservationCancelled
		if err := store.UpdateReservation(ctx, res); err != nil {
			return err
		}

		remaining, err := store.CountActiveReservations(ctx, res.BookID)
		if err != nil {
			return err
		}
		if remaining == 0 && b.Status == book.StatusReserved {
			b.ClearReservedFlag(now)
			return store.UpdateBookCirculation(ctx, b)
		}
		return nil
	})
}

// DetectOverdue refreshes the overdue cache. It is monotonic: a loan marked
// overdue stays overdue until it is returned, and re-running with the same
// now marks nothing new.
func (s *circulationService) DetectOverdue(ctx context.Context, now time.Time) (int64, error) {
	marked, err := s.repo.MarkOverdueLoans(ctx, now)
	if err != nil {
		return 0, err
	}

	if marked > 0 {
		logger.Info("overdue loans marked", map[string]interface{}{"count": marked})
	}
	return marked, nil
}

func (s *circulationService) LoansForBook(ctx context.Context, bookID uuid.UUID) ([]circulation.Loan, error) {
	return s.repo.LoansForBook(ctx, bookID)
}

func (s *circulationService) LoansForEmployee(ctx context.Context, employeeID uuid.UUID) ([]circulation.Loan, error) {
	return s.repo.LoansForEmployee(ctx, employeeID)
}

func (s *circulationService) OverdueLoans(ctx context.Context) ([]circulation.Loan, error) {
	return s.repo.OverdueLoans(ctx)
}

func (s *circulationService) ActiveReservationsForBook(ctx context.Context, bookID uuid.UUID) ([]circulation.Reservation, error) {
	return s.repo.ActiveReservationsForBook(ctx, bookID)
}

func (s *circulationService) ActiveReservationsForEmployee(ctx context.Context, employeeID uuid.UUID) ([]circulation.Reservation, error) {
	return s.repo.ActiveReservationsForEmployee(ctx, employeeID)
}
