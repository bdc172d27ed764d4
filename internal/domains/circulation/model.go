package circulation

import (
	"time"

	"github.com/google/uuid"
)

// Loan is one checkout episode. ReturnedAt is set exactly once, on return;
// the record is immutable afterwards except for the IsOverdue cache, which
// the overdue scan refreshes.
type Loan struct {
	ID         uuid.UUID  `json:"id"`
	BookID     uuid.UUID  `json:"book_id"`
	EmployeeID uuid.UUID  `json:"employee_id"`
	CheckoutAt time.Time  `json:"checkout_at"`
	DueDate    time.Time  `json:"due_date"`
	ReturnedAt *time.Time `json:"returned_at"`
	IsOverdue  bool       `json:"is_overdue"`
}

// Open reports whether the loan has not been returned yet.
func (l *Loan) Open() bool {
	return l.ReturnedAt == nil
}

// ReservationStatus is the lifecycle state of a reservation. Completed and
// cancelled are terminal.
type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation is a claim on a book that is currently out. Reservations are
// served first-come-first-served by ReservedAt; promotion into a loan is a
// manual checkout by the reserving employee, never automatic.
type Reservation struct {
	ID         uuid.UUID         `json:"id"`
	BookID     uuid.UUID         `json:"book_id"`
	EmployeeID uuid.UUID         `json:"employee_id"`
	Status     ReservationStatus `json:"status"`
	ReservedAt time.Time         `json:"reserved_at"`
	NotifiedAt *time.Time        `json:"notified_at"`
	ExpiresAt  *time.Time        `json:"expires_at"`
}

// Terminal reports whether the reservation can no longer change state.
func (r *Reservation) Terminal() bool {
	return r.Status == ReservationCompleted || r.Status == ReservationCancelled
}
