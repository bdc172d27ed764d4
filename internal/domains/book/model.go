package book

import (
	"time"

	"github.com/google/uuid"
)

// Status is the circulation status of a book. A borrowed book that has
// accrued active reservations is shown as reserved; it still carries its
// borrower and due date until returned.
type Status string

const (
	StatusAvailable Status = "available"
	StatusBorrowed  Status = "borrowed"
	StatusReserved  Status = "reserved"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusBorrowed, StatusReserved:
		return true
	}
	return false
}

// Book is a catalog entry. BorrowerID and DueDate are owned by the
// circulation state machine: set exactly while the book is out, cleared on
// return. Books are never hard-deleted.
type Book struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Author          string     `json:"author"`
	Description     *string    `json:"description"`
	GenreID         *uuid.UUID `json:"genre_id"`
	GenreName       *string    `json:"genre_name,omitempty"`
	ISBN            *string    `json:"isbn"`
	Publisher       *string    `json:"publisher"`
	PublicationYear *int       `json:"publication_year"`
	Pages           *int       `json:"pages"`
	Status          Status     `json:"status"`
	BorrowerID      *uuid.UUID `json:"borrower_id"`
	DueDate         *time.Time `json:"due_date"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// IsAvailable reports whether the book can be checked out.
func (b *Book) IsAvailable() bool {
	return b.Status == StatusAvailable
}

// IsOut reports whether an open loan exists for the book.
func (b *Book) IsOut() bool {
	return b.Status == StatusBorrowed || b.Status == StatusReserved
}

// MarkBorrowed transitions the book into the borrowed state.
func (b *Book) MarkBorrowed(employeeID uuid.UUID, dueDate, now time.Time) {
	b.Status = StatusBorrowed
	b.BorrowerID = &employeeID
	b.DueDate = &dueDate
	b.UpdatedAt = now
}

// MarkReturned clears the circulation fields and makes the book available
// again.
func (b *Book) MarkReturned(now time.Time) {
	b.Status = StatusAvailable
	b.BorrowerID = nil
	b.DueDate = nil
	b.UpdatedAt = now
}

// MarkReserved flags a borrowed book as having active reservations. The
// borrower and due date stay untouched.
func (b *Book) MarkReserved(now time.Time) {
	b.Status = StatusReserved
	b.UpdatedAt = now
}

// ClearReservedFlag reverts a reserved book to plain borrowed, once its last
// active reservation is gone.
func (b *Book) ClearReservedFlag(now time.Time) {
	b.Status = StatusBorrowed
	b.UpdatedAt = now
}

// CirculationConsistent verifies the status/field invariant: available books
// carry no borrower or due date, books that are out carry both.
func (b *Book) CirculationConsistent() bool {
	if b.Status == StatusAvailable {
		return b.BorrowerID == nil && b.DueDate == nil
	}
	return b.BorrowerID != nil && b.DueDate != nil
}

// Filter holds the AND-combined list predicates for books. Query matches
// title, author or genre name by case-sensitive containment.
type Filter struct {
	Query   string
	Author  string
	GenreID *uuid.UUID
	Status  Status
}

// Stats is the dashboard summary.
type Stats struct {
	TotalBooks     int    `json:"total_books"`
	AvailableBooks int    `json:"available_books"`
	BorrowedBooks  int    `json:"borrowed_books"`
	ReservedBooks  int    `json:"reserved_books"`
	RecentBooks    []Book `json:"recent_books"`
}
