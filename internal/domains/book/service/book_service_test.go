package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/genre"
)

type fakeBookRepository struct {
	books map[uuid.UUID]*book.Book
}

func newFakeBookRepository() *fakeBookRepository {
	return &fakeBookRepository{books: make(map[uuid.UUID]*book.Book)}
}

func (f *fakeBookRepository) Create(ctx context.Context, b *book.Book) error {
	copied := *b
	f.books[b.ID] = &copied
	return nil
}

func (f *fakeBookRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookRepository) Update(ctx context.Context, b *book.Book) error {
	if _, ok := f.books[b.ID]; !ok {
		return book.ErrBookNotFound
	}
	copied := *b
	f.books[b.ID] = &copied
	return nil
}

func (f *fakeBookRepository) List(ctx context.Context, filter book.Filter) ([]book.Book, error) {
	books := make([]book.Book, 0, len(f.books))
	for _, b := range f.books {
		books = append(books, *b)
	}
	return books, nil
}

func (f *fakeBookRepository) Stats(ctx context.Context) (*book.Stats, error) {
	stats := &book.Stats{}
	for _, b := range f.books {
		stats.TotalBooks++
		switch b.Status {
		case book.StatusAvailable:
			stats.AvailableBooks++
		case book.StatusBorrowed:
			stats.BorrowedBooks++
		case book.StatusReserved:
			stats.ReservedBooks++
		}
	}
	return stats, nil
}

var _ book.Repository = (*fakeBookRepository)(nil)

// genreLookup satisfies just enough of genre.Repository for resolveGenre.
type genreLookup struct {
	genre.Repository
	known map[uuid.UUID]bool
}

func (g *genreLookup) GetByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	if !g.known[id] {
		return nil, genre.ErrGenreNotFound
	}
	return &genre.Genre{ID: id, Name: "Known", Level: 1}, nil
}

func setup() (*fakeBookRepository, *genreLookup, book.Service) {
	repo := newFakeBookRepository()
	genres := &genreLookup{known: make(map[uuid.UUID]bool)}
	return repo, genres, NewBookService(repo, genres)
}

func TestCreateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("starts available with optional fields as nil", func(t *testing.T) {
		repo, _, svc := setup()

		b, err := svc.Create(ctx, book.CreateBookRequest{Title: "  The Go Programming Language ", Author: "Donovan"})
		require.NoError(t, err)

		assert.Equal(t, "The Go Programming Language", b.Title)
		assert.Equal(t, book.StatusAvailable, b.Status)
		assert.Nil(t, b.BorrowerID)
		assert.Nil(t, b.DueDate)
		assert.Nil(t, b.GenreID)
		assert.Nil(t, b.ISBN)
		assert.Contains(t, repo.books, b.ID)
	})

	t.Run("resolves the genre", func(t *testing.T) {
		_, genres, svc := setup()
		genreID := uuid.New()
		genres.known[genreID] = true

		b, err := svc.Create(ctx, book.CreateBookRequest{Title: "T", Author: "A", GenreID: genreID.String()})
		require.NoError(t, err)
		require.NotNil(t, b.GenreID)
		assert.Equal(t, genreID, *b.GenreID)
	})

	t.Run("unknown genre is refused", func(t *testing.T) {
		_, _, svc := setup()

		_, err := svc.Create(ctx, book.CreateBookRequest{Title: "T", Author: "A", GenreID: uuid.New().String()})
		assert.ErrorIs(t, err, genre.ErrGenreNotFound)
	})

	t.Run("validation failure", func(t *testing.T) {
		_, _, svc := setup()

		_, err := svc.Create(ctx, book.CreateBookRequest{Author: "A"})
		assert.Error(t, err)
	})
}

func TestUpdateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("catalog fields only", func(t *testing.T) {
		repo, _, svc := setup()

		created, err := svc.Create(ctx, book.CreateBookRequest{Title: "Old", Author: "A"})
		require.NoError(t, err)

		// Simulate circulation state that the update must not touch.
		borrower := uuid.New()
		stored := repo.books[created.ID]
		stored.Status = book.StatusBorrowed
		stored.BorrowerID = &borrower

		updated, err := svc.Update(ctx, created.ID, book.UpdateBookRequest{Title: "New", Author: "A", Pages: 300})
		require.NoError(t, err)

		assert.Equal(t, "New", updated.Title)
		require.NotNil(t, updated.Pages)
		assert.Equal(t, 300, *updated.Pages)
		assert.Equal(t, book.StatusBorrowed, repo.books[created.ID].Status)
		assert.Equal(t, borrower, *repo.books[created.ID].BorrowerID)
	})

	t.Run("unknown book", func(t *testing.T) {
		_, _, svc := setup()

		_, err := svc.Update(ctx, uuid.New(), book.UpdateBookRequest{Title: "T", Author: "A"})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestListBooks(t *testing.T) {
	ctx := context.Background()
	_, _, svc := setup()

	_, err := svc.List(ctx, book.Filter{Status: "on-fire"})
	assert.ErrorIs(t, err, book.ErrInvalidStatus)

	books, err := svc.List(ctx, book.Filter{Status: book.StatusAvailable})
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	repo, _, svc := setup()

	for _, status := range []book.Status{book.StatusAvailable, book.StatusAvailable, book.StatusBorrowed, book.StatusReserved} {
		id := uuid.New()
		repo.books[id] = &book.Book{ID: id, Status: status}
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalBooks)
	assert.Equal(t, 2, stats.AvailableBooks)
	assert.Equal(t, 1, stats.BorrowedBooks)
	assert.Equal(t, 1, stats.ReservedBooks)
}
