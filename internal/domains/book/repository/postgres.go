package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared/utils"
)

const bookColumns = `
	b.id, b.title, b.author, b.description, b.genre_id, g.name,
	b.isbn, b.publisher, b.publication_year, b.pages,
	b.status, b.borrower_id, b.due_date, b.created_at, b.updated_at`

const bookFrom = ` FROM books b LEFT JOIN genres g ON b.genre_id = g.id`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) error {
	query := `
		INSERT INTO books (
			id, title, author, description, genre_id, isbn, publisher,
			publication_year, pages, status, borrower_id, due_date,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.pool.Exec(ctx, query,
		b.ID,
		b.Title,
		b.Author,
		b.Description,
		b.GenreID,
		b.ISBN,
		b.Publisher,
		b.PublicationYear,
		b.Pages,
		b.Status,
		b.BorrowerID,
		b.DueDate,
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	query := `SELECT` + bookColumns + bookFrom + ` WHERE b.id = $1`

	b, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return b, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) error {
	query := `
		UPDATE books SET
			title = $2, author = $3, description = $4, genre_id = $5,
			isbn = $6, publisher = $7, publication_year = $8, pages = $9,
			updated_at = $10
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		b.ID,
		b.Title,
		b.Author,
		b.Description,
		b.GenreID,
		b.ISBN,
		b.Publisher,
		b.PublicationYear,
		b.Pages,
		b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

func (r *postgresRepository) List(ctx context.Context, filter book.Filter) ([]book.Book, error) {
	query, args := buildListQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]book.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}

	return books, rows.Err()
}

func (r *postgresRepository) Stats(ctx context.Context) (*book.Stats, error) {
	stats := &book.Stats{}

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'available'),
			COUNT(*) FILTER (WHERE status = 'borrowed'),
			COUNT(*) FILTER (WHERE status = 'reserved')
		FROM books
	`
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalBooks,
		&stats.AvailableBooks,
		&stats.BorrowedBooks,
		&stats.ReservedBooks,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count books: %w", err)
	}

	recentQuery := `SELECT` + bookColumns + bookFrom + ` ORDER BY b.created_at DESC LIMIT 5`
	rows, err := r.pool.Query(ctx, recentQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent books: %w", err)
	}
	defer rows.Close()

	stats.RecentBooks = make([]book.Book, 0, 5)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		stats.RecentBooks = append(stats.RecentBooks, *b)
	}

	return stats, rows.Err()
}

// buildListQuery composes the filter predicates into a SELECT. The free-text
// query matches title, author or genre name; all matches are case-sensitive
// LIKE containment.
func buildListQuery(filter book.Filter) (string, []any) {
	conditions := []string{}
	args := []any{}
	argIndex := 1

	if filter.Query != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(b.title LIKE '%%' || $%d || '%%' OR b.author LIKE '%%' || $%d || '%%'"+
				" OR g.name LIKE '%%' || $%d || '%%')",
			argIndex, argIndex, argIndex))
		args = append(args, filter.Query)
		argIndex++
	}

	if filter.Author != "" {
		conditions = append(conditions, fmt.Sprintf("b.author LIKE '%%' || $%d || '%%'", argIndex))
		args = append(args, filter.Author)
		argIndex++
	}

	if filter.GenreID != nil {
		conditions = append(conditions, fmt.Sprintf("b.genre_id = $%d", argIndex))
		args = append(args, *filter.GenreID)
		argIndex++
	}

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("b.status = $%d", argIndex))
		args = append(args, filter.Status)
	}

	query := `SELECT` + bookColumns + bookFrom
	if len(conditions) > 0 {
		query += " WHERE " + utils.JoinWithAnd(conditions)
	}
	query += " ORDER BY b.created_at DESC"

	return query, args
}

func scanBook(row pgx.Row) (*book.Book, error) {
	b := &book.Book{}
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.Description,
		&b.GenreID,
		&b.GenreName,
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
		return nil, err
	}
	return b, nil
}
