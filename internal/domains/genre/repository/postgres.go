package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/genre"
	"library-backend/pkg/database"
)

const genreColumns = `id, name, parent_id, level, description, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) genre.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, g *genre.Genre) error {
	query := `
		INSERT INTO genres (id, name, parent_id, level, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		g.ID,
		g.Name,
		g.ParentID,
		g.Level,
		g.Description,
		g.CreatedAt,
		g.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return genre.ErrDuplicateName
		}
		return fmt.Errorf("failed to create genre: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	query := `SELECT ` + genreColumns + ` FROM genres WHERE id = $1`

	g, err := scanGenre(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre: %w", err)
	}

	return g, nil
}

func (r *postgresRepository) ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM genres WHERE name = $1 AND ($2::uuid IS NULL OR id <> $2))`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check genre name: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]genre.Genre, error) {
	query := `SELECT ` + genreColumns + ` FROM genres ORDER BY level, name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	defer rows.Close()

	genres := make([]genre.Genre, 0)
	for rows.Next() {
		g, err := scanGenre(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, *g)
	}

	return genres, rows.Err()
}

// Update writes the genre row and the subtree level updates in one
// transaction so the level invariant never becomes observable mid-cascade.
func (r *postgresRepository) Update(ctx context.Context, g *genre.Genre, levelUpdates map[uuid.UUID]int) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			UPDATE genres SET name = $2, parent_id = $3, level = $4,
				description = $5, updated_at = $6
			WHERE id = $1
		`

		tag, err := tx.Exec(ctx, query,
			g.ID,
			g.Name,
			g.ParentID,
			g.Level,
			g.Description,
			g.UpdatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return genre.ErrDuplicateName
			}
			return fmt.Errorf("failed to update genre: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return genre.ErrGenreNotFound
		}

		for id, level := range levelUpdates {
			if id == g.ID {
				continue
			}
			if _, err := tx.Exec(ctx, `UPDATE genres SET level = $2 WHERE id = $1`, id, level); err != nil {
				return fmt.Errorf("failed to cascade genre level: %w", err)
			}
		}

		return nil
	})
}

func (r *postgresRepository) HasChildren(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM genres WHERE parent_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check genre children: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) InUseByBooks(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM books WHERE genre_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check genre usage: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// FK backstop; the service checks first.
			return genre.ErrGenreInUse
		}
		return fmt.Errorf("failed to delete genre: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return genre.ErrGenreNotFound
	}

	return nil
}

func scanGenre(row pgx.Row) (*genre.Genre, error) {
	g := &genre.Genre{}
	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.ParentID,
		&g.Level,
		&g.Description,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}
