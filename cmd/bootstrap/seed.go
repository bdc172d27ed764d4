package main

import (
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"library-backend/pkg/database"
)

// seedStatements load a small recognizable data set: a three-level genre
// branch, a handful of employees and books, one open loan already past its
// due date, and an active reservation. Fixed UUIDs plus ON CONFLICT DO
// NOTHING keep the command idempotent.
var seedStatements = []string{
	// Genres: Technology > Programming > Go, plus a second root.
	`INSERT INTO genres (id, name, parent_id, level, description)
	 VALUES ('6f1f64a5-1111-4a62-9a10-000000000001', 'Technology', NULL, 1, 'Computing and engineering')
	 ON CONFLICT (id) DO NOTHING`,
	`INSERT INTO genres (id, name, parent_id, level, description)
	 VALUES ('6f1f64a5-1111-4a62-9a10-000000000002', 'Programming', '6f1f64a5-1111-4a62-9a10-000000000001', 2, NULL)
	 ON CONFLICT (id) DO NOTHING`,
	`INSERT INTO genres (id, name, parent_id, level, description)
	 VALUES ('6f1f64a5-1111-4a62-9a10-000000000003', 'Go', '6f1f64a5-1111-4a62-9a10-000000000002', 3, NULL)
	 ON CONFLICT (id) DO NOTHING`,
	`INSERT INTO genres (id, name, parent_id, level, description)
	 VALUES ('6f1f64a5-1111-4a62-9a10-000000000004', 'Business', NULL, 1, NULL)
	 ON CONFLICT (id) DO NOTHING`,

	// Employees.
	`INSERT INTO employees (id, employee_id, name, name_kana, email, department, position, hire_date, status)
	 VALUES ('7a2b75b6-2222-4b73-8b21-000000000001', 'EMP001', 'Taro Yamada', 'ヤマダ タロウ', 'taro.yamada@example.com', 'Engineering', 'Engineer', '2020-04-01', 'active')
	 ON CONFLICT (id) DO NOTHING`,
	`INSERT INTO employees (id, employee_id, name, name_kana, email, department, position, hire_date, status)
	 VALUES ('7a2b75b6-2222-4b73-8b21-000000000002', 'EMP002', 'Hanako Suzuki', 'スズキ ハナコ', 'hanako.suzuki@example.com', 'Sales', 'Manager', '2018-10-01', 'active')
	 ON CONFLICT (id) DO NOTHING`,
	`INSERT INTO employees (id, employee_id, name, email, department, status)
	 VALUES ('7a2b75b6-2222-4b73-8b21-000000000003', 'EMP003', 'Ichiro Tanaka', 'ichiro.tanaka@example.com', 'Engineering', 'retired')
	 ON CONFLICT (id) DO NOTHING`,

	// Books: one available, one borrowed and already overdue.
	`INSERT INTO books (id, title, author, genre_id, isbn, publisher, publication_year, pages, status)
	 VALUES ('8c3d86c7-3333-4c84-9c32-000000000001', 'The Go Programming Language', 'Alan A. A. Donovan', '6f1f64a5-1111-4a62-9a10-000000000003', '9780134190440', 'Addison-Wesley', 2015, 380, 'available')
	 ON CONFLICT (id) DO NOTHING`,
	`INSERT INTO books (id, title, author, genre_id, publication_year, status, borrower_id, due_date)
	 VALUES ('8c3d86c7-3333-4c84-9c32-000000000002', 'Clean Architecture', 'Robert C. Martin', '6f1f64a5-1111-4a62-9a10-000000000002', 2017, 'reserved', '7a2b75b6-2222-4b73-8b21-000000000001', '2024-01-15')
	 ON CONFLICT (id) DO NOTHING`,
	`INSERT INTO books (id, title, author, genre_id, status)
	 VALUES ('8c3d86c7-3333-4c84-9c32-000000000003', 'High Output Management', 'Andrew S. Grove', '6f1f64a5-1111-4a62-9a10-000000000004', 'available')
	 ON CONFLICT (id) DO NOTHING`,

	// Open loan behind the borrowed book, past due.
	`INSERT INTO loans (id, book_id, employee_id, checkout_at, due_date, is_overdue)
	 VALUES ('9d4e97d8-4444-4d95-8d43-000000000001', '8c3d86c7-3333-4c84-9c32-000000000002', '7a2b75b6-2222-4b73-8b21-000000000001', '2024-01-01T09:00:00Z', '2024-01-15', FALSE)
	 ON CONFLICT (id) DO NOTHING`,
	// Closed historical loan on the available book.
	`INSERT INTO loans (id, book_id, employee_id, checkout_at, due_date, returned_at, is_overdue)
	 VALUES ('9d4e97d8-4444-4d95-8d43-000000000002', '8c3d86c7-3333-4c84-9c32-000000000001', '7a2b75b6-2222-4b73-8b21-000000000002', '2023-11-01T09:00:00Z', '2023-11-15', '2023-11-10T17:30:00Z', FALSE)
	 ON CONFLICT (id) DO NOTHING`,

	// Active reservation on the borrowed book, hence its reserved status.
	`INSERT INTO reservations (id, book_id, employee_id, status, reserved_at)
	 VALUES ('ae5fa8e9-5555-4ea6-9e54-000000000001', '8c3d86c7-3333-4c84-9c32-000000000002', '7a2b75b6-2222-4b73-8b21-000000000002', 'active', '2024-01-05T10:00:00Z')
	 ON CONFLICT (id) DO NOTHING`,
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load idempotent sample data",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			err = database.WithTransaction(cmd.Context(), db.Pool, func(tx pgx.Tx) error {
				for _, stmt := range seedStatements {
					if _, err := tx.Exec(cmd.Context(), stmt); err != nil {
						return fmt.Errorf("seed statement failed: %w", err)
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			log.Info().Int("statements", len(seedStatements)).Msg("sample data loaded")
			return nil
		},
	}
}
