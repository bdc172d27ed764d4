package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"library-backend/internal/config"
	"library-backend/internal/infrastructure/database"
	"library-backend/migrations"
	"library-backend/pkg/logger"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			if _, err := db.Pool.Exec(cmd.Context(), migrations.Schema); err != nil {
				return fmt.Errorf("failed to apply schema: %w", err)
			}

			log.Info().Msg("schema applied")
			return nil
		},
	}
}

func connect(ctx context.Context) (*database.PostgresDB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(cfg.App.Environment)

	db := database.NewPostgresDB(&cfg.Database)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := db.Connect(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}
