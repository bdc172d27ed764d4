package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using system environment")
	}

	root := &cobra.Command{
		Use:   "bootstrap",
		Short: "Deployment tooling for the library backend",
		Long: "bootstrap applies the database schema and optionally loads " +
			"sample data. Both commands are idempotent and safe to re-run.",
	}

	root.AddCommand(newMigrateCmd())
	root.AddCommand(newSeedCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
