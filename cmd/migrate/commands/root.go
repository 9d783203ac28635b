package commands

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"jobboard-backend/internal/shared/config"
	"jobboard-backend/internal/shared/storage/db"
)

const flagDatabaseURL = "database-url"

// databaseURL holds the target database. Flag parsing sets this; env is the fallback.
var databaseURL string

func init() {
	RootCmd.PersistentFlags().StringVar(&databaseURL, flagDatabaseURL, "", "Postgres connection URL (env: DATABASE_URL)")

	RootCmd.AddCommand(newMigrationCmd("up", "Apply all pending migrations", db.RunMigrations))
	RootCmd.AddCommand(newMigrationCmd("down", "Roll back the most recent migration", db.RollbackMigration))
	RootCmd.AddCommand(newMigrationCmd("status", "Print the state of every migration", db.MigrationStatus))
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:          "migrate",
	Short:        "Manage the job board database schema",
	SilenceUsage: true,
}

type migrationFunc func(ctx context.Context, database *sql.DB) error

func newMigrationCmd(use, short string, run migrationFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			sqlDB, err := connect(ctx)
			if err != nil {
				return err
			}
			defer sqlDB.Close()
			if err := run(ctx, sqlDB); err != nil {
				return fmt.Errorf("migrate %s: %w", use, err)
			}
			return nil
		},
	}
}

func connect(ctx context.Context) (*sql.DB, error) {
	url := databaseURL
	if url == "" {
		url = config.Load().DatabaseURL
	}
	sqlDB, err := db.Connect(ctx, url, db.OptionsFromEnv(db.DefaultMigrateOptions()))
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return sqlDB, nil
}
