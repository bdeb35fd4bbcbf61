package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"blog-service/internal/config"
	"blog-service/internal/logger"
	"blog-service/internal/repository"
)

// NewMigrateCommand creates the migrate command. PostgreSQL runs the SQL
// migrations; MySQL and SQLite are migrated from the GORM models.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:       "migrate <up|down>",
		Short:     "Apply or roll back database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), rootOpts.Config(), dir, args[0])
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "migrations", "directory with SQL migrations")

	return cmd
}

func runMigrate(ctx context.Context, cfg *config.Config, dir, direction string) error {
	if cfg.DBDriver != config.DriverPostgres {
		if direction != "up" {
			return fmt.Errorf("migrate %s is only supported for postgres", direction)
		}
		be, err := openBackend(ctx, cfg)
		if err != nil {
			return err
		}
		defer be.close()
		if err := repository.AutoMigrate(be.gorm); err != nil {
			return err
		}
		logger.Info("Schema migrated", slog.String("driver", cfg.DBDriver))
		return nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve migrations dir: %w", err)
	}
	m, err := migrate.New("file://"+filepath.ToSlash(abs), cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", verr)
	}
	logger.Info("Migrations applied",
		slog.String("direction", direction),
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty))
	return nil
}
