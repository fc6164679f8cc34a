package postgres

import (
	"embed"
	"log/slog"

	"habitar/config"
	"habitar/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrateParams defines the required parameters
type MigrateParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// RunMigrations applies all pending schema migrations against the shared
// connection pool. It is a no-op unless migrations.apply is enabled, so
// production deployments can keep schema changes in a separate pipeline.
func RunMigrations(params MigrateParams) error {
	if params.Config.Migrations == nil || !params.Config.Migrations.Apply {
		return nil
	}

	sqlDB, err := params.DB.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errors.Wrap(err, "failed to create migration source")
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return errors.Wrap(err, "failed to create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return errors.Wrap(err, "failed to create migrator")
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return errors.Wrap(verr, "failed to read migration version")
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			params.Logger.Info("schema already up to date", slog.Uint64("version", uint64(version)))

			return nil
		}

		return errors.Wrap(err, "failed to run migrations")
	}

	newVersion, _, verr := m.Version()
	if verr != nil {
		return errors.Wrap(verr, "failed to read migration version")
	}

	params.Logger.Info("schema migrated",
		slog.Uint64("fromVersion", uint64(version)),
		slog.Bool("wasDirty", dirty),
		slog.Uint64("toVersion", uint64(newVersion)),
	)

	return nil
}
