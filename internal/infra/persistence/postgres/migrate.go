package postgres

import (
	"context"
	"database/sql"

	"newsbite/internal/errors"
	"newsbite/internal/infra/persistence/migrations"

	// Registers the pgx database/sql driver used by the migration runner.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// runMigrations applies the embedded goose migrations on a dedicated
// database/sql connection, so gorm never sees a half-migrated schema.
func runMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return errors.Wrap(err, "failed to open migration connection")
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}
