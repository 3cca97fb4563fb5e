package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"slices"

	"bookhaven/internal/version"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

type DB struct {
	*sql.DB
}

func NewDB(path string) (*DB, error) {
	if path == "" {
		return nil, errors.New("database path is required")
	}

	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Cascade semantics depend on this pragma, sqlite defaults it off.
	if _, err := d.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, errors.Wrap(err, "failed to enable foreign keys")
	}

	return &DB{d}, nil
}

func (d *DB) Close() error {
	return d.DB.Close()
}

//go:embed migration
var migrationFS embed.FS

//go:embed seed
var seedFS embed.FS

const latestSchemaFileName = "LATEST_SCHEMA.sql"

// Migrate bootstraps the schema and seed rows on first run. Subsequent runs
// are no-ops once the current version is recorded in migration_history.
func (d *DB) Migrate(ctx context.Context) error {
	exist, err := d.checkTableExists(ctx, "migration_history")
	if err != nil {
		return errors.Wrap(err, "failed to check database table")
	}

	if !exist {
		if err := d.applyLatestSchema(ctx); err != nil {
			return errors.Wrap(err, "failed to apply latest schema")
		}
		if err := d.seed(ctx); err != nil {
			return errors.Wrap(err, "failed to seed database")
		}
	}

	if _, err := d.UpsertMigrationHistory(ctx, &UpsertMigrationHistory{
		Version: version.GetCurrentVersion(),
	}); err != nil {
		return errors.Wrap(err, "failed to upsert migration history")
	}
	return nil
}

func (d *DB) applyLatestSchema(ctx context.Context) error {
	latestSchemaPath := fmt.Sprintf("migration/%s", latestSchemaFileName)
	buf, err := migrationFS.ReadFile(latestSchemaPath)
	if err != nil {
		return errors.Wrapf(err, "failed to read latest schema file: %q", latestSchemaPath)
	}

	stmt := string(buf)
	if err := d.execute(ctx, stmt); err != nil {
		return errors.Wrapf(err, "failed to apply latest schema: %s", stmt)
	}
	return nil
}

func (d *DB) seed(ctx context.Context) error {
	filenames, err := fs.Glob(seedFS, "seed/*.sql")
	if err != nil {
		return errors.Wrap(err, "failed to read seed files")
	}

	slices.Sort(filenames)

	// Loop over all seed files and execute them in order.
	for _, filename := range filenames {
		buf, err := seedFS.ReadFile(filename)
		if err != nil {
			return errors.Wrapf(err, "failed to read seed file: %q", filename)
		}
		stmt := string(buf)
		if err := d.execute(ctx, stmt); err != nil {
			return errors.Wrapf(err, "seed error: %s", stmt)
		}
	}
	return nil
}

func (d *DB) checkTableExists(ctx context.Context, name string) (bool, error) {
	query := "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?"
	var count int
	if err := d.QueryRowContext(ctx, query, name).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// execute runs a single SQL statement within a transaction.
func (d *DB) execute(ctx context.Context, stmt string) error {
	tx, err := d.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, stmt); err != nil {
		return errors.Wrap(err, "failed to execute statement")
	}

	return tx.Commit()
}
