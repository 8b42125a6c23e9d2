package migration

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// Migrator applies file-based SQL migrations over an open connection
type Migrator struct {
	m   *migrate.Migrate
	log *zap.Logger
}

// New binds golang-migrate to db with path as the migration source
func New(db *sql.DB, path string, log *zap.Logger) (*Migrator, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+path, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return &Migrator{m: m, log: log}, nil
}

// Up applies every pending migration
func (mg *Migrator) Up() error {
	return mg.run("up", mg.m.Up())
}

// Down rolls every migration back
func (mg *Migrator) Down() error {
	return mg.run("down", mg.m.Down())
}

// Steps applies n migrations forward, or -n backward
func (mg *Migrator) Steps(n int) error {
	return mg.run(fmt.Sprintf("steps(%d)", n), mg.m.Steps(n))
}

func (mg *Migrator) run(op string, err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		mg.log.Info("Nothing to migrate", zap.String("op", op))
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", op, err)
	}

	version, dirty, verr := mg.Version()
	if verr != nil {
		return verr
	}
	mg.log.Info("Migration complete",
		zap.String("op", op),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}

// Version reports the current schema version; 0 when nothing is applied
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read migration version: %w", err)
	}
	return version, dirty, nil
}

// Force overwrites the recorded version. Only for clearing a dirty flag
// after a failed migration has been repaired by hand.
func (mg *Migrator) Force(version int) error {
	mg.log.Warn("Forcing migration version", zap.Int("version", version))
	if err := mg.m.Force(version); err != nil {
		return fmt.Errorf("failed to force version %d: %w", version, err)
	}
	return nil
}

// Close releases the source and database handles
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	if srcErr != nil {
		return fmt.Errorf("failed to close migration source: %w", srcErr)
	}
	if dbErr != nil {
		return fmt.Errorf("failed to close migration database handle: %w", dbErr)
	}
	return nil
}
