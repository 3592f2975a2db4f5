package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/yigit/academico/internal/pkg/logger"
)

//go:embed sql/*.sql
var embedded embed.FS

// Files returns the embedded migration files rooted at their directory
func Files() fs.FS {
	sub, err := fs.Sub(embedded, "sql")
	if err != nil {
		// the directory is embedded at compile time
		panic(err)
	}
	return sub
}

// Migrator manages database migrations: the schema and the stored functions
// every repository calls.
type Migrator struct {
	db       *sql.DB
	provider *goose.Provider
}

// NewMigrator creates a migrator over the pool's connections
func NewMigrator(pool *pgxpool.Pool) (*Migrator, error) {
	return NewMigratorFromDB(stdlib.OpenDBFromPool(pool))
}

// NewMigratorFromDB creates a migrator on an already opened database handle
func NewMigratorFromDB(db *sql.DB) (*Migrator, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, Files())
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	return &Migrator{db: db, provider: provider}, nil
}

// Up applies every pending migration
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	for _, r := range results {
		logger.Info().
			Int64("version", r.Source.Version).
			Str("file", r.Source.Path).
			Dur("duration", r.Duration).
			Msg("Migration applied")
	}
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	if len(results) == 0 {
		logger.Info().Msg("Database schema is up to date")
	}
	return nil
}

// Down rolls back the most recent migration
func (m *Migrator) Down(ctx context.Context) error {
	result, err := m.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	logger.Info().
		Int64("version", result.Source.Version).
		Str("file", result.Source.Path).
		Msg("Migration rolled back")
	return nil
}

// MigrationState is one line of the status report
type MigrationState struct {
	Version int64
	File    string
	Applied bool
}

// Status reports every known migration and whether it has been applied
func (m *Migrator) Status(ctx context.Context) ([]MigrationState, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration status: %w", err)
	}

	states := make([]MigrationState, 0, len(statuses))
	for _, s := range statuses {
		states = append(states, MigrationState{
			Version: s.Source.Version,
			File:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return states, nil
}

// Close releases the database handle
func (m *Migrator) Close() error {
	return m.db.Close()
}
