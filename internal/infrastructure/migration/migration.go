package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// Migrations lists the schema changes in the order they are applied.
func Migrations() []Migration {
	return []Migration{
		{Name: "create_render_jobs", Up: createRenderJobs},
		{Name: "index_render_jobs_status", Up: indexRenderJobsStatus},
	}
}

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if pool == nil {
		slog.Warn("Skipping migrations: no jobs database")
		return nil
	}
	slog.Info("Starting database migrations")

	for _, m := range Migrations() {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

func createRenderJobs(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS render_jobs (
			id UUID PRIMARY KEY,
			template TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			metadata JSONB NOT NULL DEFAULT '{}'::jsonb,
			html_path TEXT NOT NULL DEFAULT '',
			pdf_path TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

func indexRenderJobsStatus(ctx context.Context, pool *pgxpool.Pool) error {
	query := `CREATE INDEX IF NOT EXISTS render_jobs_status_idx ON render_jobs (status, updated_at);`
	if _, err := pool.Exec(ctx, query); err != nil {
		// Log the error but don't fail - lookups still work without the index
		slog.Warn("Error creating render_jobs status index", "error", err)
		return nil
	}
	return nil
}
