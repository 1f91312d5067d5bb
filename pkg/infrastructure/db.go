package infrastructure

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

// NewJobsPool connects to the render jobs database. An empty dsn means no
// database: it returns a nil pool and no error.
func NewJobsPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, nil
	}
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect jobs db: %w", err)
	}
	return pool, nil
}
