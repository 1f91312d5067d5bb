package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type JobsRepo struct {
	pool *pgxpool.Pool
}

func NewJobsRepo(pool *pgxpool.Pool) *JobsRepo {
	return &JobsRepo{pool: pool}
}

// Save upserts j. Without a pool it does nothing.
func (r *JobsRepo) Save(ctx context.Context, j *domain.RenderJob) error {
	if r.pool == nil {
		return nil
	}

	metaB, err := json.Marshal(j.Metadata)
	if err != nil {
		return fmt.Errorf("encode job metadata: %w", err)
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO render_jobs (id, template, status, metadata, html_path, pdf_path, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET template = EXCLUDED.template, status = EXCLUDED.status, metadata = EXCLUDED.metadata, html_path = EXCLUDED.html_path, pdf_path = EXCLUDED.pdf_path, updated_at = EXCLUDED.updated_at`,
		j.ID, j.Template, j.Status, metaB, j.HTMLPath, j.PDFPath, j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save render job %s: %w", j.ID, err)
	}
	return nil
}

// Get loads the job with id. The document itself is not persisted.
func (r *JobsRepo) Get(ctx context.Context, id uuid.UUID) (*domain.RenderJob, error) {
	if r.pool == nil {
		return nil, domain.ErrJobNotFound
	}

	var (
		j     domain.RenderJob
		metaB []byte
	)
	err := r.pool.QueryRow(ctx, `SELECT id, template, status, metadata, html_path, pdf_path, created_at, updated_at
		FROM render_jobs WHERE id = $1`, id).
		Scan(&j.ID, &j.Template, &j.Status, &metaB, &j.HTMLPath, &j.PDFPath, &j.CreatedAt, &j.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load render job %s: %w", id, err)
	}
	j.Metadata = map[string]interface{}{}
	if len(metaB) > 0 {
		if err := json.Unmarshal(metaB, &j.Metadata); err != nil {
			return nil, fmt.Errorf("decode job metadata: %w", err)
		}
	}
	return &j, nil
}
