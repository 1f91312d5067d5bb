package repository

import (
	"context"
	"sync"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
)

// MemoryJobsRepo keeps jobs in process memory. It is used when no jobs
// database is configured and in tests.
type MemoryJobsRepo struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]*domain.RenderJob
}

func NewMemoryJobsRepo() *MemoryJobsRepo {
	return &MemoryJobsRepo{jobs: map[uuid.UUID]*domain.RenderJob{}}
}

func (r *MemoryJobsRepo) Save(_ context.Context, j *domain.RenderJob) error {
	c := j.Clone()
	c.Document = nil
	r.mu.Lock()
	r.jobs[j.ID] = c
	r.mu.Unlock()
	return nil
}

func (r *MemoryJobsRepo) Get(_ context.Context, id uuid.UUID) (*domain.RenderJob, error) {
	r.mu.RLock()
	j, ok := r.jobs[id]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	return j.Clone(), nil
}
