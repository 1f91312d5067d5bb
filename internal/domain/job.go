package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/model"
)

// ErrJobNotFound is returned by job repositories for unknown ids.
var ErrJobNotFound = errors.New("render job not found")

// Render job statuses.
const (
	StatusPending   = "pending"
	StatusRendering = "rendering"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// RenderJob is an asynchronous PDF render of one resume document.
type RenderJob struct {
	ID        uuid.UUID              `json:"id"`
	Template  string                 `json:"template"`
	Status    string                 `json:"status"`
	Metadata  map[string]interface{} `json:"metadata"`
	HTMLPath  string                 `json:"html_path,omitempty"`
	PDFPath   string                 `json:"pdf_path,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
	Document  *model.Document        `json:"-"`
}

// NewRenderJob returns a pending job for doc.
func NewRenderJob(doc *model.Document) *RenderJob {
	now := time.Now().UTC()
	return &RenderJob{
		ID:        uuid.New(),
		Template:  doc.Settings.Template,
		Status:    StatusPending,
		Metadata:  map[string]interface{}{},
		CreatedAt: now,
		UpdatedAt: now,
		Document:  doc,
	}
}

// Done reports whether the job reached a final status.
func (j *RenderJob) Done() bool {
	return j.Status == StatusCompleted || j.Status == StatusFailed
}

// Clone returns a copy that shares no mutable state with j.
func (j *RenderJob) Clone() *RenderJob {
	c := *j
	c.Metadata = make(map[string]interface{}, len(j.Metadata))
	for k, v := range j.Metadata {
		c.Metadata[k] = v
	}
	return &c
}
