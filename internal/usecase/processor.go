package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/templates"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidPDF is returned when a renderer produces something that is not
// a PDF document.
var ErrInvalidPDF = errors.New("invalid PDF output")

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type JobsRepo interface {
	Save(ctx context.Context, j *domain.RenderJob) error
	Get(ctx context.Context, id uuid.UUID) (*domain.RenderJob, error)
}

// Options tune the render pipeline. Zero values get defaults.
type Options struct {
	OutputDir     string
	Attempts      int
	Backoff       time.Duration
	RenderTimeout time.Duration
}

const (
	defaultAttempts = 3
	defaultBackoff  = time.Second
	htmlArtifact    = "resume.html"
	pdfArtifact     = "resume.pdf"
)

type Processor struct {
	renderer Renderer
	repo     JobsRepo
	engine   *templates.Engine
	opts     Options
}

func NewProcessor(r Renderer, repo JobsRepo, engine *templates.Engine, opts Options) *Processor {
	if opts.Attempts <= 0 {
		opts.Attempts = defaultAttempts
	}
	if opts.Backoff <= 0 {
		opts.Backoff = defaultBackoff
	}
	if opts.OutputDir == "" {
		opts.OutputDir = filepath.Join("resume-data", "generated")
	}
	return &Processor{renderer: r, repo: repo, engine: engine, opts: opts}
}

// Engine returns the template engine used for previews.
func (p *Processor) Engine() *templates.Engine {
	return p.engine
}

// Preview validates the document and returns its HTML.
func (p *Processor) Preview(ctx context.Context, data *model.ResumeData, settings model.ResumeSettings) (string, error) {
	if data == nil {
		return "", model.ErrEmptyInput
	}
	doc := model.Document{Data: *data, Settings: settings}
	if err := doc.Validate(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p.engine.RenderString(data, settings)
}

// RenderPDF renders the document to PDF bytes.
func (p *Processor) RenderPDF(ctx context.Context, data *model.ResumeData, settings model.ResumeSettings) ([]byte, error) {
	html, err := p.Preview(ctx, data, settings)
	if err != nil {
		return nil, err
	}
	return p.renderWithRetry(ctx, html)
}

// renderWithRetry calls the renderer up to Attempts times with exponential
// backoff and checks the %PDF signature of the result.
func (p *Processor) renderWithRetry(ctx context.Context, html string) ([]byte, error) {
	var (
		pdfBytes  []byte
		renderErr error
	)
	for i := 0; i < p.opts.Attempts; i++ {
		pdfBytes, renderErr = p.renderOnce(ctx, html)
		if renderErr == nil {
			return pdfBytes, nil
		}
		slog.WarnContext(ctx, "render attempt failed", "attempt", i+1, "error", renderErr)
		if i < p.opts.Attempts-1 {
			backoff := p.opts.Backoff * time.Duration(1<<i)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("rendering failed after %d attempts: %w", p.opts.Attempts, renderErr)
}

func (p *Processor) renderOnce(ctx context.Context, html string) ([]byte, error) {
	if p.opts.RenderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.RenderTimeout)
		defer cancel()
	}
	b, err := p.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		return nil, fmt.Errorf("%w (len=%d)", ErrInvalidPDF, len(b))
	}
	return b, nil
}

// Submit stores a new pending job for doc.
func (p *Processor) Submit(ctx context.Context, doc *model.Document) (*domain.RenderJob, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	tpl, err := p.engine.Resolve(doc.Settings.Template)
	if err != nil {
		return nil, err
	}
	job := domain.NewRenderJob(doc)
	job.Template = tpl.ID
	if err := p.save(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Process renders job in the calling goroutine. The HTML artifact is written
// before the PDF so it survives a failed render. The job is saved at every
// status change.
func (p *Processor) Process(ctx context.Context, job *domain.RenderJob) error {
	log := slog.With("job_id", job.ID.String(), "template", job.Template)
	if job.Metadata == nil {
		job.Metadata = map[string]interface{}{}
	}
	if job.Document == nil {
		return p.fail(ctx, job, errors.New("job has no document"))
	}

	job.Status = domain.StatusRendering
	job.UpdatedAt = time.Now().UTC()
	if err := p.save(ctx, job); err != nil {
		return err
	}

	doc := job.Document
	html, err := p.Preview(ctx, &doc.Data, doc.Settings)
	if err != nil {
		return p.fail(ctx, job, err)
	}

	dir := filepath.Join(p.opts.OutputDir, job.ID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return p.fail(ctx, job, err)
	}
	job.HTMLPath = filepath.Join(dir, htmlArtifact)
	if err := os.WriteFile(job.HTMLPath, []byte(html), 0o644); err != nil {
		return p.fail(ctx, job, err)
	}

	start := time.Now()
	pdfBytes, err := p.renderWithRetry(ctx, html)
	if err != nil {
		return p.fail(ctx, job, err)
	}
	job.PDFPath = filepath.Join(dir, pdfArtifact)
	if err := os.WriteFile(job.PDFPath, pdfBytes, 0o644); err != nil {
		job.PDFPath = ""
		return p.fail(ctx, job, err)
	}

	job.Status = domain.StatusCompleted
	job.Metadata["pdf_bytes"] = len(pdfBytes)
	job.Metadata["render_ms"] = time.Since(start).Milliseconds()
	job.Metadata["download_name"] = DownloadName(&doc.Data)
	job.UpdatedAt = time.Now().UTC()
	log.Info("render job completed", "pdf", job.PDFPath, "bytes", len(pdfBytes))
	return p.save(ctx, job)
}

func (p *Processor) fail(ctx context.Context, job *domain.RenderJob, cause error) error {
	job.Status = domain.StatusFailed
	if job.Metadata == nil {
		job.Metadata = map[string]interface{}{}
	}
	job.Metadata["error"] = cause.Error()
	job.UpdatedAt = time.Now().UTC()
	slog.ErrorContext(ctx, "render job failed", "job_id", job.ID.String(), "error", cause)
	// record the failure even when ctx was cancelled
	if err := p.save(context.WithoutCancel(ctx), job); err != nil {
		slog.Error("failed to save failed job", "job_id", job.ID.String(), "error", err)
	}
	return cause
}

func (p *Processor) save(ctx context.Context, job *domain.RenderJob) error {
	if p.repo == nil {
		return nil
	}
	if err := p.repo.Save(ctx, job); err != nil {
		return fmt.Errorf("save job %s: %w", job.ID, err)
	}
	return nil
}

// Job loads a job from the repository.
func (p *Processor) Job(ctx context.Context, id uuid.UUID) (*domain.RenderJob, error) {
	if p.repo == nil {
		return nil, domain.ErrJobNotFound
	}
	return p.repo.Get(ctx, id)
}

// Gallery renders data with every template in ids concurrently, at most
// workers at a time. An empty ids means the whole gallery. The first
// failure cancels the remaining renders.
func (p *Processor) Gallery(ctx context.Context, data *model.ResumeData, settings model.ResumeSettings, ids []string, workers int) (map[string][]byte, error) {
	if len(ids) == 0 {
		ids = templates.IDs()
	}
	for _, id := range ids {
		if _, err := templates.Get(id); err != nil {
			return nil, err
		}
	}
	if workers <= 0 {
		workers = 1
	}

	var (
		mu  sync.Mutex
		out = make(map[string][]byte, len(ids))
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			s := settings
			s.Template = id
			b, err := p.RenderPDF(gctx, data, s)
			if err != nil {
				return fmt.Errorf("template %s: %w", id, err)
			}
			mu.Lock()
			out[id] = b
			mu.Unlock()
			slog.DebugContext(gctx, "gallery template rendered", "template", id, "bytes", len(b))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// DownloadName is the attachment name for a resume PDF, e.g.
// "Ada_Lovelace_Resume.pdf". Accents are folded to ASCII and anything that
// is not a letter or digit separates words.
func DownloadName(data *model.ResumeData) string {
	name := ""
	if data != nil {
		name = asciiWords(data.PersonalInfo.FullName)
	}
	if name == "" {
		return "Resume.pdf"
	}
	return name + "_Resume.pdf"
}

func asciiWords(s string) string {
	var words []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	for _, r := range norm.NFD.String(s) {
		switch {
		case unicode.Is(unicode.Mn, r):
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			cur.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return strings.Join(words, "_")
}
