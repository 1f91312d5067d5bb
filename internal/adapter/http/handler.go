package http

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/templates"
	"resume-builder/internal/usecase"
	apierrors "resume-builder/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handler struct {
	processor *usecase.Processor
}

func NewHandler(p *usecase.Processor) *Handler {
	return &Handler{processor: p}
}

// Register mounts every route on app.
func (h *Handler) Register(app fiber.Router) {
	app.Get("/healthz", h.Health)
	app.Get("/templates", h.ListTemplates)
	app.Get("/templates/:id", h.GetTemplate)
	app.Get("/templates/:id/preview", h.TemplatePreview)
	app.Post("/validate", h.Validate)
	app.Post("/preview", h.Preview)
	app.Post("/download", h.Download)
	app.Post("/jobs", h.StartJob)
	app.Get("/jobs/:id", h.GetJob)
	app.Get("/jobs/:id/pdf", h.GetJobPDF)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	list := templates.List()
	if category := c.Query("category"); category != "" {
		list = templates.ByCategory(category)
	}
	out := make([]templates.Summary, 0, len(list))
	for _, t := range list {
		out = append(out, t.Summary())
	}
	return c.JSON(fiber.Map{"templates": out, "categories": templates.Categories()})
}

func (h *Handler) GetTemplate(c *fiber.Ctx) error {
	t, err := templates.Get(c.Params("id"))
	if err != nil {
		return apierrors.ErrNotFound(err.Error())
	}
	return c.JSON(t.Summary())
}

// TemplatePreview renders the built-in sample resume with one template.
func (h *Handler) TemplatePreview(c *fiber.Ctx) error {
	t, err := templates.Get(c.Params("id"))
	if err != nil {
		return apierrors.ErrNotFound(err.Error())
	}
	html, err := h.processor.Preview(c.UserContext(), templates.SampleData(), model.ResumeSettings{Template: t.ID, ShowPhoto: true})
	if err != nil {
		return err
	}
	return sendHTML(c, html)
}

type validateResp struct {
	Valid  bool               `json:"valid"`
	Errors []model.FieldError `json:"errors"`
}

func (h *Handler) Validate(c *fiber.Ctx) error {
	doc, err := decodeDocument(c)
	if err != nil {
		return err
	}
	resp := validateResp{Valid: true, Errors: []model.FieldError{}}
	if err := doc.Validate(); err != nil {
		var ve *model.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		resp.Valid = false
		resp.Errors = ve.Errors
	}
	return c.JSON(resp)
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	doc, err := decodeDocument(c)
	if err != nil {
		return err
	}
	html, err := h.processor.Preview(c.UserContext(), &doc.Data, doc.Settings)
	if err != nil {
		return err
	}
	return sendHTML(c, html)
}

func (h *Handler) Download(c *fiber.Ctx) error {
	doc, err := decodeDocument(c)
	if err != nil {
		return err
	}
	pdf, err := h.processor.RenderPDF(c.UserContext(), &doc.Data, doc.Settings)
	if err != nil {
		return renderFailure(err)
	}
	return sendPDF(c, usecase.DownloadName(&doc.Data), pdf)
}

func (h *Handler) StartJob(c *fiber.Ctx) error {
	doc, err := decodeDocument(c)
	if err != nil {
		return err
	}
	job, err := h.processor.Submit(c.UserContext(), doc)
	if err != nil {
		return err
	}

	// Process mutates job, so the response is built first.
	resp := fiber.Map{"jobId": job.ID.String(), "status": job.Status}

	// keep the request id for logging but not the request's cancellation
	ctx := context.WithoutCancel(c.UserContext())
	go func(j *domain.RenderJob) {
		if err := h.processor.Process(ctx, j); err != nil {
			slog.WarnContext(ctx, "job failed", "job_id", j.ID.String(), "error", err)
		}
	}(job)

	return c.Status(fiber.StatusAccepted).JSON(resp)
}

func (h *Handler) GetJob(c *fiber.Ctx) error {
	job, err := h.loadJob(c)
	if err != nil {
		return err
	}
	return c.JSON(job)
}

func (h *Handler) GetJobPDF(c *fiber.Ctx) error {
	job, err := h.loadJob(c)
	if err != nil {
		return err
	}
	if job.Status != domain.StatusCompleted || job.PDFPath == "" {
		return apierrors.ErrConflict("job is " + job.Status)
	}
	pdf, err := os.ReadFile(job.PDFPath)
	if err != nil {
		return err
	}
	name, _ := job.Metadata["download_name"].(string)
	if name == "" {
		name = "Resume.pdf"
	}
	return sendPDF(c, name, pdf)
}

func (h *Handler) loadJob(c *fiber.Ctx) (*domain.RenderJob, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, apierrors.ErrBadRequest("invalid job id")
	}
	return h.processor.Job(c.UserContext(), id)
}

// decodeDocument reads a {data, settings} envelope, or bare resume data,
// as JSON or YAML depending on the content type.
func decodeDocument(c *fiber.Ctx) (*model.Document, error) {
	format := model.FormatJSON
	if ct := strings.ToLower(c.Get(fiber.HeaderContentType)); strings.Contains(ct, "yaml") {
		format = model.FormatYAML
	}
	doc, err := model.Decode(c.Body(), format)
	if err != nil {
		if errors.Is(err, model.ErrInputTooLarge) {
			return nil, apierrors.ErrPayloadTooLarge(err.Error())
		}
		return nil, apierrors.ErrBadRequest(err.Error())
	}
	return doc, nil
}

func sendHTML(c *fiber.Ctx, html string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func sendPDF(c *fiber.Ctx, name string, pdf []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(pdf)
}

// renderFailure keeps client errors as they are and reports everything
// else from the PDF backend as a bad gateway.
func renderFailure(err error) error {
	var ve *model.ValidationError
	if errors.As(err, &ve) || errors.Is(err, templates.ErrUnknownTemplate) || errors.Is(err, context.Canceled) {
		return err
	}
	var te *templates.TemplateError
	var re *templates.RenderError
	if errors.As(err, &te) || errors.As(err, &re) {
		return err
	}
	return apierrors.ErrRenderFailed(err.Error())
}
