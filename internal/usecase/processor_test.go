package usecase

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/templates"
)

// fakeRenderer returns queued results in order and a valid PDF once the
// queue is empty.
type fakeRenderer struct {
	mu      sync.Mutex
	results []fakeResult
	calls   atomic.Int32
	lastLen int
}

type fakeResult struct {
	out []byte
	err error
}

func (f *fakeRenderer) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	f.calls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastLen = len(html)
	if len(f.results) == 0 {
		return []byte("%PDF-1.7 fake"), nil
	}
	r := f.results[0]
	f.results = f.results[1:]
	return r.out, r.err
}

func newProcessor(t *testing.T, r Renderer, repo JobsRepo) *Processor {
	t.Helper()
	engine, err := templates.NewEngine("")
	require.NoError(t, err)
	return NewProcessor(r, repo, engine, Options{
		OutputDir: t.TempDir(),
		Attempts:  3,
		Backoff:   time.Millisecond,
	})
}

func sampleData() *model.ResumeData {
	return &model.ResumeData{
		PersonalInfo: model.PersonalInfo{FullName: "Grace Hopper", Title: "Rear Admiral", Email: "grace@example.com"},
		Experience: []model.Experience{{
			Company:     "US Navy",
			Position:    "Computer Scientist",
			StartDate:   "1943",
			EndDate:     "1986",
			Description: "<ul><li>Built the <strong>first compiler</strong></li></ul>",
		}},
		Skills: []model.Skill{{Name: "COBOL", Level: model.SkillExpert}},
	}
}

func TestPreview_RendersHTML(t *testing.T) {
	p := newProcessor(t, &fakeRenderer{}, nil)
	html, err := p.Preview(context.Background(), sampleData(), model.ResumeSettings{Template: "swiss"})
	require.NoError(t, err)
	assert.Contains(t, html, "Grace Hopper")
	assert.Contains(t, html, "tpl-swiss")
}

func TestPreview_ValidationError(t *testing.T) {
	p := newProcessor(t, &fakeRenderer{}, nil)
	data := sampleData()
	data.PersonalInfo.FullName = ""
	_, err := p.Preview(context.Background(), data, model.ResumeSettings{PrimaryColor: "blue"})

	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.GreaterOrEqual(t, len(ve.Errors), 2)
}

func TestPreview_UnknownTemplate(t *testing.T) {
	p := newProcessor(t, &fakeRenderer{}, nil)
	_, err := p.Preview(context.Background(), sampleData(), model.ResumeSettings{Template: "nope"})
	assert.ErrorIs(t, err, templates.ErrUnknownTemplate)
}

func TestRenderPDF_Success(t *testing.T) {
	r := &fakeRenderer{}
	p := newProcessor(t, r, nil)
	b, err := p.RenderPDF(context.Background(), sampleData(), model.ResumeSettings{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "%PDF"))
	assert.Equal(t, int32(1), r.calls.Load())
	assert.Positive(t, r.lastLen)
}

func TestRenderPDF_RetriesThenSucceeds(t *testing.T) {
	r := &fakeRenderer{results: []fakeResult{
		{err: errors.New("chrome crashed")},
		{out: []byte("<html>not a pdf")},
	}}
	p := newProcessor(t, r, nil)
	b, err := p.RenderPDF(context.Background(), sampleData(), model.ResumeSettings{})
	require.NoError(t, err)
	assert.NotEmpty(t, b)
	assert.Equal(t, int32(3), r.calls.Load())
}

func TestRenderPDF_GivesUpAfterAttempts(t *testing.T) {
	r := &fakeRenderer{results: []fakeResult{
		{out: []byte("nope")},
		{out: []byte("nope")},
		{out: []byte("nope")},
	}}
	p := newProcessor(t, r, nil)
	_, err := p.RenderPDF(context.Background(), sampleData(), model.ResumeSettings{})
	assert.ErrorIs(t, err, ErrInvalidPDF)
	assert.Equal(t, int32(3), r.calls.Load())
}

func TestRenderPDF_ContextCancelledDuringBackoff(t *testing.T) {
	r := &fakeRenderer{results: []fakeResult{{err: errors.New("boom")}}}
	engine, err := templates.NewEngine("")
	require.NoError(t, err)
	p := NewProcessor(r, nil, engine, Options{Attempts: 3, Backoff: time.Hour})

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	_, err = p.RenderPDF(ctx, sampleData(), model.ResumeSettings{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, int32(1), r.calls.Load())
}

func TestSubmitAndProcess_Completed(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryJobsRepo()
	p := newProcessor(t, &fakeRenderer{}, repo)

	job, err := p.Submit(ctx, &model.Document{Data: *sampleData()})
	require.NoError(t, err)
	assert.Equal(t, templates.DefaultID, job.Template)

	stored, err := p.Job(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)

	require.NoError(t, p.Process(ctx, job))

	stored, err = p.Job(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, stored.Status)
	assert.Equal(t, "Grace_Hopper_Resume.pdf", stored.Metadata["download_name"])

	pdf, err := os.ReadFile(stored.PDFPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
	html, err := os.ReadFile(stored.HTMLPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Grace Hopper")
	assert.Contains(t, stored.PDFPath, job.ID.String())
}

func TestProcess_FailureKeepsHTML(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryJobsRepo()
	r := &fakeRenderer{results: []fakeResult{
		{err: errors.New("a")}, {err: errors.New("b")}, {err: errors.New("c")},
	}}
	p := newProcessor(t, r, repo)

	job, err := p.Submit(ctx, &model.Document{Data: *sampleData()})
	require.NoError(t, err)
	assert.Error(t, p.Process(ctx, job))

	stored, err := p.Job(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, stored.Status)
	assert.Contains(t, stored.Metadata["error"], "c")
	assert.Empty(t, stored.PDFPath)
	_, err = os.Stat(stored.HTMLPath)
	assert.NoError(t, err)
}

func TestSubmit_Invalid(t *testing.T) {
	p := newProcessor(t, &fakeRenderer{}, repository.NewMemoryJobsRepo())
	_, err := p.Submit(context.Background(), &model.Document{})
	var ve *model.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestJob_NoRepo(t *testing.T) {
	p := newProcessor(t, &fakeRenderer{}, nil)
	_, err := p.Job(context.Background(), domain.NewRenderJob(&model.Document{}).ID)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
}

func TestGallery_AllTemplates(t *testing.T) {
	r := &fakeRenderer{}
	p := newProcessor(t, r, nil)
	out, err := p.Gallery(context.Background(), sampleData(), model.ResumeSettings{}, nil, 4)
	require.NoError(t, err)
	assert.Len(t, out, len(templates.IDs()))
	assert.Equal(t, int32(len(templates.IDs())), r.calls.Load())
}

func TestGallery_Subset(t *testing.T) {
	p := newProcessor(t, &fakeRenderer{}, nil)
	out, err := p.Gallery(context.Background(), sampleData(), model.ResumeSettings{}, []string{"tech", "wyatt"}, 0)
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Contains(t, out, "tech")
	assert.Contains(t, out, "wyatt")
}

func TestGallery_UnknownTemplate(t *testing.T) {
	p := newProcessor(t, &fakeRenderer{}, nil)
	_, err := p.Gallery(context.Background(), sampleData(), model.ResumeSettings{}, []string{"tech", "bogus"}, 2)
	assert.ErrorIs(t, err, templates.ErrUnknownTemplate)
}

func TestDownloadName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "Ada Lovelace", want: "Ada_Lovelace_Resume.pdf"},
		{in: "  José  Núñez ", want: "Jose_Nunez_Resume.pdf"},
		{in: "Mary-Jane O'Neil", want: "Mary_Jane_O_Neil_Resume.pdf"},
		{in: "", want: "Resume.pdf"},
		{in: "王小明", want: "Resume.pdf"},
	}
	for _, tc := range cases {
		data := &model.ResumeData{PersonalInfo: model.PersonalInfo{FullName: tc.in}}
		assert.Equal(t, tc.want, DownloadName(data), tc.in)
	}
	assert.Equal(t, "Resume.pdf", DownloadName(nil))
}

func TestPlainText(t *testing.T) {
	p := newProcessor(t, &fakeRenderer{}, nil)
	text, err := p.PlainText(sampleData(), model.ResumeSettings{Template: "modern"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(text, "Grace Hopper\nRear Admiral\ngrace@example.com\n"))
	assert.Contains(t, text, "\nEXPERIENCE\nComputer Scientist - US Navy | 1943 – 1986\n• Built the first compiler\n")
	assert.Contains(t, text, "\nSKILLS\n• COBOL (Expert)\n")
	assert.Less(t, strings.Index(text, "EXPERIENCE"), strings.Index(text, "SKILLS"))
}
