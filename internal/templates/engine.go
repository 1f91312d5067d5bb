package templates

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"strings"

	"resume-builder/internal/model"
	"resume-builder/internal/richtext"
)

//go:embed layouts/*.html
var layoutFS embed.FS

var funcs = template.FuncMap{
	"rich": richtext.HTML,
}

// Engine renders resumes with the embedded layouts. It is safe for
// concurrent use; the layouts are parsed once in NewEngine.
type Engine struct {
	tmpl      *template.Template
	defaultID string
}

// NewEngine parses the layouts. defaultID is used when settings leave the
// template empty; an empty defaultID means DefaultID.
func NewEngine(defaultID string) (*Engine, error) {
	if defaultID == "" {
		defaultID = DefaultID
	}
	if _, err := Get(defaultID); err != nil {
		return nil, err
	}
	tmpl, err := template.New("resume").Funcs(funcs).ParseFS(layoutFS, "layouts/*.html")
	if err != nil {
		return nil, &TemplateError{Template: "layouts", Message: "failed to parse", Cause: err}
	}
	for _, l := range []Layout{LayoutSingle, LayoutSidebarLeft, LayoutSidebarRight, LayoutSplit, LayoutBanner} {
		if tmpl.Lookup(layoutName(l)) == nil {
			return nil, &TemplateError{Template: layoutName(l), Message: "layout is not defined"}
		}
	}
	return &Engine{tmpl: tmpl, defaultID: defaultID}, nil
}

// DefaultTemplate returns the id used for empty settings.
func (e *Engine) DefaultTemplate() string {
	return e.defaultID
}

// Resolve returns the template named by id, or the default one for "".
func (e *Engine) Resolve(id string) (Template, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = e.defaultID
	}
	return Get(id)
}

// Render writes the complete HTML document for data to w.
func (e *Engine) Render(w io.Writer, data *model.ResumeData, settings model.ResumeSettings) error {
	tpl, err := e.Resolve(settings.Template)
	if err != nil {
		return err
	}
	view, err := BuildView(data, settings, tpl)
	if err != nil {
		return err
	}
	// Buffer so a failing layout never leaves half a document in w.
	var buf bytes.Buffer
	if err := e.tmpl.ExecuteTemplate(&buf, layoutName(tpl.Layout), view); err != nil {
		return &TemplateError{Template: tpl.ID, Message: "failed to execute", Cause: err}
	}
	if _, err := buf.WriteTo(w); err != nil {
		return &RenderError{Message: "failed to write document", Cause: err}
	}
	return nil
}

// RenderString is Render into a string.
func (e *Engine) RenderString(data *model.ResumeData, settings model.ResumeSettings) (string, error) {
	var sb strings.Builder
	if err := e.Render(&sb, data, settings); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func layoutName(l Layout) string {
	return "layout-" + string(l)
}
