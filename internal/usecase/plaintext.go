package usecase

import (
	"strings"

	"resume-builder/internal/model"
	"resume-builder/internal/richtext"
	"resume-builder/internal/templates"
)

// PlainText renders the document as ATS friendly text: one block per
// visible section in display order, rich text flattened.
func (p *Processor) PlainText(data *model.ResumeData, settings model.ResumeSettings) (string, error) {
	tpl, err := p.engine.Resolve(settings.Template)
	if err != nil {
		return "", err
	}
	// one column keeps the section order intact
	tpl.Layout = templates.LayoutSingle
	view, err := templates.BuildView(data, settings, tpl)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(view.Name + "\n")
	if view.Title != "" {
		b.WriteString(view.Title + "\n")
	}
	if len(view.Contacts) > 0 {
		labels := make([]string, 0, len(view.Contacts))
		for _, c := range view.Contacts {
			labels = append(labels, c.Label)
		}
		b.WriteString(strings.Join(labels, " | ") + "\n")
	}

	for _, sec := range view.Main {
		b.WriteString("\n" + strings.ToUpper(sec.Title) + "\n")
		if sec.Summary != "" {
			b.WriteString(richtext.PlainText(sec.Summary) + "\n")
		}
		for _, e := range sec.Entries {
			writeEntry(&b, e)
		}
		for _, s := range sec.Skills {
			line := "• " + s.Name
			if s.Label != "" {
				line += " (" + s.Label + ")"
			}
			b.WriteString(line + "\n")
		}
		for _, l := range sec.Languages {
			line := "• " + l.Name
			if l.Label != "" {
				line += " - " + l.Label
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String(), nil
}

func writeEntry(b *strings.Builder, e templates.Entry) {
	head := joinNonEmpty(" - ", e.Title, e.Subtitle)
	if e.Dates != "" {
		head = joinNonEmpty(" | ", head, e.Dates)
	}
	if head != "" {
		b.WriteString(head + "\n")
	}
	for _, extra := range []string{e.Location, e.Meta, e.LinkLabel} {
		if extra != "" {
			b.WriteString(extra + "\n")
		}
	}
	if len(e.Tags) > 0 {
		b.WriteString(strings.Join(e.Tags, ", ") + "\n")
	}
	if text := richtext.PlainText(e.Description); text != "" {
		b.WriteString(text + "\n")
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
