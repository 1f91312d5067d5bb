package templates

import (
	"fmt"
	"html/template"
	"strings"

	"resume-builder/internal/format"
	"resume-builder/internal/model"
)

// View is everything a layout needs. It is computed once per render so the
// layouts stay free of logic beyond conditionals and ranges.
type View struct {
	Template     Template
	Name         string
	Title        string
	Initials     string
	Monogram     bool
	Photo        template.URL
	Contacts     []Contact
	ContactTitle string
	Main         []SectionView
	Aside        []SectionView
	CSS          template.CSS
	BodyClass    string
}

// Contact is one item of the header contact line.
type Contact struct {
	Kind  string
	Label string
	Href  template.URL
}

// SectionView is one visible section with its heading already resolved.
type SectionView struct {
	Key        model.Section
	ID         string
	Title      string
	Summary    string
	Entries    []Entry
	Skills     []SkillView
	Languages  []LanguageView
	SkillStyle string
}

// Entry is a dated item: a job, a degree, a project, a certificate or a
// custom item. Description is rich text and is rendered by the layout.
type Entry struct {
	Title       string
	Subtitle    string
	Location    string
	Dates       string
	Meta        string
	Link        template.URL
	LinkLabel   string
	Tags        []string
	Description string
}

type SkillView struct {
	Name     string
	Label    string
	Category string
	Gauge    int
	Dots     []bool
}

type LanguageView struct {
	Name  string
	Label string
	Dots  []bool
}

const (
	skillDotCount    = 4
	languageDotCount = 5
)

// BuildView maps data and settings onto tpl. A section is included when it
// has content and is not hidden; order follows settings.SectionOrder with
// the remaining sections appended in default order.
func BuildView(data *model.ResumeData, settings model.ResumeSettings, tpl Template) (*View, error) {
	if data == nil {
		return nil, &RenderError{Message: "resume data is nil"}
	}
	layout := settings.DateFormat
	if layout == "" {
		layout = format.DefaultDateLayout
	}
	if _, err := format.ParseDateLayout(layout); err != nil {
		return nil, &RenderError{Message: "date format", Cause: err}
	}

	labels := labelsFor(settings.Labels)
	b := viewBuilder{data: data, tpl: tpl, layout: layout, labels: labels}

	pi := data.PersonalInfo
	v := &View{
		Template:     tpl,
		Name:         strings.TrimSpace(pi.FullName),
		Title:        strings.TrimSpace(pi.Title),
		Initials:     format.Initials(pi.FullName),
		Monogram:     tpl.Style.Decoration == "monogram" || tpl.Style.Decoration == "seal",
		Contacts:     contacts(pi),
		ContactTitle: labels["contact"],
		CSS:          stylesheet(tpl, settings),
		BodyClass:    bodyClass(tpl),
	}
	if tpl.Photo && settings.ShowPhoto {
		v.Photo = photoURL(pi.Photo)
	}

	for _, sec := range settings.OrderedSections() {
		if settings.Hidden(sec) || !data.HasContent(sec) {
			continue
		}
		for _, sv := range b.section(sec) {
			if tpl.inAside(sec) {
				v.Aside = append(v.Aside, sv)
			} else {
				v.Main = append(v.Main, sv)
			}
		}
	}
	return v, nil
}

type viewBuilder struct {
	data   *model.ResumeData
	tpl    Template
	layout string
	labels map[string]string
}

func (b viewBuilder) dates(start, end string, current bool) string {
	return format.DateRangeWith(start, end, current, b.layout, b.labels["present"])
}

// section expands one section key. Custom sections expand to one view each.
func (b viewBuilder) section(sec model.Section) []SectionView {
	sv := SectionView{Key: sec, ID: "section-" + string(sec), Title: b.labels[string(sec)], SkillStyle: b.tpl.Style.Skills}
	d := b.data
	switch sec {
	case model.SectionSummary:
		sv.Summary = d.PersonalInfo.Summary
	case model.SectionExperience:
		for _, e := range d.Experience {
			if e.IsBlank() {
				continue
			}
			sv.Entries = append(sv.Entries, Entry{
				Title:       strings.TrimSpace(e.Position),
				Subtitle:    strings.TrimSpace(e.Company),
				Location:    strings.TrimSpace(e.Location),
				Dates:       b.dates(e.StartDate, e.EndDate, e.Current),
				Description: e.Description,
			})
		}
	case model.SectionEducation:
		for _, e := range d.Education {
			if e.IsBlank() {
				continue
			}
			entry := Entry{
				Title:       degree(e.Degree, e.Field),
				Subtitle:    strings.TrimSpace(e.Institution),
				Location:    strings.TrimSpace(e.Location),
				Dates:       b.dates(e.StartDate, e.EndDate, e.Current),
				Description: e.Description,
			}
			if gpa := strings.TrimSpace(e.GPA); gpa != "" {
				entry.Meta = "GPA: " + gpa
			}
			sv.Entries = append(sv.Entries, entry)
		}
	case model.SectionSkills:
		for _, s := range d.Skills {
			if s.IsBlank() {
				continue
			}
			level := string(s.Level)
			sv.Skills = append(sv.Skills, SkillView{
				Name:     strings.TrimSpace(s.Name),
				Label:    format.SkillLabel(level),
				Category: strings.TrimSpace(s.Category),
				Gauge:    format.SkillGauge(level),
				Dots:     dots(format.SkillDots(level), skillDotCount),
			})
		}
	case model.SectionProjects:
		for _, p := range d.Projects {
			if p.IsBlank() {
				continue
			}
			entry := Entry{
				Title:       strings.TrimSpace(p.Name),
				Dates:       b.dates(p.StartDate, p.EndDate, false),
				Tags:        nonBlank(p.Technologies),
				Description: p.Description,
			}
			entry.Link, entry.LinkLabel = link(p.Link)
			sv.Entries = append(sv.Entries, entry)
		}
	case model.SectionCertifications:
		for _, c := range d.Certifications {
			if c.IsBlank() {
				continue
			}
			entry := Entry{
				Title:    strings.TrimSpace(c.Name),
				Subtitle: strings.TrimSpace(c.Issuer),
				Dates:    format.Date(c.Date, b.layout),
			}
			if id := strings.TrimSpace(c.CredentialID); id != "" {
				entry.Meta = "ID: " + id
			}
			entry.Link, entry.LinkLabel = link(c.Link)
			sv.Entries = append(sv.Entries, entry)
		}
	case model.SectionLanguages:
		showDots := b.tpl.Style.Skills == "dots" || b.tpl.Style.Skills == "gauge"
		for _, l := range d.Languages {
			if l.IsBlank() {
				continue
			}
			lv := LanguageView{
				Name:  strings.TrimSpace(l.Name),
				Label: format.Proficiency(string(l.Proficiency)),
			}
			if showDots {
				lv.Dots = dots(format.ProficiencyScore(string(l.Proficiency)), languageDotCount)
			}
			sv.Languages = append(sv.Languages, lv)
		}
	case model.SectionCustom:
		return b.custom()
	}
	return []SectionView{sv}
}

func (b viewBuilder) custom() []SectionView {
	var out []SectionView
	for i, cs := range b.data.CustomSections {
		if cs.IsBlank() {
			continue
		}
		sv := SectionView{
			Key:        model.SectionCustom,
			ID:         fmt.Sprintf("section-custom-%d", i),
			Title:      strings.TrimSpace(cs.Title),
			SkillStyle: b.tpl.Style.Skills,
		}
		for _, it := range cs.Items {
			if it.IsBlank() {
				continue
			}
			sv.Entries = append(sv.Entries, Entry{
				Title:       strings.TrimSpace(it.Title),
				Subtitle:    strings.TrimSpace(it.Subtitle),
				Dates:       format.Date(it.Date, b.layout),
				Description: it.Description,
			})
		}
		out = append(out, sv)
	}
	return out
}

func contacts(pi model.PersonalInfo) []Contact {
	var out []Contact
	add := func(kind, label, href string) {
		label = strings.TrimSpace(label)
		if label == "" {
			return
		}
		out = append(out, Contact{Kind: kind, Label: label, Href: safeURL(href)})
	}
	add("email", pi.Email, format.MailHref(pi.Email))
	add("phone", pi.Phone, format.PhoneHref(pi.Phone))
	add("location", pi.Location, "")
	add("website", format.LinkLabel(pi.Website), format.Href(pi.Website))
	add("linkedin", format.LinkLabel(pi.LinkedIn), format.Href(pi.LinkedIn))
	add("github", format.LinkLabel(pi.GitHub), format.Href(pi.GitHub))
	return out
}

func link(raw string) (template.URL, string) {
	href := safeURL(format.Href(raw))
	if href == "" {
		return "", ""
	}
	return href, format.LinkLabel(raw)
}

// safeURL keeps only link schemes a printed resume can use.
func safeURL(href string) template.URL {
	lower := strings.ToLower(href)
	for _, scheme := range []string{"https://", "http://", "mailto:", "tel:"} {
		if strings.HasPrefix(lower, scheme) {
			return template.URL(href)
		}
	}
	return ""
}

// photoURL accepts http(s) URLs and inline raster images.
func photoURL(raw string) template.URL {
	s := strings.TrimSpace(raw)
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "data:image/") && !strings.HasPrefix(lower, "data:image/svg"):
		return template.URL(s)
	case strings.HasPrefix(lower, "https://"), strings.HasPrefix(lower, "http://"):
		return template.URL(s)
	}
	return ""
}

func degree(deg, field string) string {
	deg, field = strings.TrimSpace(deg), strings.TrimSpace(field)
	switch {
	case deg == "":
		return field
	case field == "":
		return deg
	}
	return deg + " in " + field
}

func dots(filled, total int) []bool {
	if filled <= 0 {
		return nil
	}
	out := make([]bool, total)
	for i := 0; i < filled && i < total; i++ {
		out[i] = true
	}
	return out
}

func nonBlank(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
