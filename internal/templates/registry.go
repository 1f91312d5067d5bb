// Package templates holds the resume template gallery: a registry of
// declarative style tables, the view model every layout consumes, and the
// html/template engine that turns ResumeData into a print-ready document.
package templates

import (
	"fmt"
	"sort"

	"resume-builder/internal/model"
)

// Layout is the page skeleton a template arranges its sections in.
type Layout string

const (
	LayoutSingle       Layout = "single"
	LayoutSidebarLeft  Layout = "sidebar-left"
	LayoutSidebarRight Layout = "sidebar-right"
	LayoutSplit        Layout = "split"
	LayoutBanner       Layout = "banner"
)

// Style is the declarative look of a template. Every field ends up either as
// a CSS custom property or as a class on <body>.
type Style struct {
	Accent            string `json:"accent"`
	Text              string `json:"text"`
	Muted             string `json:"muted"`
	Background        string `json:"background"`
	SidebarBackground string `json:"sidebarBackground,omitempty"`
	SidebarText       string `json:"sidebarText,omitempty"`
	BodyFont          string `json:"bodyFont"`
	HeadingFont       string `json:"headingFont"`
	HeadingCase       string `json:"headingCase"` // upper | none | small-caps
	HeaderAlign       string `json:"headerAlign"` // left | center
	Divider           string `json:"divider"`     // line | thick | dotted | block | none
	Skills            string `json:"skills"`      // gauge | tags | dots | list
	Density           string `json:"density"`     // compact | normal | relaxed
	Decoration        string `json:"decoration,omitempty"`
}

// Template is one entry of the gallery.
type Template struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Layout      Layout          `json:"layout"`
	Style       Style           `json:"style"`
	Aside       []model.Section `json:"aside,omitempty"`
	Photo       bool            `json:"photo"`
}

// Summary is the listing shape of a template.
type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Layout      Layout `json:"layout"`
	Accent      string `json:"accent"`
	Photo       bool   `json:"photo"`
}

func (t Template) Summary() Summary {
	return Summary{
		ID:          t.ID,
		Name:        t.Name,
		Category:    t.Category,
		Description: t.Description,
		Layout:      t.Layout,
		Accent:      t.Style.Accent,
		Photo:       t.Photo,
	}
}

// inAside reports whether sec goes to the secondary column.
func (t Template) inAside(sec model.Section) bool {
	if t.Layout == LayoutSingle || t.Layout == LayoutBanner {
		return false
	}
	for _, s := range t.Aside {
		if s == sec {
			return true
		}
	}
	return false
}

// DefaultID is the template used when settings do not name one.
const DefaultID = "professional"

var byID = func() map[string]Template {
	m := make(map[string]Template, len(catalog))
	for _, t := range catalog {
		if _, dup := m[t.ID]; dup {
			panic(fmt.Sprintf("templates: duplicate id %q", t.ID))
		}
		m[t.ID] = t
	}
	return m
}()

// Get returns the template registered under id.
func Get(id string) (Template, error) {
	t, ok := byID[id]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	return t, nil
}

// List returns every template in gallery order.
func List() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

// IDs returns every template id in gallery order.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for _, t := range catalog {
		ids = append(ids, t.ID)
	}
	return ids
}

// ByCategory returns the templates of one category in gallery order.
func ByCategory(category string) []Template {
	var out []Template
	for _, t := range catalog {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Categories returns the distinct categories, sorted.
func Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, t := range catalog {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	sort.Strings(out)
	return out
}
