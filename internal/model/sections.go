package model

import (
	"strings"

	"resume-builder/internal/richtext"
)

// Section identifies one block of a resume.
type Section string

const (
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
	SectionLanguages      Section = "languages"
	SectionCustom         Section = "custom"
)

// DefaultSectionOrder is used for sections a settings order leaves out.
var DefaultSectionOrder = []Section{
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
	SectionLanguages,
	SectionCustom,
}

// Valid reports whether s is a known section key.
func (s Section) Valid() bool {
	for _, known := range DefaultSectionOrder {
		if s == known {
			return true
		}
	}
	return false
}

// OrderedSections returns every section once: the known entries of the
// settings order first, then the remaining ones in default order.
func (s ResumeSettings) OrderedSections() []Section {
	seen := make(map[Section]bool, len(DefaultSectionOrder))
	out := make([]Section, 0, len(DefaultSectionOrder))
	for _, sec := range append(append([]Section{}, s.SectionOrder...), DefaultSectionOrder...) {
		if !sec.Valid() || seen[sec] {
			continue
		}
		seen[sec] = true
		out = append(out, sec)
	}
	return out
}

// Hidden reports whether the settings hide sec.
func (s ResumeSettings) Hidden(sec Section) bool {
	for _, h := range s.HiddenSections {
		if h == sec {
			return true
		}
	}
	return false
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func (e Experience) IsBlank() bool {
	return blank(e.Company, e.Position) && richtext.IsEmpty(e.Description)
}

func (e Education) IsBlank() bool {
	return blank(e.Institution, e.Degree, e.Field) && richtext.IsEmpty(e.Description)
}

func (s Skill) IsBlank() bool { return blank(s.Name) }

func (p Project) IsBlank() bool {
	return blank(p.Name) && richtext.IsEmpty(p.Description)
}

func (c Certification) IsBlank() bool { return blank(c.Name) }

func (l Language) IsBlank() bool { return blank(l.Name) }

func (c CustomItem) IsBlank() bool {
	return blank(c.Title, c.Subtitle) && richtext.IsEmpty(c.Description)
}

func (c CustomSection) IsBlank() bool {
	for _, it := range c.Items {
		if !it.IsBlank() {
			return false
		}
	}
	return true
}

func countNonBlank[T interface{ IsBlank() bool }](items []T) int {
	n := 0
	for _, it := range items {
		if !it.IsBlank() {
			n++
		}
	}
	return n
}

// HasContent reports whether sec has anything to render. Templates skip a
// section entirely when this is false.
func (d *ResumeData) HasContent(sec Section) bool {
	switch sec {
	case SectionSummary:
		return !richtext.IsEmpty(d.PersonalInfo.Summary)
	case SectionExperience:
		return countNonBlank(d.Experience) > 0
	case SectionEducation:
		return countNonBlank(d.Education) > 0
	case SectionSkills:
		return countNonBlank(d.Skills) > 0
	case SectionProjects:
		return countNonBlank(d.Projects) > 0
	case SectionCertifications:
		return countNonBlank(d.Certifications) > 0
	case SectionLanguages:
		return countNonBlank(d.Languages) > 0
	case SectionCustom:
		return countNonBlank(d.CustomSections) > 0
	}
	return false
}
