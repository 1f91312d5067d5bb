package templates

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"resume-builder/internal/model"
)

//go:embed assets/base.css
var baseCSS string

var fontSizes = map[model.FontSize]string{
	model.FontSmall:  "9.5pt",
	model.FontMedium: "10.5pt",
	model.FontLarge:  "11.5pt",
}

var densities = map[string]struct{ lineHeight, gap string }{
	"compact": {"1.3", "6pt"},
	"normal":  {"1.45", "10pt"},
	"relaxed": {"1.6", "14pt"},
}

// stylesheet returns the base stylesheet preceded by the variables of tpl
// with the settings overrides applied.
func stylesheet(tpl Template, s model.ResumeSettings) template.CSS {
	st := tpl.Style
	accent := st.Accent
	if isHexColor(s.PrimaryColor) {
		accent = s.PrimaryColor
	}
	bodyFont, headingFont := st.BodyFont, st.HeadingFont
	if f := cssFontFamily(s.FontFamily); f != "" {
		bodyFont, headingFont = f, f
	}
	size, ok := fontSizes[s.FontSize]
	if !ok {
		size = fontSizes[model.FontMedium]
	}
	paper := s.PaperSize
	if paper != model.PaperLetter {
		paper = model.PaperA4
	}
	dens, ok := densities[st.Density]
	if !ok {
		dens = densities["normal"]
	}
	sidebarBg, sidebarText := st.SidebarBackground, st.SidebarText
	if sidebarBg == "" {
		sidebarBg = st.Background
	}
	if sidebarText == "" {
		sidebarText = st.Text
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@page { size: %s; margin: 0; }\n", paper)
	b.WriteString(":root {\n")
	vars := [][2]string{
		{"accent", accent},
		{"text", st.Text},
		{"muted", st.Muted},
		{"background", st.Background},
		{"sidebar-background", sidebarBg},
		{"sidebar-text", sidebarText},
		{"body-font", bodyFont},
		{"heading-font", headingFont},
		{"font-size", size},
		{"line-height", dens.lineHeight},
		{"gap", dens.gap},
		{"page-width", pageWidth(paper)},
		{"page-height", pageHeight(paper)},
	}
	for _, kv := range vars {
		fmt.Fprintf(&b, "  --%s: %s;\n", kv[0], kv[1])
	}
	b.WriteString("}\n")
	b.WriteString(baseCSS)
	return template.CSS(b.String())
}

func pageWidth(p model.PaperSize) string {
	if p == model.PaperLetter {
		return "8.5in"
	}
	return "210mm"
}

func pageHeight(p model.PaperSize) string {
	if p == model.PaperLetter {
		return "11in"
	}
	return "297mm"
}

func bodyClass(tpl Template) string {
	st := tpl.Style
	classes := []string{
		"tpl-" + tpl.ID,
		"layout-" + string(tpl.Layout),
		"skills-" + orDefault(st.Skills, "list"),
		"divider-" + orDefault(st.Divider, "none"),
		"case-" + orDefault(st.HeadingCase, "none"),
		"align-" + orDefault(st.HeaderAlign, "left"),
	}
	if st.Decoration != "" {
		classes = append(classes, "deco-"+st.Decoration)
	}
	return strings.Join(classes, " ")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// isHexColor accepts the forms the settings validator's hexcolor tag does:
// #rgb, #rgba, #rrggbb and #rrggbbaa.
func isHexColor(s string) bool {
	switch len(s) {
	case 4, 5, 7, 9:
	default:
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

// cssFontFamily drops characters that could end the declaration.
func cssFontFamily(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '\\', '\n', '\r':
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
