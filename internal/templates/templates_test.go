package templates

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/model"
)

func sampleData() *model.ResumeData {
	return &model.ResumeData{
		PersonalInfo: model.PersonalInfo{
			FullName: "Ada Lovelace",
			Title:    "Analytical Engineer",
			Email:    "ada@example.com",
			Phone:    "+44 20 7946 0000",
			Location: "London",
			Website:  "https://www.ada.dev/",
			GitHub:   "github.com/ada",
			Summary:  "<p>Writes <strong>programs</strong> for engines.</p>",
		},
		Experience: []model.Experience{
			{
				Company:     "Analytical Engine Co",
				Position:    "Programmer",
				Location:    "London",
				StartDate:   "1842-01",
				Current:     true,
				Description: "<ul><li>Wrote the first algorithm</li><li>Annotated <em>Sketch</em></li></ul>",
			},
			{},
		},
		Education: []model.Education{
			{Institution: "Home Schooling", Degree: "BSc", Field: "Mathematics", StartDate: "1830", EndDate: "1835", GPA: "4.0"},
		},
		Skills: []model.Skill{
			{Name: "Mathematics", Level: model.SkillExpert},
			{Name: "Poetry"},
		},
		Projects: []model.Project{
			{Name: "Note G", Technologies: []string{"Bernoulli", " "}, Link: "example.org/note-g"},
		},
		Languages: []model.Language{
			{Name: "English", Proficiency: model.ProficiencyNative},
			{Name: "French", Proficiency: "conversational"},
		},
		CustomSections: []model.CustomSection{
			{Title: "Publications", Items: []model.CustomItem{{Title: "Sketch of the Analytical Engine", Date: "1843"}}},
			{Title: "Empty", Items: []model.CustomItem{{}}},
		},
	}
}

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine("")
	require.NoError(t, err)
	return e
}

func render(t *testing.T, e *Engine, data *model.ResumeData, settings model.ResumeSettings) *goquery.Document {
	t.Helper()
	html, err := e.RenderString(data, settings)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestCatalog_HasThirtyUniqueTemplates(t *testing.T) {
	assert.Len(t, List(), 30)
	assert.Len(t, IDs(), 30)
	_, err := Get(DefaultID)
	assert.NoError(t, err)
}

func TestCatalog_EveryTemplateIsComplete(t *testing.T) {
	for _, tpl := range List() {
		assert.NotEmpty(t, tpl.Name, tpl.ID)
		assert.NotEmpty(t, tpl.Category, tpl.ID)
		assert.True(t, isHexColor(tpl.Style.Accent), tpl.ID)
		assert.NotEmpty(t, tpl.Style.BodyFont, tpl.ID)
		assert.Contains(t, []string{"gauge", "tags", "dots", "list"}, tpl.Style.Skills, tpl.ID)
		if tpl.Layout == LayoutSidebarLeft || tpl.Layout == LayoutSidebarRight || tpl.Layout == LayoutSplit {
			assert.NotEmpty(t, tpl.Aside, tpl.ID)
		}
	}
}

func TestGet_UnknownTemplate(t *testing.T) {
	_, err := Get("nope")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestByCategory(t *testing.T) {
	tech := ByCategory("technical")
	require.NotEmpty(t, tech)
	for _, tpl := range tech {
		assert.Equal(t, "technical", tpl.Category)
	}
	assert.Empty(t, ByCategory("unknown"))
	assert.Contains(t, Categories(), "minimal")
}

func TestNewEngine_UnknownDefault(t *testing.T) {
	_, err := NewEngine("missing")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestRender_EveryTemplate(t *testing.T) {
	e := newEngine(t)
	for _, id := range IDs() {
		doc := render(t, e, sampleData(), model.ResumeSettings{Template: id})
		assert.Equal(t, "Ada Lovelace", doc.Find("h1.name").First().Text(), id)
		assert.True(t, doc.Find("body").HasClass("tpl-"+id), id)
		assert.Equal(t, 1, doc.Find("#section-experience").Length(), id)
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	e := newEngine(t)
	_, err := e.RenderString(sampleData(), model.ResumeSettings{Template: "nope"})
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestRender_EmptySectionsAreSkipped(t *testing.T) {
	e := newEngine(t)
	data := &model.ResumeData{PersonalInfo: model.PersonalInfo{FullName: "Solo"}}
	doc := render(t, e, data, model.ResumeSettings{})

	assert.Equal(t, 0, doc.Find("section.section").Length())
	assert.Equal(t, 0, doc.Find("ul.contacts").Length())
}

func TestRender_HiddenSectionsAndOrder(t *testing.T) {
	e := newEngine(t)
	doc := render(t, e, sampleData(), model.ResumeSettings{
		Template:       "simple",
		SectionOrder:   []model.Section{model.SectionSkills, "bogus", model.SectionExperience},
		HiddenSections: []model.Section{model.SectionSummary},
	})

	var ids []string
	doc.Find("section.section").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		ids = append(ids, id)
	})
	assert.Equal(t, []string{
		"section-skills",
		"section-experience",
		"section-education",
		"section-projects",
		"section-languages",
		"section-custom-0",
	}, ids)
}

func TestRender_LabelsOverride(t *testing.T) {
	e := newEngine(t)
	doc := render(t, e, sampleData(), model.ResumeSettings{
		Labels: map[string]string{"experience": "Berufserfahrung", "present": "Heute"},
	})
	assert.Equal(t, "Berufserfahrung", doc.Find("#section-experience .section-title").Text())
	assert.Equal(t, "Jan 1842 – Heute", doc.Find("#section-experience .entry-dates").First().Text())
}

func TestRender_RichTextDescription(t *testing.T) {
	e := newEngine(t)
	doc := render(t, e, sampleData(), model.ResumeSettings{})

	items := doc.Find("#section-experience .entry-body ul.rt-list li")
	require.Equal(t, 2, items.Length())
	assert.Equal(t, "Sketch", items.Eq(1).Find("em").Text())
	assert.Equal(t, "programs", doc.Find(".summary p.rt-text strong").Text())
}

func TestRender_SkillGauge(t *testing.T) {
	e := newEngine(t)
	doc := render(t, e, sampleData(), model.ResumeSettings{Template: "tech"})

	skills := doc.Find("aside .skill")
	require.Equal(t, 2, skills.Length())
	assert.Equal(t, 1, skills.Eq(0).Find(".gauge-fill.w-100").Length())
	assert.Equal(t, 0, skills.Eq(1).Find(".gauge").Length())
}

func TestRender_SkillDotsAndLanguages(t *testing.T) {
	e := newEngine(t)
	doc := render(t, e, sampleData(), model.ResumeSettings{Template: "amelia"})

	assert.Equal(t, 4, doc.Find(".skill").First().Find(".dot.on").Length())
	langs := doc.Find(".language")
	require.Equal(t, 2, langs.Length())
	assert.Equal(t, 5, langs.Eq(0).Find(".dot.on").Length())
	assert.Equal(t, 2, langs.Eq(1).Find(".dot.on").Length())
}

func TestRender_ProficiencyLabels(t *testing.T) {
	e := newEngine(t)
	doc := render(t, e, sampleData(), model.ResumeSettings{Template: "professional"})

	levels := doc.Find(".language-level")
	require.Equal(t, 2, levels.Length())
	assert.Equal(t, "Native", levels.Eq(0).Text())
	assert.Equal(t, "Conversational", levels.Eq(1).Text())
}

func TestRender_Contacts(t *testing.T) {
	e := newEngine(t)
	doc := render(t, e, sampleData(), model.ResumeSettings{})

	href, _ := doc.Find(".contact-email a").Attr("href")
	assert.Equal(t, "mailto:ada@example.com", href)
	href, _ = doc.Find(".contact-phone a").Attr("href")
	assert.Equal(t, "tel:+442079460000", href)
	assert.Equal(t, "ada.dev", doc.Find(".contact-website a").Text())
	assert.Equal(t, "github.com/ada", doc.Find(".contact-github a").Text())
	assert.Equal(t, 0, doc.Find(".contact-location a").Length())
}

func TestRender_UnsafeLinksDropped(t *testing.T) {
	e := newEngine(t)
	data := sampleData()
	data.Projects[0].Link = "javascript://%0aalert(1)"
	data.PersonalInfo.Photo = "javascript:alert(1)"
	doc := render(t, e, data, model.ResumeSettings{Template: "modern", ShowPhoto: true})

	assert.Equal(t, 0, doc.Find(".entry-link").Length())
	assert.Equal(t, 0, doc.Find("img.photo").Length())
}

func TestRender_PhotoOnlyWhenEnabled(t *testing.T) {
	e := newEngine(t)
	data := sampleData()
	data.PersonalInfo.Photo = "https://example.com/ada.jpg"

	doc := render(t, e, data, model.ResumeSettings{Template: "modern"})
	assert.Equal(t, 0, doc.Find("img.photo").Length())

	doc = render(t, e, data, model.ResumeSettings{Template: "modern", ShowPhoto: true})
	src, _ := doc.Find("img.photo").Attr("src")
	assert.Equal(t, "https://example.com/ada.jpg", src)

	doc = render(t, e, data, model.ResumeSettings{Template: "simple", ShowPhoto: true})
	assert.Equal(t, 0, doc.Find("img.photo").Length())
}

func TestRender_EscapesText(t *testing.T) {
	e := newEngine(t)
	data := sampleData()
	data.PersonalInfo.FullName = "<script>alert(1)</script>"
	html, err := e.RenderString(data, model.ResumeSettings{})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
}

func TestRender_CustomSections(t *testing.T) {
	e := newEngine(t)
	doc := render(t, e, sampleData(), model.ResumeSettings{})

	assert.Equal(t, "Publications", doc.Find("#section-custom-0 .section-title").Text())
	assert.Equal(t, "1843", doc.Find("#section-custom-0 .entry-dates").Text())
	assert.Equal(t, 0, doc.Find("#section-custom-1").Length())
}

func TestBuildView_AsideSplit(t *testing.T) {
	tpl, err := Get("modern")
	require.NoError(t, err)
	v, err := BuildView(sampleData(), model.ResumeSettings{}, tpl)
	require.NoError(t, err)

	keys := func(svs []SectionView) []model.Section {
		var out []model.Section
		for _, sv := range svs {
			out = append(out, sv.Key)
		}
		return out
	}
	assert.Equal(t, []model.Section{model.SectionSkills, model.SectionLanguages}, keys(v.Aside))
	assert.Equal(t, []model.Section{
		model.SectionSummary,
		model.SectionExperience,
		model.SectionEducation,
		model.SectionProjects,
		model.SectionCustom,
	}, keys(v.Main))
}

func TestBuildView_Entries(t *testing.T) {
	tpl, err := Get("simple")
	require.NoError(t, err)
	v, err := BuildView(sampleData(), model.ResumeSettings{DateFormat: "MM/YYYY"}, tpl)
	require.NoError(t, err)

	var edu, proj SectionView
	for _, sv := range v.Main {
		switch sv.Key {
		case model.SectionEducation:
			edu = sv
		case model.SectionProjects:
			proj = sv
		}
	}
	require.Len(t, edu.Entries, 1)
	assert.Equal(t, "BSc in Mathematics", edu.Entries[0].Title)
	assert.Equal(t, "1830 – 1835", edu.Entries[0].Dates)
	assert.Equal(t, "GPA: 4.0", edu.Entries[0].Meta)

	require.Len(t, proj.Entries, 1)
	assert.Equal(t, []string{"Bernoulli"}, proj.Entries[0].Tags)
	assert.Equal(t, "https://example.org/note-g", string(proj.Entries[0].Link))
	assert.Equal(t, "example.org/note-g", proj.Entries[0].LinkLabel)
}

func TestBuildView_InvalidDateFormat(t *testing.T) {
	tpl, _ := Get(DefaultID)
	_, err := BuildView(sampleData(), model.ResumeSettings{DateFormat: "[MMM"}, tpl)
	var re *RenderError
	assert.ErrorAs(t, err, &re)
}

func TestBuildView_NilData(t *testing.T) {
	tpl, _ := Get(DefaultID)
	_, err := BuildView(nil, model.ResumeSettings{}, tpl)
	assert.Error(t, err)
}

func TestStylesheet_Overrides(t *testing.T) {
	tpl, _ := Get("professional")
	css := string(stylesheet(tpl, model.ResumeSettings{
		PrimaryColor: "#ff0000",
		FontFamily:   "Lato; } body { color: red",
		FontSize:     model.FontLarge,
		PaperSize:    model.PaperLetter,
	}))

	assert.Contains(t, css, "--accent: #ff0000;")
	assert.Contains(t, css, "--font-size: 11.5pt;")
	assert.Contains(t, css, "size: Letter;")
	assert.Contains(t, css, "--body-font: Lato  body  color: red;")
}

func TestStylesheet_Defaults(t *testing.T) {
	tpl, _ := Get("professional")
	css := string(stylesheet(tpl, model.ResumeSettings{PrimaryColor: "red"}))

	assert.Contains(t, css, "--accent: "+tpl.Style.Accent+";")
	assert.Contains(t, css, "--font-size: 10.5pt;")
	assert.Contains(t, css, "size: A4;")
}

func TestStylesheet_AcceptsEveryValidatedHexColor(t *testing.T) {
	tpl, _ := Get("professional")
	for _, color := range []string{"#abc", "#abcd", "#11aa22", "#11223344"} {
		s := model.ResumeSettings{PrimaryColor: color}
		require.NoError(t, model.ValidateSettings(&s), color)
		assert.Contains(t, string(stylesheet(tpl, s)), "--accent: "+color+";", color)
	}
	assert.False(t, isHexColor("#12345"))
	assert.False(t, isHexColor("#gggggg"))
}

func TestBodyClass(t *testing.T) {
	tpl, _ := Get("ribbon")
	cls := bodyClass(tpl)
	assert.Contains(t, cls, "tpl-ribbon")
	assert.Contains(t, cls, "layout-single")
	assert.Contains(t, cls, "deco-ribbon")
}

func TestSampleData_RendersValid(t *testing.T) {
	doc := model.Document{Data: *SampleData()}
	require.NoError(t, doc.Validate())

	e := newEngine(t)
	page := render(t, e, SampleData(), model.ResumeSettings{Template: "infographic"})
	assert.Equal(t, "Alex Morgan", page.Find("h1.name").Text())
	assert.Equal(t, 2, page.Find("#section-experience article.entry").Length())
}
