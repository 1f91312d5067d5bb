package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() ResumeData {
	return ResumeData{
		PersonalInfo: PersonalInfo{FullName: "Jane Doe", Title: "Engineer", Summary: "Builds things."},
		Experience:   []Experience{{Company: "Acme", Position: "Engineer", StartDate: "2020-01", Current: true}},
		Skills:       []Skill{{Name: "Go", Level: SkillExpert}},
	}
}

func TestValidateData_Valid(t *testing.T) {
	d := sampleData()
	assert.NoError(t, ValidateData(&d))
}

func TestValidateData_MissingName(t *testing.T) {
	d := sampleData()
	d.PersonalInfo.FullName = ""
	err := ValidateData(&d)
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "personalInfo.fullName", ve.Errors[0].Field)
}

func TestValidateData_BadSkillLevel(t *testing.T) {
	d := sampleData()
	d.Skills[0].Level = "wizard"
	err := ValidateData(&d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skills.0.level")
}

func TestValidateSettings(t *testing.T) {
	assert.NoError(t, ValidateSettings(&ResumeSettings{}))
	assert.NoError(t, ValidateSettings(&ResumeSettings{
		PrimaryColor: "#1e40af",
		FontSize:     FontLarge,
		PaperSize:    PaperLetter,
		SectionOrder: []Section{SectionSkills, SectionExperience},
	}))

	err := ValidateSettings(&ResumeSettings{PrimaryColor: "blue", FontSize: "huge", SectionOrder: []Section{"hobbies"}})
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 3)
	assert.Contains(t, err.Error(), "settings.PrimaryColor")
}

func TestDocumentValidate_MergesFailures(t *testing.T) {
	doc := &Document{Settings: ResumeSettings{PaperSize: "A3"}}
	err := doc.Validate()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 2)
}

func TestOrderedSections(t *testing.T) {
	s := ResumeSettings{SectionOrder: []Section{SectionSkills, "bogus", SectionSkills, SectionSummary}}
	assert.Equal(t, []Section{
		SectionSkills, SectionSummary, SectionExperience, SectionEducation,
		SectionProjects, SectionCertifications, SectionLanguages, SectionCustom,
	}, s.OrderedSections())
	assert.Equal(t, DefaultSectionOrder, ResumeSettings{}.OrderedSections())
}

func TestHidden(t *testing.T) {
	s := ResumeSettings{HiddenSections: []Section{SectionLanguages}}
	assert.True(t, s.Hidden(SectionLanguages))
	assert.False(t, s.Hidden(SectionSkills))
}

func TestHasContent(t *testing.T) {
	d := sampleData()
	assert.True(t, d.HasContent(SectionSummary))
	assert.True(t, d.HasContent(SectionExperience))
	assert.True(t, d.HasContent(SectionSkills))
	assert.False(t, d.HasContent(SectionEducation))
	assert.False(t, d.HasContent(SectionCustom))

	d.PersonalInfo.Summary = "<p>  </p>"
	assert.False(t, d.HasContent(SectionSummary))

	d.Projects = []Project{{Name: "  "}}
	assert.False(t, d.HasContent(SectionProjects), "blank entries do not count")

	d.CustomSections = []CustomSection{{Title: "Awards", Items: []CustomItem{{Title: "Best paper"}}}}
	assert.True(t, d.HasContent(SectionCustom))
}

func TestDecode_SkillLevelCaseInsensitive(t *testing.T) {
	in := `
personalInfo:
  fullName: Jane Doe
skills:
  - name: Go
    level: Expert
  - name: SQL
    level: " ADVANCED "
`
	doc, err := Decode([]byte(in), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, SkillExpert, doc.Data.Skills[0].Level)
	assert.Equal(t, SkillAdvanced, doc.Data.Skills[1].Level)
	assert.NoError(t, doc.Validate())
}

func TestDecode_JSONEnvelope(t *testing.T) {
	doc, err := Decode([]byte(`{"data":{"personalInfo":{"fullName":"Jane"}},"settings":{"template":"modern"}}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "Jane", doc.Data.PersonalInfo.FullName)
	assert.Equal(t, "modern", doc.Settings.Template)
}

func TestDecode_BareYAML(t *testing.T) {
	in := `
personalInfo:
  fullName: Jane Doe
  email: jane@doe.dev
skills:
  - name: Go
    level: expert
`
	doc, err := Decode([]byte(in), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", doc.Data.PersonalInfo.FullName)
	require.Len(t, doc.Data.Skills, 1)
	assert.Equal(t, SkillExpert, doc.Data.Skills[0].Level)
	assert.Empty(t, doc.Settings.Template)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(nil, FormatJSON)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Decode([]byte("{not json"), FormatJSON)
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("resume.YML"))
	assert.Equal(t, FormatYAML, FormatFromPath("a/b/resume.yaml"))
	assert.Equal(t, FormatJSON, FormatFromPath("resume.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("resume"))
}
