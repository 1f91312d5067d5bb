package model

// Go models for the resume payload shared by every template. They match the
// embedded resume.schema.json used for validation.

type PersonalInfo struct {
	FullName string `json:"fullName" yaml:"fullName"`
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Email    string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone    string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
	Website  string `json:"website,omitempty" yaml:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty" yaml:"github,omitempty"`
	Summary  string `json:"summary,omitempty" yaml:"summary,omitempty"`
	Photo    string `json:"photo,omitempty" yaml:"photo,omitempty"`
}

type Experience struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Company     string `json:"company" yaml:"company"`
	Position    string `json:"position" yaml:"position"`
	Location    string `json:"location,omitempty" yaml:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	Current     bool   `json:"current,omitempty" yaml:"current,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type Education struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Institution string `json:"institution" yaml:"institution"`
	Degree      string `json:"degree,omitempty" yaml:"degree,omitempty"`
	Field       string `json:"field,omitempty" yaml:"field,omitempty"`
	Location    string `json:"location,omitempty" yaml:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	Current     bool   `json:"current,omitempty" yaml:"current,omitempty"`
	GPA         string `json:"gpa,omitempty" yaml:"gpa,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// SkillLevel drives the gauge drawn next to a skill.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

type Skill struct {
	ID       string     `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string     `json:"name" yaml:"name"`
	Level    SkillLevel `json:"level,omitempty" yaml:"level,omitempty"`
	Category string     `json:"category,omitempty" yaml:"category,omitempty"`
}

type Project struct {
	ID           string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty" yaml:"technologies,omitempty"`
	Link         string   `json:"link,omitempty" yaml:"link,omitempty"`
	StartDate    string   `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty" yaml:"endDate,omitempty"`
}

type Certification struct {
	ID           string `json:"id,omitempty" yaml:"id,omitempty"`
	Name         string `json:"name" yaml:"name"`
	Issuer       string `json:"issuer,omitempty" yaml:"issuer,omitempty"`
	Date         string `json:"date,omitempty" yaml:"date,omitempty"`
	CredentialID string `json:"credentialId,omitempty" yaml:"credentialId,omitempty"`
	Link         string `json:"link,omitempty" yaml:"link,omitempty"`
}

// Proficiency is free text; the listed values get canonical labels.
type Proficiency string

const (
	ProficiencyNative         Proficiency = "native"
	ProficiencyFluent         Proficiency = "fluent"
	ProficiencyProfessional   Proficiency = "professional"
	ProficiencyConversational Proficiency = "conversational"
	ProficiencyBasic          Proficiency = "basic"
)

type Language struct {
	ID          string      `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string      `json:"name" yaml:"name"`
	Proficiency Proficiency `json:"proficiency,omitempty" yaml:"proficiency,omitempty"`
}

type CustomItem struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle    string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Date        string `json:"date,omitempty" yaml:"date,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type CustomSection struct {
	ID    string       `json:"id,omitempty" yaml:"id,omitempty"`
	Title string       `json:"title" yaml:"title"`
	Items []CustomItem `json:"items,omitempty" yaml:"items,omitempty"`
}

type ResumeData struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo" yaml:"personalInfo"`
	Experience     []Experience    `json:"experience,omitempty" yaml:"experience,omitempty"`
	Education      []Education     `json:"education,omitempty" yaml:"education,omitempty"`
	Skills         []Skill         `json:"skills,omitempty" yaml:"skills,omitempty"`
	Projects       []Project       `json:"projects,omitempty" yaml:"projects,omitempty"`
	Certifications []Certification `json:"certifications,omitempty" yaml:"certifications,omitempty"`
	Languages      []Language      `json:"languages,omitempty" yaml:"languages,omitempty"`
	CustomSections []CustomSection `json:"customSections,omitempty" yaml:"customSections,omitempty"`
}

type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

type PaperSize string

const (
	PaperA4     PaperSize = "A4"
	PaperLetter PaperSize = "Letter"
)

// ResumeSettings carries the presentation choices made next to the data.
// Zero values mean "use the template's defaults".
type ResumeSettings struct {
	Template       string            `json:"template,omitempty" yaml:"template,omitempty" validate:"omitempty,max=64"`
	PrimaryColor   string            `json:"primaryColor,omitempty" yaml:"primaryColor,omitempty" validate:"omitempty,hexcolor"`
	FontFamily     string            `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty" validate:"omitempty,max=128,excludesall=;{}<>"`
	FontSize       FontSize          `json:"fontSize,omitempty" yaml:"fontSize,omitempty" validate:"omitempty,oneof=small medium large"`
	PaperSize      PaperSize         `json:"paperSize,omitempty" yaml:"paperSize,omitempty" validate:"omitempty,oneof=A4 Letter"`
	DateFormat     string            `json:"dateFormat,omitempty" yaml:"dateFormat,omitempty" validate:"omitempty,max=32"`
	SectionOrder   []Section         `json:"sectionOrder,omitempty" yaml:"sectionOrder,omitempty" validate:"omitempty,dive,section"`
	HiddenSections []Section         `json:"hiddenSections,omitempty" yaml:"hiddenSections,omitempty" validate:"omitempty,dive,section"`
	ShowPhoto      bool              `json:"showPhoto,omitempty" yaml:"showPhoto,omitempty"`
	Labels         map[string]string `json:"labels,omitempty" yaml:"labels,omitempty" validate:"omitempty,dive,max=64"`
}

// Document is the request/file envelope: the data plus how to present it.
type Document struct {
	Data     ResumeData     `json:"data" yaml:"data"`
	Settings ResumeSettings `json:"settings,omitempty" yaml:"settings,omitempty"`
}
