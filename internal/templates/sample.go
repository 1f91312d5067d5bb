package templates

import "resume-builder/internal/model"

// SampleData is the resume shown in gallery previews.
func SampleData() *model.ResumeData {
	return &model.ResumeData{
		PersonalInfo: model.PersonalInfo{
			FullName: "Alex Morgan",
			Title:    "Senior Software Engineer",
			Email:    "alex.morgan@example.com",
			Phone:    "+1 555 010 4477",
			Location: "Portland, OR",
			Website:  "https://alexmorgan.dev",
			LinkedIn: "linkedin.com/in/alexmorgan",
			GitHub:   "github.com/alexmorgan",
			Summary:  "<p>Backend engineer with ten years of experience building <strong>reliable distributed systems</strong> and the teams that run them.</p>",
		},
		Experience: []model.Experience{
			{
				Company:     "Northwind Logistics",
				Position:    "Senior Software Engineer",
				Location:    "Remote",
				StartDate:   "2021-03",
				Current:     true,
				Description: "<ul><li>Led the migration of the dispatch platform to event sourcing, cutting p99 latency by <strong>40%</strong></li><li>Mentored four engineers through their first on-call rotations</li></ul>",
			},
			{
				Company:     "Contoso Health",
				Position:    "Software Engineer",
				Location:    "Seattle, WA",
				StartDate:   "2016-06",
				EndDate:     "2021-02",
				Description: "- Built the claims ingestion pipeline processing 2M records a day\n- Introduced *contract tests* between billing services",
			},
		},
		Education: []model.Education{
			{Institution: "University of Washington", Degree: "BSc", Field: "Computer Science", StartDate: "2012", EndDate: "2016"},
		},
		Skills: []model.Skill{
			{Name: "Go", Level: model.SkillExpert},
			{Name: "PostgreSQL", Level: model.SkillAdvanced},
			{Name: "Kubernetes", Level: model.SkillAdvanced},
			{Name: "TypeScript", Level: model.SkillIntermediate},
		},
		Projects: []model.Project{
			{
				Name:         "pgqueue",
				Description:  "Open source job queue on top of PostgreSQL advisory locks.",
				Technologies: []string{"Go", "PostgreSQL"},
				Link:         "github.com/alexmorgan/pgqueue",
			},
		},
		Certifications: []model.Certification{
			{Name: "Certified Kubernetes Administrator", Issuer: "CNCF", Date: "2022-09"},
		},
		Languages: []model.Language{
			{Name: "English", Proficiency: model.ProficiencyNative},
			{Name: "Spanish", Proficiency: model.ProficiencyProfessional},
		},
	}
}
