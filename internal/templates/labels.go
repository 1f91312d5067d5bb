package templates

import "resume-builder/internal/model"

// DefaultLabels returns the English section headings. Settings labels
// override them key by key.
func DefaultLabels() map[string]string {
	return map[string]string{
		string(model.SectionSummary):        "Professional Summary",
		string(model.SectionExperience):     "Experience",
		string(model.SectionEducation):      "Education",
		string(model.SectionSkills):         "Skills",
		string(model.SectionProjects):       "Projects",
		string(model.SectionCertifications): "Certifications",
		string(model.SectionLanguages):      "Languages",
		"present":                           "Present",
		"contact":                           "Contact",
	}
}

func labelsFor(overrides map[string]string) map[string]string {
	labels := DefaultLabels()
	for k, v := range overrides {
		if v != "" {
			labels[k] = v
		}
	}
	return labels
}
