package format

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var skillGauges = map[string]int{
	"beginner":     25,
	"intermediate": 50,
	"advanced":     75,
	"expert":       100,
}

var proficiencyScores = map[string]int{
	"native":         5,
	"fluent":         4,
	"professional":   3,
	"conversational": 2,
	"basic":          1,
}

// SkillGauge maps a skill level to the filled width of its gauge in
// percent. Unknown or empty levels map to 0 and draw no gauge.
func SkillGauge(level string) int {
	return skillGauges[normalizeKey(level)]
}

// SkillDots maps a skill level to 1-4 filled dots, 0 when unknown.
func SkillDots(level string) int {
	return SkillGauge(level) / 25
}

// SkillLabel is the capitalized level, empty when the level is empty.
func SkillLabel(level string) string {
	return Capitalize(normalizeKey(level))
}

// Proficiency returns the display label of a language proficiency. Known
// values are canonicalised ("NATIVE" -> "Native"); free text keeps its
// wording with the first letter upper-cased.
func Proficiency(p string) string {
	key := normalizeKey(p)
	if _, ok := proficiencyScores[key]; ok {
		return Capitalize(key)
	}
	return Capitalize(strings.TrimSpace(p))
}

// ProficiencyScore maps a proficiency to 1-5 for dot rows, 0 when unknown.
func ProficiencyScore(p string) int {
	return proficiencyScores[normalizeKey(p)]
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Initials returns up to two upper-case initials of a full name.
func Initials(name string) string {
	var out []rune
	for _, part := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(part)
		if !unicode.IsLetter(r) {
			continue
		}
		out = append(out, unicode.ToUpper(r))
	}
	switch len(out) {
	case 0:
		return ""
	case 1:
		return string(out)
	}
	return string([]rune{out[0], out[len(out)-1]})
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
