package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/templates"
)

const resumeYAML = `data:
  personalInfo:
    fullName: Ada Lovelace
    title: Analyst
    email: ada@example.com
  experience:
    - company: Analytical Engine
      position: Programmer
      startDate: "1842-01"
      endDate: "1843-09"
  skills:
    - name: Mathematics
      level: expert
settings:
  template: minimal
`

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeResume(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRender_HTMLToStdout(t *testing.T) {
	in := writeResume(t, "resume.yaml", resumeYAML)
	out, _, err := run(t, "", "render", "--in", in, "--format", "html")
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", strings.TrimSpace(doc.Find(".name").First().Text()))
	assert.True(t, doc.Find("body").HasClass("tpl-minimal"))
}

func TestRender_TemplateFlagOverridesFile(t *testing.T) {
	in := writeResume(t, "resume.yaml", resumeYAML)
	out, _, err := run(t, "", "render", "--in", in, "--format", "html", "--template", "swiss", "--paper", "Letter")
	require.NoError(t, err)
	assert.Contains(t, out, "tpl-swiss")
	assert.Contains(t, out, "size: Letter")
}

func TestRender_TextFileFromExtension(t *testing.T) {
	in := writeResume(t, "resume.yaml", resumeYAML)
	outPath := filepath.Join(t.TempDir(), "nested", "resume.txt")
	_, _, err := run(t, "", "render", "--in", in, "--out", outPath)
	require.NoError(t, err)

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "Ada Lovelace\n"))
	assert.Contains(t, string(b), "EXPERIENCE")
}

func TestRender_Stdin(t *testing.T) {
	out, _, err := run(t, `{"personalInfo": {"fullName": "Grace Hopper"}}`, "render", "--in", "-", "--format", "txt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Grace Hopper"))
}

func TestRender_InvalidResume(t *testing.T) {
	in := writeResume(t, "resume.json", `{"personalInfo": {"fullName": ""}}`)
	_, stderr, err := run(t, "", "render", "--in", in, "--format", "html")
	require.Error(t, err)
	assert.Contains(t, stderr, "personalInfo.fullName")
}

func TestRender_UnknownFormat(t *testing.T) {
	in := writeResume(t, "resume.yaml", resumeYAML)
	_, _, err := run(t, "", "render", "--in", in, "--format", "docx")
	assert.ErrorContains(t, err, "unknown format")
}

func TestRender_RequiresInput(t *testing.T) {
	_, _, err := run(t, "", "render")
	assert.Error(t, err)
}

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		flag, out, want string
	}{
		{"", "", formatPDF},
		{"", "cv.html", formatHTML},
		{"", "cv.TXT", formatText},
		{"", "cv.pdf", formatPDF},
		{"text", "", formatText},
		{"HTML", "cv.pdf", formatHTML},
	}
	for _, tt := range tests {
		got, err := outputFormat(tt.flag, tt.out)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "flag=%q out=%q", tt.flag, tt.out)
	}
}

func TestGallery_HTMLSample(t *testing.T) {
	dir := t.TempDir()
	out, _, err := run(t, "", "gallery", "--format", "html", "--out", dir, "--templates", "modern,swiss")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{filepath.Join(dir, "modern.html"), filepath.Join(dir, "swiss.html")}, lines)

	b, err := os.ReadFile(filepath.Join(dir, "modern.html"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "Alex Morgan")
}

func TestGallery_UnknownTemplate(t *testing.T) {
	_, _, err := run(t, "", "gallery", "--format", "html", "--out", t.TempDir(), "--templates", "nope")
	assert.Error(t, err)
}

func TestTemplates_JSON(t *testing.T) {
	out, _, err := run(t, "", "templates", "--json")
	require.NoError(t, err)
	var list []templates.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Len(t, list, len(templates.List()))
}

func TestTemplates_Table(t *testing.T) {
	out, _, err := run(t, "", "templates", "--category", "technical")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Len(t, lines, len(templates.ByCategory("technical"))+1)
	assert.Contains(t, out, "blueprint")
}

func TestValidate(t *testing.T) {
	good := writeResume(t, "good.yaml", resumeYAML)
	out, _, err := run(t, "", "validate", good)
	require.NoError(t, err)
	assert.Equal(t, good+": valid\n", out)

	bad := writeResume(t, "bad.json", `{"personalInfo": {"fullName": ""}, "skills": [{"name": "Go", "level": "wizard"}]}`)
	out, _, err = run(t, "", "validate", bad)
	require.Error(t, err)
	assert.Contains(t, out, "invalid")
	assert.Contains(t, out, "personalInfo.fullName")
}
