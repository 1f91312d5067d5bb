package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"resume-builder/internal/model"
	"resume-builder/internal/usecase"

	"github.com/spf13/cobra"
)

// Output formats of render and gallery.
const (
	formatPDF  = "pdf"
	formatHTML = "html"
	formatText = "txt"
)

type renderOptions struct {
	in       string
	out      string
	format   string
	template string
	paper    string
	color    string
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	o := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one resume file",
		Example: `  resumectl render --in resume.yaml --template modern --out resume.pdf
  resumectl render --in resume.json --format html > resume.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd, root)
		},
	}
	cmd.Flags().StringVarP(&o.in, "in", "i", "", `resume file (.json, .yaml or "-" for stdin)`)
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "output file (defaults to stdout for html/txt and <Name>_Resume.pdf for pdf)")
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "output format: pdf, html or txt (defaults from --out)")
	cmd.Flags().StringVarP(&o.template, "template", "t", "", "template id, overrides the file settings")
	cmd.Flags().StringVar(&o.paper, "paper", "", "paper size, A4 or Letter")
	cmd.Flags().StringVar(&o.color, "color", "", "primary color as #rrggbb")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func (o *renderOptions) run(cmd *cobra.Command, root *rootOptions) error {
	format, err := outputFormat(o.format, o.out)
	if err != nil {
		return err
	}
	doc, err := readDocument(cmd, o.in)
	if err != nil {
		return err
	}
	applyOverrides(&doc.Settings, o.template, o.paper, o.color)

	p, release, err := root.newProcessor(format == formatPDF)
	if err != nil {
		return err
	}
	defer release()

	ctx := cmd.Context()
	var out []byte
	switch format {
	case formatHTML:
		html, err := p.Preview(ctx, &doc.Data, doc.Settings)
		if err != nil {
			printValidation(cmd.ErrOrStderr(), err)
			return err
		}
		out = []byte(html)
	case formatText:
		if err := doc.Validate(); err != nil {
			printValidation(cmd.ErrOrStderr(), err)
			return err
		}
		txt, err := p.PlainText(&doc.Data, doc.Settings)
		if err != nil {
			return err
		}
		out = []byte(txt)
	case formatPDF:
		pdf, err := p.RenderPDF(ctx, &doc.Data, doc.Settings)
		if err != nil {
			printValidation(cmd.ErrOrStderr(), err)
			return err
		}
		out = pdf
		if o.out == "" {
			o.out = usecase.DownloadName(&doc.Data)
		}
	}

	if o.out == "" || o.out == "-" {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}
	if dir := filepath.Dir(o.out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(o.out, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", o.out, err)
	}
	slog.Info("resume rendered", "path", o.out, "format", format, "bytes", len(out))
	return nil
}

// outputFormat resolves --format, falling back to the extension of out and
// then to pdf.
func outputFormat(flag, out string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(flag))
	if f == "" {
		switch strings.ToLower(filepath.Ext(out)) {
		case ".html", ".htm":
			f = formatHTML
		case ".txt", ".text":
			f = formatText
		default:
			f = formatPDF
		}
	}
	switch f {
	case formatPDF, formatHTML, formatText:
		return f, nil
	case "text":
		return formatText, nil
	}
	return "", fmt.Errorf("unknown format %q (want pdf, html or txt)", flag)
}

func applyOverrides(s *model.ResumeSettings, template, paper, color string) {
	if template != "" {
		s.Template = template
	}
	if paper != "" {
		s.PaperSize = model.PaperSize(paper)
	}
	if color != "" {
		s.PrimaryColor = color
	}
}
