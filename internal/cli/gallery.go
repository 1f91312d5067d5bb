package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"resume-builder/internal/model"
	"resume-builder/internal/templates"

	"github.com/spf13/cobra"
)

type galleryOptions struct {
	in        string
	out       string
	format    string
	templates []string
	workers   int
}

func newGalleryCmd(root *rootOptions) *cobra.Command {
	o := &galleryOptions{}
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Render one resume with many templates",
		Long:  "Render a resume (the built-in sample when --in is omitted) once per template into --out.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd, root)
		},
	}
	cmd.Flags().StringVarP(&o.in, "in", "i", "", "resume file; the sample resume when empty")
	cmd.Flags().StringVarP(&o.out, "out", "o", "gallery", "output directory")
	cmd.Flags().StringVarP(&o.format, "format", "f", formatPDF, "output format: pdf or html")
	cmd.Flags().StringSliceVarP(&o.templates, "templates", "t", nil, "template ids (default: all)")
	cmd.Flags().IntVarP(&o.workers, "workers", "w", 0, "concurrent renders (default: GALLERY_WORKERS)")
	return cmd
}

func (o *galleryOptions) run(cmd *cobra.Command, root *rootOptions) error {
	if o.format != formatPDF && o.format != formatHTML {
		return fmt.Errorf("unknown gallery format %q (want pdf or html)", o.format)
	}
	doc := &model.Document{Data: *templates.SampleData(), Settings: model.ResumeSettings{ShowPhoto: true}}
	if o.in != "" {
		var err error
		if doc, err = readDocument(cmd, o.in); err != nil {
			return err
		}
	}
	ids := o.templates
	if len(ids) == 0 {
		ids = templates.IDs()
	}
	workers := o.workers
	if workers <= 0 {
		workers = root.cfg.GalleryWorkers
	}

	p, release, err := root.newProcessor(o.format == formatPDF)
	if err != nil {
		return err
	}
	defer release()

	files := make(map[string][]byte, len(ids))
	switch o.format {
	case formatPDF:
		if files, err = p.Gallery(cmd.Context(), &doc.Data, doc.Settings, ids, workers); err != nil {
			printValidation(cmd.ErrOrStderr(), err)
			return err
		}
	case formatHTML:
		for _, id := range ids {
			s := doc.Settings
			s.Template = id
			html, err := p.Preview(cmd.Context(), &doc.Data, s)
			if err != nil {
				printValidation(cmd.ErrOrStderr(), err)
				return fmt.Errorf("template %s: %w", id, err)
			}
			files[id] = []byte(html)
		}
	}

	if err := os.MkdirAll(o.out, 0o755); err != nil {
		return err
	}
	names := make([]string, 0, len(files))
	for id := range files {
		names = append(names, id)
	}
	sort.Strings(names)
	for _, id := range names {
		path := filepath.Join(o.out, id+"."+o.format)
		if err := os.WriteFile(path, files[id], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	slog.Info("gallery rendered", "dir", o.out, "templates", len(names), "format", o.format)
	return nil
}
