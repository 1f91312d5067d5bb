// Package cli implements resumectl, the command line front end of the
// resume builder.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"resume-builder/internal/config"
	"resume-builder/internal/model"
	"resume-builder/internal/templates"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
)

type rootOptions struct {
	logLevel string
	cfg      *config.Config
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "resumectl",
		Short:        "Render resumes to HTML, PDF or plain text",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				cfg.LogLevel = opts.logLevel
			}
			slog.SetDefault(slog.New(logger.NewColoredHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: logger.ParseLevel(cfg.LogLevel),
			})))
			_, _ = maxprocs.Set()
			opts.cfg = cfg
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newRenderCmd(opts),
		newGalleryCmd(opts),
		newTemplatesCmd(),
		newValidateCmd(),
	)
	return cmd
}

// newProcessor builds a processor. The browser is only started when withPDF
// is set; the returned function releases it.
func (o *rootOptions) newProcessor(withPDF bool) (*usecase.Processor, func(), error) {
	engine, err := templates.NewEngine(o.cfg.DefaultTemplate)
	if err != nil {
		return nil, nil, err
	}
	var renderer usecase.Renderer
	release := func() {}
	if withPDF {
		r, closeFn, err := infra.NewRenderer(o.cfg.Renderer, o.cfg.ChromePath, o.cfg.RenderTimeout)
		if err != nil {
			return nil, nil, err
		}
		renderer = r
		release = func() {
			if err := closeFn(); err != nil {
				slog.Warn("failed to close renderer", "error", err)
			}
		}
	}
	p := usecase.NewProcessor(renderer, nil, engine, usecase.Options{
		OutputDir:     o.cfg.OutputDir,
		Attempts:      o.cfg.RenderAttempts,
		RenderTimeout: o.cfg.RenderTimeout,
	})
	return p, release, nil
}

// readDocument decodes a resume file. "-" reads stdin, which is taken as
// YAML unless it starts with "{".
func readDocument(cmd *cobra.Command, path string) (*model.Document, error) {
	var (
		b   []byte
		err error
	)
	f := model.FormatFromPath(path)
	if path == "-" {
		b, err = io.ReadAll(io.LimitReader(cmd.InOrStdin(), model.MaxInputSize+1))
		if trimmed := strings.TrimSpace(string(b)); trimmed != "" && !strings.HasPrefix(trimmed, "{") {
			f = model.FormatYAML
		}
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return model.Decode(b, f)
}

// printValidation writes one line per field failure.
func printValidation(w io.Writer, err error) {
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		for _, fe := range ve.Errors {
			fmt.Fprintf(w, "  %s: %s\n", fe.Field, fe.Message)
		}
	}
}
