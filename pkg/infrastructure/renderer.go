package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Browser failure classes shared by the renderers.
var (
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrUnknownBackend = errors.New("unknown renderer backend")
)

const (
	defaultRenderTimeout = 60 * time.Second
	// A4: 210mm x 297mm -> inches: 8.27 x 11.69
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

// PDFRenderer turns a complete HTML document into PDF bytes.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Compile-time interface checks
var (
	_ PDFRenderer = (*ChromedpRenderer)(nil)
	_ PDFRenderer = (*RodRenderer)(nil)
)

// NewRenderer returns the backend named by name ("chromedp" or "rod") and a
// function releasing its resources.
func NewRenderer(name, chromePath string, timeout time.Duration) (PDFRenderer, func() error, error) {
	switch name {
	case "", "chromedp":
		return NewChromedpRenderer(chromePath, timeout), func() error { return nil }, nil
	case "rod":
		r := NewRodRenderer(chromePath, timeout)
		return r, r.Close, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}
