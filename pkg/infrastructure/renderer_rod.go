package infrastructure

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// RodRenderer keeps one browser alive across renders and opens a page per
// document. Rod downloads Chromium on first use when no binary is given.
type RodRenderer struct {
	mu         sync.Mutex
	browser    *rod.Browser
	chromePath string
	timeout    time.Duration
}

func NewRodRenderer(chromePath string, timeout time.Duration) *RodRenderer {
	if timeout <= 0 {
		timeout = defaultRenderTimeout
	}
	return &RodRenderer{chromePath: chromePath, timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *RodRenderer) ensureBrowser() (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.browser != nil {
		return r.browser, nil
	}

	l := launcher.New().NoSandbox(true)
	if r.chromePath != "" {
		l = l.Bin(r.chromePath)
	}
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.browser = browser
	return browser, nil
}

// Close releases browser resources.
func (r *RodRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.browser == nil {
		return nil
	}
	err := r.browser.Close()
	r.browser = nil
	return err
}

func (r *RodRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	browser, err := r.ensureBrowser()
	if err != nil {
		return nil, err
	}

	htmlPath, cleanup, err := writeTempHTML(html)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "file://" + htmlPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()
	page = page.Context(ctx).Timeout(timeout)

	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:        floatPtr(a4WidthInches),
		PaperHeight:       floatPtr(a4HeightInches),
		MarginTop:         floatPtr(0),
		MarginBottom:      floatPtr(0),
		MarginLeft:        floatPtr(0),
		MarginRight:       floatPtr(0),
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdfBuf, nil
}

func floatPtr(v float64) *float64 {
	return &v
}
