package services

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/mechcorp/maintenance-api/config"
)

// A4 paper size in inches for Page.printToPDF
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

// PDFRenderer rasterizes an HTML document into a PDF byte stream. A failed
// render returns an error and no bytes; partial documents are never
// produced.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// ChromeRenderer renders through a headless Chrome instance. Every call
// launches a fresh browser process and tears it down afterwards; there is
// no pooling and no bound on concurrent instances.
type ChromeRenderer struct {
	execPath string
}

var pdfRendererInstance PDFRenderer

// InitPDFRenderer initializes the renderer from configuration.
func InitPDFRenderer(cfg *config.Config) PDFRenderer {
	pdfRendererInstance = &ChromeRenderer{execPath: cfg.ChromePath}
	return pdfRendererInstance
}

// GetPDFRenderer returns the initialized renderer instance
func GetPDFRenderer() PDFRenderer {
	return pdfRendererInstance
}

// SetPDFRenderer sets the renderer instance (primarily for testing)
func SetPDFRenderer(r PDFRenderer) {
	pdfRendererInstance = r
}

// RenderPDF loads the document into a new headless Chrome tab and prints it
// to an A4 PDF.
func (r *ChromeRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	opts := chromedp.DefaultExecAllocatorOptions[:]
	if r.execPath != "" {
		opts = append(opts, chromedp.ExecPath(r.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	var pdf []byte
	err := chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithPrintBackground(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return pdf, nil
}
