package htmlify

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-htmlify/internal/fileutil"
	"github.com/alnah/go-htmlify/internal/process"
)

// DefaultPDFTimeout bounds page load and printing.
const DefaultPDFTimeout = 30 * time.Second

// PDF page dimensions in inches (US Letter format).
const (
	paperWidthInches  = 8.5
	paperHeightInches = 11
	marginInches      = 0.5
)

// pdfRenderer abstracts PDF rendering from an HTML file to enable testing without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string) ([]byte, error)
	Close() error
}

var _ pdfRenderer = (*rodRenderer)(nil)

// PDFExporter prints reports to PDF with headless Chrome.
// Create with NewPDFExporter and Close when done. Not safe for concurrent use.
type PDFExporter struct {
	renderer pdfRenderer
}

// NewPDFExporter creates a PDFExporter. The browser starts on the first
// Export. A timeout <= 0 selects DefaultPDFTimeout.
func NewPDFExporter(timeout time.Duration) *PDFExporter {
	if timeout <= 0 {
		timeout = DefaultPDFTimeout
	}
	return &PDFExporter{renderer: newRodRenderer(timeout)}
}

// Export renders htmlContent to PDF bytes. Models and scripts get the
// page load event to settle; data URIs need no network.
func (e *PDFExporter) Export(ctx context.Context, htmlContent string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	defer cleanup()

	return e.renderer.RenderFromFile(ctx, tmpPath)
}

// Close releases browser resources.
func (e *PDFExporter) Close() error {
	if e.renderer != nil {
		return e.renderer.Close()
	}
	return nil
}

// rodRenderer implements pdfRenderer using go-rod.
// Rod downloads Chromium on first run if ROD_BROWSER_BIN is unset.
type rodRenderer struct {
	mu       sync.Mutex
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := newLauncher(os.Getenv)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.launcher = l

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		r.killLauncher()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// PDFSandboxDisabled reports whether PDF export launches Chrome with
// --no-sandbox: ROD_NO_SANDBOX=1, CI=true, or a pre-installed browser set
// through ROD_BROWSER_BIN (containers).
func PDFSandboxDisabled(getenv func(string) string) bool {
	return getenv("ROD_NO_SANDBOX") == "1" ||
		getenv("CI") == "true" ||
		getenv("ROD_BROWSER_BIN") != ""
}

// newLauncher configures the Chrome launcher from the environment.
func newLauncher(getenv func(string) string) *launcher.Launcher {
	l := launcher.New()

	if bin := getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	if PDFSandboxDisabled(getenv) {
		l = l.NoSandbox(true)
	}
	return l
}

// Close closes the browser and kills the launcher's process group, so no
// Chrome helper process outlives the exporter.
func (r *rodRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	r.killLauncher()
	return err
}

func (r *rodRenderer) killLauncher() {
	if r.launcher == nil {
		return
	}
	process.KillProcessGroup(r.launcher.PID())
	r.launcher.Kill()
	r.launcher = nil
}

// RenderFromFile opens a local HTML file in headless Chrome and prints it.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Context(ctx).Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(pdfOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdfBuf, nil
}

// pdfOptions returns US Letter pages with uniform margins and backgrounds.
func pdfOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthInches),
		PaperHeight:     floatPtr(paperHeightInches),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		PrintBackground: true,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
