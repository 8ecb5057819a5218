package htmlify

import (
	"context"
	"fmt"
	"html"
	"io"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-htmlify/internal/dateutil"
	"github.com/alnah/go-htmlify/internal/fileutil"
)

// DefaultTimestampFormat is the footer timestamp format, e.g. 2024-01-02 15:04:05.
const DefaultTimestampFormat = dateutil.DefaultFormat

// Builder assembles reports from file lists.
// A Builder is safe for concurrent use once constructed.
type Builder struct {
	registry        *Registry
	diagnostics     io.Writer
	workers         int
	now             func() time.Time
	timestampFormat string
	title           string
}

// Option configures a Builder.
type Option func(*Builder)

// NewBuilder creates a Builder. Without WithRegistry, Build uses the
// DefaultRegistry with default handler options.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		diagnostics:     io.Discard,
		now:             time.Now,
		timestampFormat: DefaultTimestampFormat,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// WithRegistry sets the handler registry.
func WithRegistry(r *Registry) Option {
	return func(b *Builder) {
		b.registry = r
	}
}

// WithDiagnostics sets where skipped files are reported, one line each.
// Defaults to io.Discard.
func WithDiagnostics(w io.Writer) Option {
	return func(b *Builder) {
		if w == nil {
			w = io.Discard
		}
		b.diagnostics = w
	}
}

// WithWorkers bounds the number of files rendered at once.
// 0 means GOMAXPROCS, 1 renders sequentially.
// Panics if n < 0 (programmer error).
func WithWorkers(n int) Option {
	if n < 0 {
		panic("htmlify: WithWorkers count must not be negative")
	}
	return func(b *Builder) {
		b.workers = n
	}
}

// WithClock sets the time source for the footer timestamp.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithTimestampFormat sets the footer timestamp format using dateutil tokens
// (YYYY-MM-DD HH:mm:ss) or a preset name (iso, date, long, compact).
// An invalid format makes Build fail with ErrInvalidTimestampFormat.
func WithTimestampFormat(format string) Option {
	return func(b *Builder) {
		if format != "" {
			b.timestampFormat = format
		}
	}
}

// WithTitle sets the document <title>. Empty means no title element.
func WithTitle(title string) Option {
	return func(b *Builder) {
		b.title = title
	}
}

// ResolveWorkers returns n if positive, otherwise GOMAXPROCS.
func ResolveWorkers(n int) int {
	if n > 0 {
		return n
	}
	return max(runtime.GOMAXPROCS(0), 1)
}

// Header is head content contributed by one handler.
type Header struct {
	Handler string
	Content string
}

// Entry is one rendered file.
type Entry struct {
	Path     string
	Handler  string
	Fragment string
}

// SkippedFile is an input no handler accepts.
type SkippedFile struct {
	Path      string
	Extension string
}

// Report is an assembled document, ready to serialize with HTML.
type Report struct {
	Title       string
	Headers     []Header // one per handler, first-seen order
	Entries     []Entry  // input order
	Skipped     []SkippedFile
	GeneratedAt time.Time
	Timestamp   string // GeneratedAt, formatted
}

// renderJob pairs an input with its handler.
type renderJob struct {
	path    string
	handler Handler
}

// Build renders files into a Report.
//
// Files with no handler are written to the diagnostics writer as
// "No handler for <file> with extension <ext>" and skipped. The first render
// error cancels the remaining renders and is returned; no report is produced.
func (b *Builder) Build(ctx context.Context, files []string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	registry := b.registry
	if registry == nil {
		var err error
		registry, err = DefaultRegistry(HandlerOptions{})
		if err != nil {
			return nil, err
		}
	}

	layout, err := dateutil.Layout(b.timestampFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimestampFormat, err)
	}

	report := &Report{Title: b.title}
	jobs := make([]renderJob, 0, len(files))
	seen := make(map[string]bool)

	for _, path := range files {
		ext := fileutil.Extension(path)
		h, ok := registry.Lookup(ext)
		if !ok {
			fmt.Fprintf(b.diagnostics, "No handler for %s with extension %s\n", path, ext)
			report.Skipped = append(report.Skipped, SkippedFile{Path: path, Extension: ext})
			continue
		}
		if !seen[h.Name()] {
			seen[h.Name()] = true
			report.Headers = append(report.Headers, Header{Handler: h.Name(), Content: h.Header()})
		}
		jobs = append(jobs, renderJob{path: path, handler: h})
	}

	fragments, err := b.render(ctx, jobs)
	if err != nil {
		return nil, err
	}

	report.Entries = make([]Entry, len(jobs))
	for i, job := range jobs {
		report.Entries[i] = Entry{Path: job.path, Handler: job.handler.Name(), Fragment: fragments[i]}
	}

	report.GeneratedAt = b.now()
	report.Timestamp = report.GeneratedAt.Format(layout)
	return report, nil
}

// render runs the jobs on at most b.workers goroutines. Results keep the
// order of jobs.
func (b *Builder) render(ctx context.Context, jobs []renderJob) ([]string, error) {
	fragments := make([]string, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ResolveWorkers(b.workers))

	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fragment, err := job.handler.Render(gctx, job.path)
			if err != nil {
				return err
			}
			fragments[i] = fragment
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fragments, nil
}

// HTML serializes the report:
//
//	<html><head>[<title>] headers </head><body>
//	<h1> file </h1>
//	fragment
//	<hr>
//	...
//	<hr>Generated at <timestamp></body></html>
func (r *Report) HTML() string {
	var b strings.Builder

	b.WriteString("<html><head>")
	if r.Title != "" {
		b.WriteString("<title>" + html.EscapeString(r.Title) + "</title>")
	}
	for _, h := range r.Headers {
		b.WriteString(h.Content)
	}
	b.WriteString("</head><body>")

	for _, e := range r.Entries {
		b.WriteString("<h1> " + html.EscapeString(e.Path) + " </h1>\n")
		b.WriteString(e.Fragment + "\n")
		b.WriteString("<hr>\n")
	}

	b.WriteString("<hr>")
	b.WriteString("Generated at " + r.Timestamp)
	b.WriteString("</body></html>")
	return b.String()
}

// WriteTo writes the serialized report to w.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.HTML())
	return int64(n), err
}
