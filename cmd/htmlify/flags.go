package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// reportFlags holds document shell flags.
type reportFlags struct {
	title           string
	timestampFormat string
}

// handlerFlags holds per-handler rendering flags.
type handlerFlags struct {
	normalizeMIME  bool
	viewerURL      string
	highlightStyle string
	assetPath      string
}

// pdfFlags holds PDF export flags.
type pdfFlags struct {
	output  string
	timeout string
}

// buildFlags holds all flags for building a report.
type buildFlags struct {
	common   commonFlags
	workers  int
	report   reportFlags
	handlers handlerFlags
	pdf      pdfFlags

	// changed records flags set on the command line, so zero values
	// (--workers 0) still override config.
	changed map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addReportFlags adds document shell flags to a FlagSet.
func addReportFlags(fs *flag.FlagSet, f *reportFlags) {
	fs.StringVar(&f.title, "title", "", "document <title>")
	fs.StringVar(&f.timestampFormat, "timestamp-format", "", "footer timestamp format (e.g. YYYY-MM-DD, iso)")
}

// addHandlerFlags adds handler flags to a FlagSet.
func addHandlerFlags(fs *flag.FlagSet, f *handlerFlags) {
	fs.BoolVar(&f.normalizeMIME, "normalize-mime", false, "embed .jpg as image/jpeg")
	fs.StringVar(&f.viewerURL, "viewer-url", "", "model-viewer script URL")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for code and notes")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addPDFFlags adds PDF export flags to a FlagSet.
func addPDFFlags(fs *flag.FlagSet, f *pdfFlags) {
	fs.StringVar(&f.output, "pdf", "", "also print the report to this PDF file")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF export timeout (e.g., 30s, 2m)")
}

// newBuildFlagSet registers every build flag on a fresh FlagSet.
func newBuildFlagSet(f *buildFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("htmlify", flag.ContinueOnError)
	fs.SetInterspersed(true)

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel renders (0 = auto)")
	addCommonFlags(fs, &f.common)
	addReportFlags(fs, &f.report)
	addHandlerFlags(fs, &f.handlers)
	addPDFFlags(fs, &f.pdf)

	return fs
}

// parseBuildFlags parses build flags and returns positional args.
// Parse errors and usage are written to stderr.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{changed: make(map[string]bool)}
	fs := newBuildFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	fs.Visit(func(fl *flag.Flag) {
		f.changed[fl.Name] = true
	})

	return f, fs.Args(), nil
}
