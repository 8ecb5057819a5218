package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alnah/go-htmlify"
	"github.com/alnah/go-htmlify/internal/config"
	"github.com/alnah/go-htmlify/internal/fileutil"
	"github.com/alnah/go-htmlify/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrNoOutput    = errors.New("no output file specified")
	ErrWriteOutput = errors.New("failed to write output file")
)

// runBuild renders the inputs in positional[1:] into the report positional[0].
// Nothing is written unless every listed file was rendered.
func runBuild(ctx context.Context, positional []string, flags *buildFlags, env *Environment) error {
	if len(positional) == 0 {
		return ErrNoOutput
	}
	outfile, files := positional[0], positional[1:]

	warnUnknownEnvVars(env.Environ(), env.Stderr)
	envCfg := loadEnvConfig(env.Getenv, env.Stderr)

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	registry, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	var diagnostics io.Writer = env.Stdout
	if flags.common.quiet {
		diagnostics = io.Discard
	}

	start := env.Now()
	report, err := htmlify.NewBuilder(
		htmlify.WithRegistry(registry),
		htmlify.WithDiagnostics(diagnostics),
		htmlify.WithWorkers(cfg.Render.Workers),
		htmlify.WithClock(env.Now),
		htmlify.WithTimestampFormat(cfg.Report.TimestampFormat),
		htmlify.WithTitle(cfg.Report.Title),
	).Build(ctx, files)
	if err != nil {
		return fmt.Errorf("building report: %w", err)
	}

	if err := fileutil.WriteFileAtomic(outfile, []byte(report.HTML())); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, outfile, err)
	}

	printSummary(env, flags, outfile, report, registry, env.Now().Sub(start))

	if cfg.PDF.Output != "" {
		return exportPDF(ctx, report, cfg.PDF, flags.common, env)
	}
	return nil
}

// loadConfig loads the config named by the flag, else by HTMLIFY_CONFIG,
// else returns defaults.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies command-line flags over cfg. Only flags the user set
// are applied.
func mergeFlags(f *buildFlags, cfg *config.Config) {
	if f.changed["workers"] {
		cfg.Render.Workers = f.workers
	}
	if f.changed["title"] {
		cfg.Report.Title = f.report.title
	}
	if f.changed["timestamp-format"] {
		cfg.Report.TimestampFormat = f.report.timestampFormat
	}
	if f.changed["normalize-mime"] {
		cfg.Images.NormalizeMIME = f.handlers.normalizeMIME
	}
	if f.changed["viewer-url"] {
		cfg.Models.ViewerURL = f.handlers.viewerURL
	}
	if f.changed["highlight-style"] {
		cfg.Code.Style = f.handlers.highlightStyle
	}
	if f.changed["asset-path"] {
		cfg.Assets.BasePath = f.handlers.assetPath
	}
	if f.changed["pdf"] {
		cfg.PDF.Output = f.pdf.output
	}
	if f.changed["timeout"] {
		cfg.PDF.Timeout = f.pdf.timeout
	}
}

// buildRegistry creates the default registry configured from cfg.
func buildRegistry(cfg *config.Config) (*htmlify.Registry, error) {
	loader, err := htmlify.NewAssetLoader(cfg.Assets.BasePath)
	if err != nil {
		return nil, err
	}

	return htmlify.DefaultRegistry(htmlify.HandlerOptions{
		NormalizeMIME:  cfg.Images.NormalizeMIME,
		ViewerURL:      cfg.Models.ViewerURL,
		ViewerWidth:    cfg.Models.Width,
		ViewerHeight:   cfg.Models.Height,
		HighlightStyle: cfg.Code.Style,
		Assets:         loader,
	})
}

// printSummary reports the written file unless quiet.
func printSummary(env *Environment, flags *buildFlags, outfile string, report *htmlify.Report, registry *htmlify.Registry, elapsed time.Duration) {
	if flags.common.quiet {
		return
	}

	if !flags.common.verbose {
		fmt.Fprintf(env.Stdout, "Created %s\n", outfile)
		return
	}

	fmt.Fprintf(env.Stdout, "Created %s (%d rendered, %d skipped, %v)\n",
		outfile, len(report.Entries), len(report.Skipped), elapsed.Round(time.Millisecond))
	if len(report.Skipped) > 0 {
		fmt.Fprintf(env.Stdout, "%d file(s) had no handler%s\n", len(report.Skipped), hints.ForUnsupported(registry.Extensions()))
	}
}

// exportPDF prints the report with headless Chrome and writes pdf.Output.
func exportPDF(ctx context.Context, report *htmlify.Report, pdf config.PDFConfig, common commonFlags, env *Environment) error {
	timeout := htmlify.DefaultPDFTimeout
	if pdf.Timeout != "" {
		// Validated by config.Validate.
		if d, err := time.ParseDuration(pdf.Timeout); err == nil {
			timeout = d
		}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	exporter := env.NewExporter(timeout)
	defer func() { _ = exporter.Close() }()

	start := env.Now()
	data, err := exporter.Export(ctx, report.HTML())
	if err != nil {
		return fmt.Errorf("exporting PDF: %w", err)
	}

	if err := fileutil.WriteFileAtomic(pdf.Output, data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, pdf.Output, err)
	}

	switch {
	case common.quiet:
	case common.verbose:
		fmt.Fprintf(env.Stdout, "Created %s (%v)\n", pdf.Output, env.Now().Sub(start).Round(time.Millisecond))
	default:
		fmt.Fprintf(env.Stdout, "Created %s\n", pdf.Output)
	}
	return nil
}

// configName returns the config name in effect, for hints.
func configName(flags *buildFlags, env *Environment) string {
	if flags.common.config != "" {
		return flags.common.config
	}
	return env.Getenv("HTMLIFY_CONFIG")
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, cfgName string) string {
	switch {
	case errors.Is(err, htmlify.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, htmlify.ErrPageLoad):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		if fileutil.IsFilePath(cfgName) {
			return hints.ForConfigNotFound(nil)
		}
		return hints.ForConfigNotFound(config.SearchPaths(cfgName))
	case errors.Is(err, htmlify.ErrReadFile):
		return hints.ForReadFile()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputFile()
	case errors.Is(err, htmlify.ErrUnknownStyle):
		return hints.ForStyleNotFound(htmlify.HighlightStyles())
	}
	return ""
}
