package main

import (
	"fmt"
	"io"

	"github.com/alnah/go-htmlify/internal/config"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htmlify [flags] <outfile> <file>...")
	fmt.Fprintln(w, "       htmlify <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Bundle images, 3D models, notes and code into one self-contained HTML file.")
	fmt.Fprintln(w, "Files with no handler are listed and skipped.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  handlers   List handlers and the extensions they accept")
	fmt.Fprintln(w, "  doctor     Check the system for PDF export")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command (help config prints the default config)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "An <outfile> named like a command must follow --: htmlify -- help a.png")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report:")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>            Parallel renders (0 = auto)")
	fmt.Fprintln(w, "      --title <s>              Document <title>")
	fmt.Fprintln(w, "      --timestamp-format <s>   Footer timestamp: tokens YYYY MM DD HH mm ss,")
	fmt.Fprintln(w, "                               presets iso, date, long, compact; [text] is literal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Handlers:")
	fmt.Fprintln(w, "      --normalize-mime         Embed .jpg as image/jpeg")
	fmt.Fprintln(w, "      --viewer-url <url>       model-viewer script URL")
	fmt.Fprintln(w, "      --highlight-style <s>    Chroma style for code and notes (default github)")
	fmt.Fprintln(w, "      --asset-path <dir>       Custom styles/ and templates/ directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF:")
	fmt.Fprintln(w, "      --pdf <path>             Also print the report to PDF (requires Chrome)")
	fmt.Fprintln(w, "  -t, --timeout <d>            PDF export timeout (default 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                  Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  HTMLIFY_CONFIG, HTMLIFY_WORKERS, HTMLIFY_ASSET_PATH, HTMLIFY_TIMEOUT,")
	fmt.Fprintln(w, "  HTMLIFY_HIGHLIGHT_STYLE (flags take precedence)")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "handlers":
		fmt.Fprintln(env.Stdout, "Usage: htmlify handlers")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "List handlers and the extensions bound to them.")
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: htmlify doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check Chrome, container and temp directory for --pdf.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: htmlify version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "config":
		out, err := config.DefaultConfig().Marshal()
		if err != nil {
			fmt.Fprintf(env.Stderr, "error: %v\n", err)
			return ExitGeneral
		}
		fmt.Fprintln(env.Stdout, "# Default configuration. Save as htmlify.yaml and pass --config htmlify.")
		fmt.Fprint(env.Stdout, string(out))
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: htmlify help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
