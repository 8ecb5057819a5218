// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-htmlify/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser connection errors during PDF export.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing the PDF export timeout.
func ForTimeout() string {
	return format("for reports with many models, use --timeout")
}

// ForConfigNotFound suggests --config or creating a file in the user config dir.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(filepath2slash(p), ".config/go-htmlify") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForReadFile returns a hint for input files that cannot be read.
func ForReadFile() string {
	return format("check the path exists and is readable; globs are expanded by the shell")
}

// ForOutputFile returns a hint for report write failures.
func ForOutputFile() string {
	return format("check parent directory exists and is writable")
}

// ForUnsupported lists the extensions that do have a handler.
func ForUnsupported(supported []string) string {
	if len(supported) == 0 {
		return ""
	}
	return format("supported: " + strings.Join(supported, ", "))
}

// ForStyleNotFound lists available highlight styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	const maxListed = 12
	if len(available) > maxListed {
		available = append(available[:maxListed:maxListed], "...")
	}
	return format("available: " + strings.Join(available, ", "))
}

func filepath2slash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
