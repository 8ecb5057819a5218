package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-htmlify/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string        // HTMLIFY_CONFIG: config file name or path
	Workers        int           // HTMLIFY_WORKERS: parallel renders
	AssetPath      string        // HTMLIFY_ASSET_PATH: custom asset directory
	Timeout        time.Duration // HTMLIFY_TIMEOUT: PDF export timeout
	HighlightStyle string        // HTMLIFY_HIGHLIGHT_STYLE: chroma style

	workersSet bool
}

// knownEnvVars lists valid HTMLIFY_* environment variables.
var knownEnvVars = map[string]bool{
	"HTMLIFY_CONFIG":          true,
	"HTMLIFY_WORKERS":         true,
	"HTMLIFY_ASSET_PATH":      true,
	"HTMLIFY_TIMEOUT":         true,
	"HTMLIFY_HIGHLIGHT_STYLE": true,
	"HTMLIFY_CONTAINER":       true, // read by doctor
}

// loadEnvConfig reads HTMLIFY_* variables through getenv.
// Malformed numbers and durations are reported on w and ignored.
func loadEnvConfig(getenv func(string) string, w io.Writer) *envConfig {
	cfg := &envConfig{
		ConfigPath:     getenv("HTMLIFY_CONFIG"),
		AssetPath:      getenv("HTMLIFY_ASSET_PATH"),
		HighlightStyle: getenv("HTMLIFY_HIGHLIGHT_STYLE"),
	}

	if timeout := getenv("HTMLIFY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		} else {
			fmt.Fprintf(w, "warning: ignoring HTMLIFY_TIMEOUT=%q (want a positive duration like 30s)\n", timeout)
		}
	}

	if workers := getenv("HTMLIFY_WORKERS"); workers != "" {
		if n, err := strconv.Atoi(workers); err == nil && n >= 0 && n <= config.MaxWorkers {
			cfg.Workers = n
			cfg.workersSet = true
		} else {
			fmt.Fprintf(w, "warning: ignoring HTMLIFY_WORKERS=%q (want 0-%d)\n", workers, config.MaxWorkers)
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized HTMLIFY_* variables.
// Helps catch typos like HTMLIFY_WORKER instead of HTMLIFY_WORKERS.
func warnUnknownEnvVars(environ []string, w io.Writer) {
	for _, env := range environ {
		if strings.HasPrefix(env, "HTMLIFY_") {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overrides config values with the environment.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.workersSet {
		cfg.Render.Workers = env.Workers
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Timeout > 0 {
		cfg.PDF.Timeout = env.Timeout.String()
	}
	if env.HighlightStyle != "" {
		cfg.Code.Style = env.HighlightStyle
	}
}
