package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-htmlify"
)

// writeConfig writes content to dir/name and returns the path.
func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestDefaultConfig
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Models.ViewerURL != htmlify.DefaultViewerURL {
		t.Errorf("ViewerURL = %q, want %q", cfg.Models.ViewerURL, htmlify.DefaultViewerURL)
	}
	if cfg.Models.Width != "512px" || cfg.Models.Height != "512px" {
		t.Errorf("viewer size = %sx%s, want 512px x 512px", cfg.Models.Width, cfg.Models.Height)
	}
	if cfg.Code.Style != htmlify.DefaultHighlightStyle {
		t.Errorf("Code.Style = %q, want %q", cfg.Code.Style, htmlify.DefaultHighlightStyle)
	}
	if cfg.Images.NormalizeMIME {
		t.Error("NormalizeMIME should default to false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestValidate
// ---------------------------------------------------------------------------

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "title too long", mutate: func(c *Config) { c.Report.Title = strings.Repeat("t", MaxTitleLength+1) }, wantErr: ErrFieldTooLong},
		{name: "preset timestamp", mutate: func(c *Config) { c.Report.TimestampFormat = "iso" }},
		{name: "unclosed timestamp bracket", mutate: func(c *Config) { c.Report.TimestampFormat = "[x" }, wantErr: ErrInvalidValue},
		{name: "viewer relative url", mutate: func(c *Config) { c.Models.ViewerURL = "model-viewer.js" }, wantErr: ErrInvalidValue},
		{name: "viewer url with quote", mutate: func(c *Config) { c.Models.ViewerURL = "https://x/a.js'onerror" }, wantErr: ErrInvalidValue},
		{name: "viewer url ftp", mutate: func(c *Config) { c.Models.ViewerURL = "ftp://x/a.js" }, wantErr: ErrInvalidValue},
		{name: "empty viewer url allowed", mutate: func(c *Config) { c.Models.ViewerURL = "" }},
		{name: "width in vh", mutate: func(c *Config) { c.Models.Width = "60vh" }},
		{name: "width with css injection", mutate: func(c *Config) { c.Models.Width = "1px;}body{" }, wantErr: ErrInvalidValue},
		{name: "height not a length", mutate: func(c *Config) { c.Models.Height = "tall" }, wantErr: ErrInvalidValue},
		{name: "negative workers", mutate: func(c *Config) { c.Render.Workers = -1 }, wantErr: ErrInvalidValue},
		{name: "too many workers", mutate: func(c *Config) { c.Render.Workers = MaxWorkers + 1 }, wantErr: ErrInvalidValue},
		{name: "pdf timeout", mutate: func(c *Config) { c.PDF.Timeout = "90s" }},
		{name: "bad pdf timeout", mutate: func(c *Config) { c.PDF.Timeout = "soon" }, wantErr: ErrInvalidValue},
		{name: "zero pdf timeout", mutate: func(c *Config) { c.PDF.Timeout = "0s" }, wantErr: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig
// ---------------------------------------------------------------------------

func TestLoadConfig_FromPath(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "report.yaml", `
report:
  title: Nightly
images:
  normalizeMIME: true
models:
  width: 640px
render:
  workers: 3
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Report.Title != "Nightly" {
		t.Errorf("Title = %q, want Nightly", cfg.Report.Title)
	}
	if !cfg.Images.NormalizeMIME {
		t.Error("NormalizeMIME = false, want true")
	}
	if cfg.Models.Width != "640px" {
		t.Errorf("Width = %q, want 640px", cfg.Models.Width)
	}
	if cfg.Models.Height != "512px" {
		t.Errorf("Height = %q, want default 512px", cfg.Models.Height)
	}
	if cfg.Models.ViewerURL != htmlify.DefaultViewerURL {
		t.Errorf("ViewerURL = %q, want default", cfg.Models.ViewerURL)
	}
	if cfg.Render.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Render.Workers)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	unknown := writeConfig(t, dir, "unknown.yaml", "report:\n  titel: typo\n")
	invalid := writeConfig(t, dir, "invalid.yaml", "render:\n  workers: 1000\n")

	tests := []struct {
		name    string
		arg     string
		wantErr error
	}{
		{name: "empty name", arg: "", wantErr: ErrEmptyConfigName},
		{name: "missing path", arg: filepath.Join(dir, "missing.yaml"), wantErr: ErrConfigNotFound},
		{name: "missing name", arg: "htmlify-config-that-does-not-exist", wantErr: ErrConfigNotFound},
		{name: "unknown key", arg: unknown, wantErr: ErrConfigParse},
		{name: "invalid value", arg: invalid, wantErr: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadConfig(tt.arg)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig(%q) error = %v, want %v", tt.arg, err, tt.wantErr)
			}
		})
	}
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("nightly")
	if len(paths) < 2 {
		t.Fatalf("SearchPaths() = %v, want at least local candidates", paths)
	}
	if paths[0] != "nightly.yaml" || paths[1] != "nightly.yml" {
		t.Errorf("local candidates = %v, want nightly.yaml, nightly.yml first", paths[:2])
	}
	for _, p := range paths[2:] {
		if !strings.Contains(filepath.ToSlash(p), "go-htmlify/nightly.") {
			t.Errorf("user candidate %q should live under go-htmlify/", p)
		}
	}
}

func TestConfig_Marshal(t *testing.T) {
	t.Parallel()

	out, err := DefaultConfig().Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, want := range []string{"viewerURL:", "model-viewer.min.js", "style: github", "workers: 0"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("Marshal() output missing %q:\n%s", want, out)
		}
	}
}
