package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/alnah/go-htmlify"
	"github.com/alnah/go-htmlify/internal/dateutil"
	"github.com/alnah/go-htmlify/internal/fileutil"
	"github.com/alnah/go-htmlify/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field limits.
const (
	MaxTitleLength  = 200
	MaxURLLength    = 2048
	MaxStyleLength  = 50
	MaxLengthLength = 16 // "512px", "60vh"
	MaxPathLength   = 4096
	MaxWorkers      = 64
)

// cssLength accepts a plain CSS length such as 512px, 40rem or 80%.
var cssLength = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?(px|em|rem|%|vw|vh)$`)

// Config holds all configuration for report generation.
type Config struct {
	Report ReportConfig `yaml:"report"`
	Images ImagesConfig `yaml:"images"`
	Models ModelsConfig `yaml:"models"`
	Code   CodeConfig   `yaml:"code"`
	Render RenderConfig `yaml:"render"`
	Assets AssetsConfig `yaml:"assets"`
	PDF    PDFConfig    `yaml:"pdf"`
}

// ReportConfig defines the document shell.
type ReportConfig struct {
	Title           string `yaml:"title"`           // Empty = no <title>
	TimestampFormat string `yaml:"timestampFormat"` // dateutil tokens or preset (default "YYYY-MM-DD HH:mm:ss")
}

// ImagesConfig defines image embedding options.
type ImagesConfig struct {
	NormalizeMIME bool `yaml:"normalizeMIME"` // jpg -> image/jpeg instead of image/jpg
}

// ModelsConfig defines the model-viewer header.
type ModelsConfig struct {
	ViewerURL string `yaml:"viewerURL"`
	Width     string `yaml:"width"`
	Height    string `yaml:"height"`
}

// CodeConfig defines syntax highlighting options.
type CodeConfig struct {
	Style string `yaml:"style"` // chroma style name
}

// RenderConfig defines rendering concurrency.
type RenderConfig struct {
	Workers int `yaml:"workers"` // 0 = auto
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// PDFConfig defines the optional PDF export.
type PDFConfig struct {
	Output  string `yaml:"output"`  // Empty = no PDF
	Timeout string `yaml:"timeout"` // Go duration, empty = default
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Models: ModelsConfig{
			ViewerURL: htmlify.DefaultViewerURL,
			Width:     htmlify.DefaultViewerSize,
			Height:    htmlify.DefaultViewerSize,
		},
		Code: CodeConfig{Style: htmlify.DefaultHighlightStyle},
	}
}

// Validate checks lengths and formats. Called by LoadConfig, and by the CLI
// after flags and environment are merged in.
func (c *Config) Validate() error {
	if err := validateFieldLength("report.title", c.Report.Title, MaxTitleLength); err != nil {
		return err
	}
	if c.Report.TimestampFormat != "" {
		if _, err := dateutil.Layout(c.Report.TimestampFormat); err != nil {
			return fmt.Errorf("%w: report.timestampFormat: %w", ErrInvalidValue, err)
		}
	}

	if err := validateFieldLength("models.viewerURL", c.Models.ViewerURL, MaxURLLength); err != nil {
		return err
	}
	if c.Models.ViewerURL != "" {
		if err := validateViewerURL(c.Models.ViewerURL); err != nil {
			return err
		}
	}
	for field, v := range map[string]string{"models.width": c.Models.Width, "models.height": c.Models.Height} {
		if err := validateFieldLength(field, v, MaxLengthLength); err != nil {
			return err
		}
		if v != "" && !cssLength.MatchString(v) {
			return fmt.Errorf("%w: %s: %q is not a CSS length (e.g. 512px, 60vh)", ErrInvalidValue, field, v)
		}
	}

	if err := validateFieldLength("code.style", c.Code.Style, MaxStyleLength); err != nil {
		return err
	}

	if c.Render.Workers < 0 || c.Render.Workers > MaxWorkers {
		return fmt.Errorf("%w: render.workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Render.Workers)
	}

	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("pdf.output", c.PDF.Output, MaxPathLength); err != nil {
		return err
	}
	if c.PDF.Timeout != "" {
		d, err := time.ParseDuration(c.PDF.Timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: pdf.timeout: %q is not a positive duration", ErrInvalidValue, c.PDF.Timeout)
		}
	}

	return nil
}

// validateViewerURL accepts absolute http(s) URLs that cannot break out of
// the quoted src attribute they are written into.
func validateViewerURL(raw string) error {
	if strings.ContainsAny(raw, "'\"<> ") {
		return fmt.Errorf("%w: models.viewerURL: contains quote, space or angle bracket", ErrInvalidValue)
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: models.viewerURL: %q must be an absolute http(s) URL", ErrInvalidValue, raw)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is read as a path; anything else is a
// name searched in standard locations. Keys missing from the file keep their
// defaults. Returns an error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// SearchPaths returns the locations tried for a config name, in order:
// ./{name}.yaml, ./{name}.yml, then the same under the user config dir.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-htmlify", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
