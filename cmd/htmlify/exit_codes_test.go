package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/alnah/go-htmlify"
	"github.com/alnah/go-htmlify/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// Browser errors (exit 4)
		{"browser connect", htmlify.ErrBrowserConnect, ExitBrowser},
		{"page create", htmlify.ErrPageCreate, ExitBrowser},
		{"page load", htmlify.ErrPageLoad, ExitBrowser},
		{"pdf generation", htmlify.ErrPDFGeneration, ExitBrowser},
		{"wrapped browser connect", fmt.Errorf("exporting PDF: %w", htmlify.ErrBrowserConnect), ExitBrowser},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read file", htmlify.ErrReadFile, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"wrapped read file", fmt.Errorf("building report: %w", htmlify.ErrReadFile), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"no output", ErrNoOutput, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid value", config.ErrInvalidValue, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"unknown style", htmlify.ErrUnknownStyle, ExitUsage},
		{"invalid asset path", htmlify.ErrInvalidAssetPath, ExitUsage},
		{"asset not found", htmlify.ErrAssetNotFound, ExitUsage},
		{"header template", htmlify.ErrHeaderTemplate, ExitUsage},
		{"timestamp format", htmlify.ErrInvalidTimestampFormat, ExitUsage},
		{"wrapped config", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("something else"), ExitGeneral},
		{"html conversion", htmlify.ErrHTMLConversion, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_Conventions(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes 0, 1, 2 must follow Unix conventions")
	}
	for _, code := range []int{ExitIO, ExitBrowser} {
		if code >= 126 {
			t.Errorf("exit code %d collides with shell-reserved range", code)
		}
	}
}
