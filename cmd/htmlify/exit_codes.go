package main

import (
	"errors"
	"os"

	"github.com/alnah/go-htmlify"
	"github.com/alnah/go-htmlify/internal/config"
)

// Exit codes for the htmlify CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Report written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Input unreadable, output not writable
	ExitBrowser = 4 // Browser/Chrome errors during PDF export
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, htmlify.ErrBrowserConnect) ||
		errors.Is(err, htmlify.ErrPageCreate) ||
		errors.Is(err, htmlify.ErrPageLoad) ||
		errors.Is(err, htmlify.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, htmlify.ErrReadFile) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoOutput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, htmlify.ErrUnknownStyle) ||
		errors.Is(err, htmlify.ErrInvalidAssetPath) ||
		errors.Is(err, htmlify.ErrAssetNotFound) ||
		errors.Is(err, htmlify.ErrHeaderTemplate) ||
		errors.Is(err, htmlify.ErrInvalidTimestampFormat) {
		return ExitUsage
	}

	return ExitGeneral
}
