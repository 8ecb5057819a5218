package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/alnah/go-htmlify"
	"github.com/alnah/go-htmlify/internal/config"
)

// ---------------------------------------------------------------------------
// TestHintFor - Actionable hints per error
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		cfgName  string
		contains string
	}{
		{name: "timeout", err: fmt.Errorf("exporting PDF: %w", context.DeadlineExceeded), contains: "--timeout"},
		{name: "page load", err: htmlify.ErrPageLoad, contains: "--timeout"},
		{name: "config path", err: config.ErrConfigNotFound, cfgName: "./x.yaml", contains: "--config"},
		{name: "config name", err: config.ErrConfigNotFound, cfgName: "report", contains: "--config"},
		{name: "unknown style", err: htmlify.ErrUnknownStyle, contains: "available: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err, tt.cfgName)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("hintFor(%v) = %q, want substring %q", tt.err, got, tt.contains)
			}
		})
	}
}

func TestHintFor_NoHint(t *testing.T) {
	t.Parallel()

	for _, err := range []error{errors.New("boom"), htmlify.ErrHTMLConversion, ErrNoOutput} {
		if got := hintFor(err, ""); got != "" {
			t.Errorf("hintFor(%v) = %q, want empty", err, got)
		}
	}
}

func TestHintFor_StaticHints(t *testing.T) {
	t.Parallel()

	for _, err := range []error{htmlify.ErrReadFile, ErrWriteOutput} {
		if got := hintFor(err, ""); got == "" {
			t.Errorf("hintFor(%v) = empty, want a hint", err)
		}
	}
}
