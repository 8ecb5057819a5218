package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/alnah/go-htmlify"
)

// Exporter prints a finished report to PDF.
type Exporter interface {
	Export(ctx context.Context, htmlContent string) ([]byte, error)
	Close() error
}

var _ Exporter = (*htmlify.PDFExporter)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	Getenv      func(string) string
	Environ     func() []string
	NewExporter func(timeout time.Duration) Exporter
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
		NewExporter: func(timeout time.Duration) Exporter {
			return htmlify.NewPDFExporter(timeout)
		},
	}
}
