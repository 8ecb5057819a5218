package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var fixedNow = time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)

// fakeExporter implements Exporter without a browser.
type fakeExporter struct {
	pdf     []byte
	err     error
	timeout time.Duration
	html    string
	closed  bool
}

func (f *fakeExporter) Export(_ context.Context, htmlContent string) ([]byte, error) {
	f.html = htmlContent
	return f.pdf, f.err
}

func (f *fakeExporter) Close() error {
	f.closed = true
	return nil
}

// testEnv returns an Environment with buffered output, the given variables
// and a fake exporter.
func testEnv(vars map[string]string, exporter *fakeExporter) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	if exporter == nil {
		exporter = &fakeExporter{pdf: []byte("%PDF-1.4")}
	}
	env := &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: stdout,
		Stderr: stderr,
		Getenv: func(k string) string { return vars[k] },
		Environ: func() []string {
			var out []string
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			return out
		},
		NewExporter: func(timeout time.Duration) Exporter {
			exporter.timeout = timeout
			return exporter
		},
	}
	return env, stdout, stderr
}

// writeFile creates dir/name with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// readFile returns the content of path, failing the test if unreadable.
func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func args(a ...string) []string {
	return append([]string{"htmlify"}, a...)
}

func containsAll(s string, subs ...string) (string, bool) {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return sub, false
		}
	}
	return "", true
}
