package htmlify_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// stubHandler is a Handler with scripted output.
type stubHandler struct {
	name   string
	header string
	render func(ctx context.Context, path string) (string, error)
}

func (s *stubHandler) Name() string   { return s.name }
func (s *stubHandler) Header() string { return s.header }

func (s *stubHandler) Render(ctx context.Context, path string) (string, error) {
	if s.render == nil {
		return "<p>" + path + "</p>", nil
	}
	return s.render(ctx, path)
}

// writeFile creates dir/name with data and returns its path.
func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("creating directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// pngBytes is a PNG signature plus junk; handlers never decode images.
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00, 0xff}
