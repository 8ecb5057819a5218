package htmlify_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-htmlify"
)

func TestNewAssetLoader(t *testing.T) {
	t.Parallel()

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		loader, err := htmlify.NewAssetLoader("")
		if err != nil {
			t.Fatalf("NewAssetLoader() error = %v", err)
		}
		css, err := loader.LoadStyle("markdown")
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if !strings.Contains(css, ".htmlify-note") {
			t.Errorf("LoadStyle(markdown) = %q, want .htmlify-note rules", css)
		}
	})

	t.Run("custom style wins", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "styles/code.css", []byte(".mine{}"))
		loader, err := htmlify.NewAssetLoader(dir)
		if err != nil {
			t.Fatalf("NewAssetLoader() error = %v", err)
		}
		css, err := loader.LoadStyle("code")
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if css != ".mine{}" {
			t.Errorf("LoadStyle(code) = %q, want custom content", css)
		}
		// Missing custom template falls back to the embedded one.
		if _, err := loader.LoadTemplate("model-viewer"); err != nil {
			t.Errorf("LoadTemplate() error = %v", err)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := htmlify.NewAssetLoader(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, htmlify.ErrInvalidAssetPath) {
			t.Errorf("NewAssetLoader() error = %v, want ErrInvalidAssetPath", err)
		}
	})

	t.Run("file instead of directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(path, nil, 0o600); err != nil {
			t.Fatal(err)
		}
		_, err := htmlify.NewAssetLoader(path)
		if !errors.Is(err, htmlify.ErrInvalidAssetPath) {
			t.Errorf("NewAssetLoader() error = %v, want ErrInvalidAssetPath", err)
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()

		loader, _ := htmlify.NewAssetLoader("")
		_, err := loader.LoadStyle("nope")
		if !errors.Is(err, htmlify.ErrAssetNotFound) {
			t.Errorf("LoadStyle() error = %v, want ErrAssetNotFound", err)
		}
	})
}
