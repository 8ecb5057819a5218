package htmlify_test

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/alnah/go-htmlify"
)

// ---------------------------------------------------------------------------
// TestRegistry_Lookup - Case-insensitive lookup
// ---------------------------------------------------------------------------

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	r := htmlify.NewRegistry()
	img := &stubHandler{name: "image"}
	if err := r.Register(img, "png", "JPG", ".gif"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		ext    string
		wantOK bool
	}{
		{ext: "png", wantOK: true},
		{ext: "PNG", wantOK: true},
		{ext: "Png", wantOK: true},
		{ext: ".png", wantOK: true},
		{ext: "jpg", wantOK: true},
		{ext: "gif", wantOK: true},
		{ext: "GIF", wantOK: true},
		{ext: "xyz", wantOK: false},
		{ext: "", wantOK: false},
		{ext: "pn", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			t.Parallel()

			h, ok := r.Lookup(tt.ext)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.ext, ok, tt.wantOK)
			}
			if ok && h.Name() != "image" {
				t.Errorf("Lookup(%q) = %q, want image", tt.ext, h.Name())
			}
			if r.Contains(tt.ext) != tt.wantOK {
				t.Errorf("Contains(%q) = %v, want %v", tt.ext, !tt.wantOK, tt.wantOK)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRegistry_Register - Registration errors
// ---------------------------------------------------------------------------

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler htmlify.Handler
		aliases []string
		wantErr error
	}{
		{name: "nil handler", handler: nil, aliases: []string{"png"}, wantErr: htmlify.ErrNilHandler},
		{name: "empty name", handler: &stubHandler{}, aliases: []string{"png"}, wantErr: htmlify.ErrEmptyHandlerName},
		{name: "empty alias", handler: &stubHandler{name: "x"}, aliases: []string{"png", ""}, wantErr: htmlify.ErrEmptyAlias},
		{name: "dot only alias", handler: &stubHandler{name: "x"}, aliases: []string{"."}, wantErr: htmlify.ErrEmptyAlias},
		{name: "no aliases", handler: &stubHandler{name: "x"}},
		{name: "repeated alias in one call", handler: &stubHandler{name: "x"}, aliases: []string{"csv", "CSV"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := htmlify.NewRegistry()
			err := r.Register(tt.handler, tt.aliases...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Register() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil && len(r.Extensions()) != 0 {
				t.Errorf("Extensions() = %v after failed Register, want empty", r.Extensions())
			}
		})
	}
}

func TestRegistry_Register_Collision(t *testing.T) {
	t.Parallel()

	r := htmlify.NewRegistry()
	if err := r.Register(&stubHandler{name: "image"}, "png", "jpg"); err != nil {
		t.Fatalf("Register(image) error = %v", err)
	}

	err := r.Register(&stubHandler{name: "bitmap"}, "bmp", "PNG")
	if !errors.Is(err, htmlify.ErrAliasCollision) {
		t.Fatalf("Register(bitmap) error = %v, want ErrAliasCollision", err)
	}

	// All-or-nothing: bmp must not have been bound either.
	if r.Contains("bmp") {
		t.Error("Contains(bmp) = true after failed Register")
	}
	h, _ := r.Lookup("png")
	if h.Name() != "image" {
		t.Errorf("Lookup(png) = %q, want image", h.Name())
	}
	if got := len(r.Handlers()); got != 1 {
		t.Errorf("len(Handlers()) = %d, want 1", got)
	}
	if want := []string{"jpg", "png"}; !slices.Equal(r.Extensions(), want) {
		t.Errorf("Extensions() = %v, want %v", r.Extensions(), want)
	}
}

func TestRegistry_Register_DuplicateName(t *testing.T) {
	t.Parallel()

	r := htmlify.NewRegistry()
	if err := r.Register(&stubHandler{name: "code"}, "go"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	err := r.Register(&stubHandler{name: "code"}, "py")
	if !errors.Is(err, htmlify.ErrDuplicateHandler) {
		t.Errorf("Register() error = %v, want ErrDuplicateHandler", err)
	}
}

// ---------------------------------------------------------------------------
// TestRegistry_Listing - Extensions, Handlers, Aliases
// ---------------------------------------------------------------------------

func TestRegistry_Listing(t *testing.T) {
	t.Parallel()

	r := htmlify.NewRegistry()
	_ = r.Register(&stubHandler{name: "b"}, "zz", "aa")
	_ = r.Register(&stubHandler{name: "a"}, "mm")

	if want := []string{"aa", "mm", "zz"}; !slices.Equal(r.Extensions(), want) {
		t.Errorf("Extensions() = %v, want %v", r.Extensions(), want)
	}

	var names []string
	for _, h := range r.Handlers() {
		names = append(names, h.Name())
	}
	if want := []string{"b", "a"}; !slices.Equal(names, want) {
		t.Errorf("Handlers() names = %v, want %v", names, want)
	}

	if want := []string{"zz", "aa"}; !slices.Equal(r.Aliases("b"), want) {
		t.Errorf("Aliases(b) = %v, want %v", r.Aliases("b"), want)
	}
	if got := r.Aliases("missing"); got != nil {
		t.Errorf("Aliases(missing) = %v, want nil", got)
	}
}

// ---------------------------------------------------------------------------
// TestDefaultRegistry - Built-in table
// ---------------------------------------------------------------------------

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r, err := htmlify.DefaultRegistry(htmlify.HandlerOptions{})
	if err != nil {
		t.Fatalf("DefaultRegistry() error = %v", err)
	}

	groups := map[string][]string{
		"image":    htmlify.ImageExtensions,
		"model":    htmlify.ModelExtensions,
		"markdown": htmlify.MarkdownExtensions,
		"code":     htmlify.CodeExtensions,
	}
	for name, exts := range groups {
		for _, ext := range exts {
			h, ok := r.Lookup(ext)
			if !ok {
				t.Errorf("Lookup(%q) not found", ext)
				continue
			}
			if h.Name() != name {
				t.Errorf("Lookup(%q) = %q, want %q", ext, h.Name(), name)
			}
		}
	}

	var order []string
	for _, h := range r.Handlers() {
		order = append(order, h.Name())
	}
	if want := []string{"image", "model", "markdown", "code"}; !slices.Equal(order, want) {
		t.Errorf("Handlers() order = %v, want %v", order, want)
	}

	if r.Contains("xyz") {
		t.Error("Contains(xyz) = true, want false")
	}
}

func TestDefaultRegistry_UnknownStyle(t *testing.T) {
	t.Parallel()

	_, err := htmlify.DefaultRegistry(htmlify.HandlerOptions{HighlightStyle: "no-such-style"})
	if !errors.Is(err, htmlify.ErrUnknownStyle) {
		t.Errorf("DefaultRegistry() error = %v, want ErrUnknownStyle", err)
	}
}

func TestRegistry_ConcurrentLookup(t *testing.T) {
	t.Parallel()

	r, err := htmlify.DefaultRegistry(htmlify.HandlerOptions{})
	if err != nil {
		t.Fatalf("DefaultRegistry() error = %v", err)
	}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, ext := range []string{"PNG", "glb", "md", "go", "nope"} {
				r.Lookup(ext)
			}
		}()
	}
	wg.Wait()
}
