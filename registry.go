package htmlify

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Built-in extension tables.
var (
	ImageExtensions    = []string{"png", "jpg", "jpeg", "gif"}
	ModelExtensions    = []string{"glb", "gltf"}
	MarkdownExtensions = []string{"md", "markdown"}
	CodeExtensions     = []string{
		"go", "py", "js", "ts", "json", "yaml", "yml", "toml", "sh", "rs",
		"c", "h", "cpp", "java", "sql", "txt", "log", "csv",
	}
)

// Registry maps file extensions to handlers.
//
// Registration happens during setup; afterwards the registry is only read,
// so concurrent Lookup calls are safe.
type Registry struct {
	byAlias  map[string]Handler
	aliases  map[string][]string // handler name -> aliases, registration order
	handlers []Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byAlias: make(map[string]Handler),
		aliases: make(map[string][]string),
	}
}

// DefaultRegistry returns a registry with the image, model, markdown and code
// handlers bound to their built-in extensions.
func DefaultRegistry(opts HandlerOptions) (*Registry, error) {
	model, err := NewModelHandler(opts)
	if err != nil {
		return nil, err
	}
	markdown, err := NewMarkdownHandler(opts)
	if err != nil {
		return nil, err
	}
	code, err := NewCodeHandler(opts)
	if err != nil {
		return nil, err
	}

	r := NewRegistry()
	table := []struct {
		h       Handler
		aliases []string
	}{
		{NewImageHandler(opts), ImageExtensions},
		{model, ModelExtensions},
		{markdown, MarkdownExtensions},
		{code, CodeExtensions},
	}
	for _, entry := range table {
		if err := r.Register(entry.h, entry.aliases...); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register binds h to every alias. Aliases are case-folded and may carry a
// leading dot. Either all aliases are bound or none is.
func (r *Registry) Register(h Handler, aliases ...string) error {
	if h == nil {
		return ErrNilHandler
	}
	name := h.Name()
	if name == "" {
		return ErrEmptyHandlerName
	}
	if _, ok := r.aliases[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateHandler, name)
	}

	keys := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		key := foldExtension(alias)
		if key == "" {
			return fmt.Errorf("%w: handler %q", ErrEmptyAlias, name)
		}
		if existing, ok := r.byAlias[key]; ok {
			return fmt.Errorf("%w: %q is bound to %q, cannot bind to %q", ErrAliasCollision, key, existing.Name(), name)
		}
		if slices.Contains(keys, key) {
			continue
		}
		keys = append(keys, key)
	}

	for _, key := range keys {
		r.byAlias[key] = h
	}
	r.aliases[name] = keys
	r.handlers = append(r.handlers, h)
	return nil
}

// Lookup returns the handler bound to ext. Matching is case-insensitive and
// ignores one leading dot.
func (r *Registry) Lookup(ext string) (Handler, bool) {
	h, ok := r.byAlias[foldExtension(ext)]
	return h, ok
}

// Contains reports whether a handler is bound to ext.
func (r *Registry) Contains(ext string) bool {
	_, ok := r.Lookup(ext)
	return ok
}

// Extensions returns every bound alias, sorted.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byAlias))
	for ext := range r.byAlias {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// Handlers returns the handlers in registration order.
func (r *Registry) Handlers() []Handler {
	return slices.Clone(r.handlers)
}

// Aliases returns the aliases bound to the named handler, in registration
// order, or nil if no such handler is registered.
func (r *Registry) Aliases(name string) []string {
	return slices.Clone(r.aliases[name])
}

// foldExtension normalizes an extension for map lookup.
// A Caser holds state, so each call gets its own.
func foldExtension(ext string) string {
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	return cases.Fold().String(ext)
}
