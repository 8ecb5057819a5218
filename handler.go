package htmlify

import (
	"context"
	"fmt"
	"os"
)

// Handler renders one family of file types into an HTML fragment.
type Handler interface {
	// Name identifies the handler. Headers are deduplicated by name.
	Name() string

	// Header returns content placed once in the document head when at least
	// one file of this handler is rendered. Empty means no header.
	Header() string

	// Render reads the file at path and returns its HTML fragment.
	Render(ctx context.Context, path string) (string, error)
}

// HandlerOptions configures the built-in handlers.
// Zero values select the defaults.
type HandlerOptions struct {
	NormalizeMIME  bool        // image/jpg becomes image/jpeg
	ViewerURL      string      // model-viewer script, default DefaultViewerURL
	ViewerWidth    string      // CSS length, default 512px
	ViewerHeight   string      // CSS length, default 512px
	HighlightStyle string      // chroma style, default DefaultHighlightStyle
	Assets         AssetLoader // nil = embedded assets
}

// Handler defaults.
const (
	DefaultViewerURL      = "https://ajax.googleapis.com/ajax/libs/model-viewer/3.3.0/model-viewer.min.js"
	DefaultViewerSize     = "512px"
	DefaultHighlightStyle = "github"
)

func (o HandlerOptions) withDefaults() HandlerOptions {
	if o.ViewerURL == "" {
		o.ViewerURL = DefaultViewerURL
	}
	if o.ViewerWidth == "" {
		o.ViewerWidth = DefaultViewerSize
	}
	if o.ViewerHeight == "" {
		o.ViewerHeight = DefaultViewerSize
	}
	if o.HighlightStyle == "" {
		o.HighlightStyle = DefaultHighlightStyle
	}
	o.Assets = defaultAssets(o.Assets)
	return o
}

// readFile reads path whole. The error matches both ErrReadFile and the
// underlying fs error.
func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) // #nosec G304 -- paths are user-provided inputs
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
	}
	return data, nil
}
