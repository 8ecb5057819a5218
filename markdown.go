package htmlify

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/alnah/go-htmlify/internal/assets"
	"github.com/alnah/go-htmlify/internal/pipeline"
)

// MarkdownHandler renders Markdown notes to sanitized HTML.
// Relative images next to the note are inlined as data URIs.
type MarkdownHandler struct {
	renderer *pipeline.NoteRenderer
	header   string
}

// NewMarkdownHandler creates a MarkdownHandler.
// Returns ErrUnknownStyle if opts.HighlightStyle is not a chroma style.
func NewMarkdownHandler(opts HandlerOptions) (*MarkdownHandler, error) {
	opts = opts.withDefaults()

	style, err := lookupStyle(opts.HighlightStyle)
	if err != nil {
		return nil, err
	}

	css, err := opts.Assets.LoadStyle(assets.MarkdownStyleName)
	if err != nil {
		return nil, err
	}
	header, err := styleHeader(css, style)
	if err != nil {
		return nil, err
	}

	return &MarkdownHandler{
		renderer: pipeline.NewNoteRenderer(style.Name),
		header:   header,
	}, nil
}

// Name implements Handler.
func (h *MarkdownHandler) Name() string { return "markdown" }

// Header returns the note stylesheet and highlight CSS.
func (h *MarkdownHandler) Header() string { return h.header }

// Render converts the note at path to an HTML fragment.
func (h *MarkdownHandler) Render(ctx context.Context, path string) (string, error) {
	content, err := readFile(ctx, path)
	if err != nil {
		return "", err
	}

	fragment, err := h.renderer.Render(ctx, content, filepath.Dir(path))
	if err != nil {
		if errors.Is(err, pipeline.ErrHTMLConversion) {
			return "", fmt.Errorf("%w: %s: %v", ErrHTMLConversion, path, err)
		}
		return "", err
	}
	return "<div class='htmlify-note'>\n" + fragment + "</div>", nil
}

var _ Handler = (*MarkdownHandler)(nil)
