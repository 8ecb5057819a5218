package htmlify

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-htmlify/internal/assets"
)

// CodeHandler renders source and text files as highlighted <pre> blocks.
type CodeHandler struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
	header    string
}

// NewCodeHandler creates a CodeHandler.
// Returns ErrUnknownStyle if opts.HighlightStyle is not a chroma style.
func NewCodeHandler(opts HandlerOptions) (*CodeHandler, error) {
	opts = opts.withDefaults()

	style, err := lookupStyle(opts.HighlightStyle)
	if err != nil {
		return nil, err
	}

	css, err := opts.Assets.LoadStyle(assets.CodeStyleName)
	if err != nil {
		return nil, err
	}
	header, err := styleHeader(css, style)
	if err != nil {
		return nil, err
	}

	return &CodeHandler{
		style:     style,
		formatter: newFormatter(),
		header:    header,
	}, nil
}

// Name implements Handler.
func (h *CodeHandler) Name() string { return "code" }

// Header returns the code stylesheet and highlight CSS.
func (h *CodeHandler) Header() string { return h.header }

// Render highlights the file at path. The lexer is picked by file name,
// then by content, then plain text.
func (h *CodeHandler) Render(ctx context.Context, path string) (string, error) {
	data, err := readFile(ctx, path)
	if err != nil {
		return "", err
	}
	source := string(data)

	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", fmt.Errorf("%w: %s: tokenising: %v", ErrHTMLConversion, path, err)
	}

	var b strings.Builder
	b.WriteString("<div class='htmlify-code'>\n")
	if err := h.formatter.Format(&b, h.style, iterator); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrHTMLConversion, path, err)
	}
	b.WriteString("</div>")
	return b.String(), nil
}

// HighlightStyles lists the available chroma style names, sorted.
func HighlightStyles() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// lookupStyle returns the named chroma style. styles.Get silently falls back,
// so the registry is checked directly.
func lookupStyle(name string) (*chroma.Style, error) {
	style, ok := styles.Registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return style, nil
}

func newFormatter() *chromahtml.Formatter {
	return chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.TabWidth(4),
	)
}

// styleHeader wraps css and the chroma classes for style in a <style> block.
func styleHeader(css string, style *chroma.Style) (string, error) {
	var b strings.Builder
	b.WriteString("<style>\n")
	b.WriteString(css)
	if err := newFormatter().WriteCSS(&b, style); err != nil {
		return "", fmt.Errorf("writing highlight CSS: %w", err)
	}
	b.WriteString("</style>")
	return b.String(), nil
}

var _ Handler = (*CodeHandler)(nil)
