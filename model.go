package htmlify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/alnah/go-htmlify/internal/assets"
	"github.com/alnah/go-htmlify/internal/datauri"
	"github.com/alnah/go-htmlify/internal/fileutil"
)

// ModelHandler embeds glTF models in <model-viewer> elements.
type ModelHandler struct {
	header string
}

// modelHeaderData feeds the model-viewer header template.
type modelHeaderData struct {
	ViewerURL string
	Width     string
	Height    string
}

// NewModelHandler creates a ModelHandler. The header is rendered once here
// from the model-viewer template, so Header stays pure.
func NewModelHandler(opts HandlerOptions) (*ModelHandler, error) {
	opts = opts.withDefaults()

	tmplContent, err := opts.Assets.LoadTemplate(assets.ModelViewerTemplate)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(assets.ModelViewerTemplate).Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHeaderTemplate, err)
	}

	var buf bytes.Buffer
	data := modelHeaderData{
		ViewerURL: opts.ViewerURL,
		Width:     opts.ViewerWidth,
		Height:    opts.ViewerHeight,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHeaderTemplate, err)
	}

	return &ModelHandler{header: buf.String()}, nil
}

// Name implements Handler.
func (h *ModelHandler) Name() string { return "model" }

// Header returns the model-viewer script tag and sizing style.
func (h *ModelHandler) Header() string { return h.header }

// Render returns a <model-viewer> element with the model as a data URI.
// glb files are gltf-binary; everything else is gltf-text.
func (h *ModelHandler) Render(ctx context.Context, path string) (string, error) {
	data, err := readFile(ctx, path)
	if err != nil {
		return "", err
	}

	format := "gltf-text"
	if fileutil.Extension(path) == "glb" {
		format = "gltf-binary"
	}

	src := datauri.Encode("model/"+format, data)
	return "<model-viewer camera-controls src='" + src + "'></model-viewer>", nil
}

var _ Handler = (*ModelHandler)(nil)
