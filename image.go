package htmlify

import (
	"context"

	"github.com/alnah/go-htmlify/internal/datauri"
	"github.com/alnah/go-htmlify/internal/fileutil"
)

// ImageHandler embeds raster images as data URIs.
// Bytes are not inspected: the MIME subtype is the file extension.
type ImageHandler struct {
	normalizeMIME bool
}

// NewImageHandler creates an ImageHandler.
func NewImageHandler(opts HandlerOptions) *ImageHandler {
	return &ImageHandler{normalizeMIME: opts.NormalizeMIME}
}

// Name implements Handler.
func (h *ImageHandler) Name() string { return "image" }

// Header implements Handler. Images need no header.
func (h *ImageHandler) Header() string { return "" }

// Render returns <img src='data:image/<ext>;base64,...'/>.
func (h *ImageHandler) Render(ctx context.Context, path string) (string, error) {
	data, err := readFile(ctx, path)
	if err != nil {
		return "", err
	}
	return "<img src='" + datauri.Encode(h.mediaType(path), data) + "'/>", nil
}

func (h *ImageHandler) mediaType(path string) string {
	ext := fileutil.Extension(path)
	if h.normalizeMIME && ext == "jpg" {
		ext = "jpeg"
	}
	return "image/" + ext
}

var _ Handler = (*ImageHandler)(nil)
