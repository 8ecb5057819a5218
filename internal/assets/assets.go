package assets

// Names of the built-in assets.
const (
	MarkdownStyleName   = "markdown"
	CodeStyleName       = "code"
	ModelViewerTemplate = "model-viewer"
)
