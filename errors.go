package htmlify

import "errors"

// Registry errors.
var (
	ErrNilHandler       = errors.New("handler cannot be nil")
	ErrEmptyHandlerName = errors.New("handler name cannot be empty")
	ErrDuplicateHandler = errors.New("handler already registered")
	ErrEmptyAlias       = errors.New("extension alias cannot be empty")
	ErrAliasCollision   = errors.New("extension alias already registered")
)

// Rendering errors.
var (
	ErrReadFile       = errors.New("failed to read input file")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrHeaderTemplate = errors.New("header template rendering failed")
)

// Handler configuration errors.
var (
	ErrUnknownStyle     = errors.New("unknown highlight style")
	ErrAssetNotFound    = errors.New("asset not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// PDF export errors.
var (
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)

// Report errors.
var ErrInvalidTimestampFormat = errors.New("invalid timestamp format")
