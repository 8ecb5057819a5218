package htmlify

import (
	"errors"

	"github.com/alnah/go-htmlify/internal/assets"
)

// AssetLoader supplies the CSS and templates handlers put in report headers.
//
// The library provides NewAssetLoader() for a directory with fallback to the
// embedded defaults. Implement this interface for other backends.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	LoadTemplate(name string) (string, error)
}

// NewAssetLoader creates an AssetLoader for basePath.
// An empty basePath serves the embedded assets only. Otherwise files under
// basePath/styles and basePath/templates take precedence:
//   - styles/markdown.css, styles/code.css
//   - templates/model-viewer.html (html/template with .ViewerURL .Width .Height)
//
// Returns ErrInvalidAssetPath if basePath is not a readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// assetLoaderAdapter maps internal asset errors to public sentinels.
type assetLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *assetLoaderAdapter) LoadStyle(name string) (string, error) {
	content, err := a.resolver.LoadStyle(name)
	return content, convertAssetError(err)
}

func (a *assetLoaderAdapter) LoadTemplate(name string) (string, error) {
	content, err := a.resolver.LoadTemplate(name)
	return content, convertAssetError(err)
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrStyleNotFound),
		errors.Is(err, assets.ErrTemplateNotFound),
		errors.Is(err, assets.ErrInvalidAssetName):
		return &wrappedAssetError{sentinel: ErrAssetNotFound, original: err}
	case errors.Is(err, assets.ErrInvalidBasePath),
		errors.Is(err, assets.ErrPathTraversal):
		return &wrappedAssetError{sentinel: ErrInvalidAssetPath, original: err}
	default:
		return err
	}
}

// wrappedAssetError keeps the internal message but unwraps to the public
// sentinel, since internal error values are not importable by callers.
type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}

// defaultAssets returns loader, or the embedded assets when loader is nil.
func defaultAssets(loader AssetLoader) AssetLoader {
	if loader != nil {
		return loader
	}
	return assets.NewEmbeddedLoader()
}
