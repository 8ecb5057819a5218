// Package assets provides the CSS styles and HTML templates that handlers
// place in a report's head section.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in headers)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is what handlers receive. It tries the custom directory
// first and falls back to the embedded copy when an asset is not found, so a
// user can override only the model viewer header and keep the other styles.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   ├── markdown.css
//	│   └── code.css
//	└── templates/
//	    └── model-viewer.html    # html/template: .ViewerURL .Width .Height
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
