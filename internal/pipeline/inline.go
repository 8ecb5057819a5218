package pipeline

import (
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-htmlify/internal/datauri"
)

// MaxInlineImageSize caps a single inlined note image at 32MB.
var MaxInlineImageSize int64 = 32 << 20

// InlineRelativeImages replaces relative img[src] references in an HTML
// fragment with base64 data URIs read from sourceDir, so a note keeps its
// pictures once embedded in the report. If sourceDir is empty, the fragment
// is returned unchanged.
//
// Left as-is:
//   - URLs (http, https, file, data, protocol-relative) and absolute paths
//   - paths escaping sourceDir, directly or through a symlink
//   - files that are missing, unreadable or larger than MaxInlineImageSize
func InlineRelativeImages(fragment, sourceDir string) (string, error) {
	if sourceDir == "" {
		return fragment, nil
	}

	absSourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}
	// Compare real paths: images are resolved through symlinks below.
	if realDir, err := filepath.EvalSymlinks(absSourceDir); err == nil {
		absSourceDir = realDir
	}

	root, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	inlineNode(root, absSourceDir)

	return renderFragment(root)
}

// parseFragment parses HTML in a body context and hangs the resulting nodes
// off a document node for uniform traversal.
func parseFragment(content string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// renderFragment renders the children of root without any wrapper.
func renderFragment(root *html.Node) (string, error) {
	var buf strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func inlineNode(n *html.Node, sourceDir string) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Img {
		inlineSrc(n, sourceDir)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		inlineNode(c, sourceDir)
	}
}

func inlineSrc(n *html.Node, sourceDir string) {
	for i, attr := range n.Attr {
		if attr.Key != "src" || !isRelativePath(attr.Val) {
			continue
		}

		// Markdown link destinations are URL-encoded ("my%20shot.png").
		rel, err := url.PathUnescape(attr.Val)
		if err != nil {
			continue
		}
		absPath, ok := resolveUnderDir(filepath.Join(sourceDir, filepath.FromSlash(rel)), sourceDir)
		if !ok {
			continue
		}

		data, ok := readBounded(absPath)
		if !ok {
			continue
		}
		n.Attr[i].Val = datauri.Encode(mediaTypeFor(absPath), data)
	}
}

// readBounded reads a regular file no larger than MaxInlineImageSize.
func readBounded(path string) ([]byte, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() || info.Size() > MaxInlineImageSize {
		return nil, false
	}
	data, err := os.ReadFile(path) // #nosec G304 -- containment checked by caller
	if err != nil {
		return nil, false
	}
	return data, true
}

// mediaTypeFor guesses a media type from the file extension.
func mediaTypeFor(path string) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); t != "" {
		// Drop parameters such as "; charset=utf-8" from svg/text types.
		if base, _, ok := strings.Cut(t, ";"); ok {
			return strings.TrimSpace(base)
		}
		return t
	}
	return "application/octet-stream"
}

// isRelativePath returns true if the src should be resolved against the note.
func isRelativePath(path string) bool {
	if path == "" || strings.HasPrefix(path, "#") {
		return false
	}
	for _, prefix := range []string{"http://", "https://", "file://", "data:", "//"} {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return !filepath.IsAbs(path)
}

// resolveUnderDir follows symlinks in absPath and returns the real path if
// it stays under dir. Missing files are rejected.
func resolveUnderDir(absPath, dir string) (string, bool) {
	if !isPathUnderDir(absPath, dir) {
		return "", false
	}
	realPath, err := filepath.EvalSymlinks(absPath)
	if err != nil || !isPathUnderDir(realPath, dir) {
		return "", false
	}
	return realPath, true
}

// isPathUnderDir checks if absPath is lexically under dir.
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)
	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}
