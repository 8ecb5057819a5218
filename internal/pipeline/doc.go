// Package pipeline turns a Markdown note into a self-contained HTML fragment.
//
// Stages, in order:
//   - CRLF and CR line endings normalized to LF
//   - Markdown to HTML via goldmark (GFM, footnotes, ==text== as <mark>,
//     class-based highlighting)
//   - sanitization via bluemonday (scripts, handlers and iframes removed)
//   - relative image inlining: img[src] paths next to the note become
//     base64 data URIs
//
// Sanitization runs before inlining so the generated data URIs never pass
// through the URL filter.
package pipeline
