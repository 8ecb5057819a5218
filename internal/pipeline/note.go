package pipeline

import (
	"context"
	"fmt"
)

// NoteRenderer chains conversion, sanitization and image inlining.
type NoteRenderer struct {
	converter HTMLConverter
	sanitizer *Sanitizer
}

// NewNoteRenderer creates a NoteRenderer highlighting code in style.
func NewNoteRenderer(style string) *NoteRenderer {
	return &NoteRenderer{
		converter: NewGoldmarkConverter(style),
		sanitizer: NewSanitizer(),
	}
}

// Render converts a note whose relative images live in sourceDir.
func (r *NoteRenderer) Render(ctx context.Context, content []byte, sourceDir string) (string, error) {
	fragment, err := r.converter.ToHTML(ctx, preprocessNote(content))
	if err != nil {
		return "", err
	}

	fragment = r.sanitizer.Sanitize(fragment)

	fragment, err = InlineRelativeImages(fragment, sourceDir)
	if err != nil {
		return "", fmt.Errorf("inlining images: %w", err)
	}
	return fragment, nil
}
