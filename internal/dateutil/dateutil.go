// Package dateutil turns user-friendly timestamp formats into Go layouts.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFormat indicates an unusable timestamp format string.
var ErrInvalidFormat = errors.New("invalid timestamp format")

// MaxFormatLength limits format string length.
const MaxFormatLength = 64

// DefaultFormat renders "2026-10-18 14:03:59".
const DefaultFormat = "YYYY-MM-DD HH:mm:ss"

// tokens maps format tokens to Go layout components.
// Longer tokens come first so matching is greedy.
var tokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"hh", "03"},
	{"mm", "04"},
	{"ss", "05"},
	{"SSS", ".000"},
	{"ZZ", "-0700"},
	{"A", "PM"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named shortcuts, matched case-insensitively.
var Presets = map[string]string{
	"iso":     "YYYY-MM-DD[T]HH:mm:ssZZ",
	"default": DefaultFormat,
	"date":    "YYYY-MM-DD",
	"long":    "MMMM D, YYYY hh:mm A",
	"compact": "YYYYMMDD-HHmmss",
}

// Layout converts a format string (or preset name) into a Go time layout.
// Text inside brackets is copied literally: "[at] HH:mm" -> "at 15:04".
func Layout(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidFormat)
	}
	if len(format) > MaxFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidFormat, MaxFormatLength)
	}
	if preset, ok := Presets[strings.ToLower(format)]; ok {
		format = preset
	}

	var b strings.Builder
	b.Grow(len(format) + 8)

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidFormat, i)
			}
			b.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range tokens {
			if strings.HasPrefix(format[i:], t.token) {
				b.WriteString(t.layout)
				i += len(t.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(format[i])
			i++
		}
	}

	return b.String(), nil
}
