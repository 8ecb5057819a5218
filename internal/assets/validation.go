package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects empty names and names containing path
// separators, dots or NUL, so a name always maps to one file in one directory.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
