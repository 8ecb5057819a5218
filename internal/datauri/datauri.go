// Package datauri builds RFC 2397 base64 data URIs.
package datauri

import (
	"encoding/base64"
	"strings"
)

// Encode returns "data:<mediaType>;base64,<data>".
func Encode(mediaType string, data []byte) string {
	var b strings.Builder
	b.Grow(len("data:;base64,") + len(mediaType) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString("data:")
	b.WriteString(mediaType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}
