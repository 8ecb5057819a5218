package datauri

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

var errNotDataURI = errors.New("not a base64 data URI")

// decode splits a base64 data URI into its media type and payload.
func decode(uri string) (mediaType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, errNotDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, errNotDataURI
	}
	mediaType, ok = strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, errNotDataURI
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return mediaType, data, nil
}

func TestEncode(t *testing.T) {
	t.Parallel()

	got := Encode("image/png", []byte("hi"))
	if got != "data:image/png;base64,aGk=" {
		t.Errorf("Encode() = %q", got)
	}
	if got := Encode("model/gltf-binary", nil); got != "data:model/gltf-binary;base64," {
		t.Errorf("Encode(nil) = %q", got)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	payloads := [][]byte{
		{},
		{0x00},
		{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'},
		bytes.Repeat([]byte{0xff, 0x00, 0x7f}, 1000),
	}

	for _, want := range payloads {
		mediaType, got, err := decode(Encode("image/gif", want))
		if err != nil {
			t.Fatalf("decode() error = %v", err)
		}
		if mediaType != "image/gif" {
			t.Errorf("media type = %q, want image/gif", mediaType)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("round trip changed %d bytes", len(want))
		}
	}
}
