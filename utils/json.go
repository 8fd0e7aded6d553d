//go:build !purego

package utils

import (
	"io"

	gojson "github.com/goccy/go-json" //nolint:depguard
)

type JSONEncoder = gojson.Encoder
type JSONDecoder = gojson.Decoder

var encodeOptions = []gojson.EncodeOptionFunc{gojson.DisableHTMLEscape(), gojson.DisableNormalizeUTF8()}

func MarshalJSON(val any) ([]byte, error) {
	return gojson.MarshalWithOption(val, encodeOptions...)
}

func MarshalJSONIndent(val any, indent string) ([]byte, error) {
	return gojson.MarshalIndentWithOption(val, "", indent, encodeOptions...)
}

func UnmarshalJSON(data []byte, val any) error {
	return gojson.UnmarshalWithOption(data, val)
}

func NewJSONEncoder(writer io.Writer) *JSONEncoder {
	return gojson.NewEncoder(writer)
}

func NewJSONDecoder(reader io.Reader) *JSONDecoder {
	return gojson.NewDecoder(reader)
}

// WriteJSON Marshals val and writes it to writer followed by a newline
// An empty indent produces compact output
func WriteJSON(writer io.Writer, val any, indent string) error {
	var buf []byte
	var err error
	if indent == "" {
		buf, err = MarshalJSON(val)
	} else {
		buf, err = MarshalJSONIndent(val, indent)
	}
	if err != nil {
		return err
	}
	_, err = writer.Write(append(buf, '\n'))
	return err
}
