//go:build purego

package utils

import (
	"encoding/json" //nolint:depguard
	"io"
)

type JSONEncoder = json.Encoder
type JSONDecoder = json.Decoder

func MarshalJSON(val any) ([]byte, error) {
	return json.Marshal(val)
}

func MarshalJSONIndent(val any, indent string) ([]byte, error) {
	return json.MarshalIndent(val, "", indent)
}

func UnmarshalJSON(data []byte, val any) error {
	return json.Unmarshal(data, val)
}

func NewJSONEncoder(writer io.Writer) *JSONEncoder {
	return json.NewEncoder(writer)
}

func NewJSONDecoder(reader io.Reader) *JSONDecoder {
	return json.NewDecoder(reader)
}

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
