// Package json decodes fingerprint inputs and encodes results with sonic.
//
// Numbers decode as [encoding/json.Number] so integer literals of any size
// keep their exact value until they are hashed.
package json

import (
	"io"

	"github.com/bytedance/sonic"
)

var api = sonic.Config{
	EscapeHTML:       true,
	SortMapKeys:      true,
	CompactMarshaler: true,
	CopyString:       true,
	ValidateString:   true,
	UseNumber:        true,
}.Froze()

// Marshal encodes a Go value as JSON.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// Decode reads one JSON document from r into plain Go values: map[string]any,
// []any, json.Number, string, bool or nil.
func Decode(r io.Reader) (any, error) {
	var v any
	if err := api.NewDecoder(r).Decode(&v); err != nil {
		return nil, err
	}

	return v, nil
}
