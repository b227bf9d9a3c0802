// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"errors"
	"io"
)

// ErrTrailingData means input continued after one complete JSON value.
var ErrTrailingData = errors.New("jsonutil: trailing data after JSON value")

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// DecodeStrict reads one JSON value from r into v, rejecting unknown
// fields and trailing input.
func DecodeStrict(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return ErrTrailingData
	}
	return nil
}
