// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/z5labs/cascade/config"
)

// InvalidJSONError occurs if a document contains invalid JSON.
type InvalidJSONError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e InvalidJSONError) Error() string {
	return fmt.Sprintf("invalid json: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidJSONError) Unwrap() error {
	return e.Cause
}

// JSON decodes a single JSON object. Numbers are decoded as float64 and
// anything but whitespace after the object is an error.
var JSON Decoder = DecoderFunc(decodeJSON)

var errTrailingData = errors.New("unexpected data after top-level value")

func decodeJSON(r io.Reader) (config.Config, error) {
	dec := json.NewDecoder(r)

	var v any
	err := dec.Decode(&v)
	if errors.Is(err, io.EOF) {
		return config.Config{}, nil
	}
	if err != nil {
		return nil, InvalidJSONError{Cause: err}
	}

	// only whitespace may follow the document
	err = dec.Decode(&struct{}{})
	if err == nil {
		return nil, InvalidJSONError{Cause: errTrailingData}
	}
	if !errors.Is(err, io.EOF) {
		return nil, InvalidJSONError{Cause: err}
	}

	c, err := toConfig(v)
	if err != nil {
		return nil, InvalidJSONError{Cause: err}
	}
	return c, nil
}
