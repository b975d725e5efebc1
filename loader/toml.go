// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loader

import (
	"fmt"
	"io"

	"github.com/z5labs/cascade/config"

	"github.com/pelletier/go-toml/v2"
)

// InvalidTOMLError occurs if a document contains invalid TOML.
type InvalidTOMLError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e InvalidTOMLError) Error() string {
	return fmt.Sprintf("invalid toml: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidTOMLError) Unwrap() error {
	return e.Cause
}

// TOML decodes a TOML document. Integers are decoded as int64 and floats
// as float64.
var TOML Decoder = DecoderFunc(decodeTOML)

func decodeTOML(r io.Reader) (config.Config, error) {
	m := make(map[string]any)
	err := toml.NewDecoder(r).Decode(&m)
	if err != nil {
		return nil, InvalidTOMLError{Cause: err}
	}
	return config.Config(m), nil
}
