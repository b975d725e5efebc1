// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loader

import (
	"errors"
	"fmt"
	"io"

	"github.com/z5labs/cascade/config"

	"gopkg.in/yaml.v3"
)

// InvalidYAMLError occurs if a document contains invalid YAML.
type InvalidYAMLError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e InvalidYAMLError) Error() string {
	return fmt.Sprintf("invalid yaml: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidYAMLError) Unwrap() error {
	return e.Cause
}

// YAML decodes the first document of a YAML stream. Only its top-level
// mapping keys are stringified; nested mappings with non-string keys are
// kept as map[any]any.
var YAML Decoder = DecoderFunc(decodeYAML)

func decodeYAML(r io.Reader) (config.Config, error) {
	var v any
	err := yaml.NewDecoder(r).Decode(&v)
	if errors.Is(err, io.EOF) {
		return config.Config{}, nil
	}
	if err != nil {
		return nil, InvalidYAMLError{Cause: err}
	}

	c, err := toConfig(v)
	if err != nil {
		return nil, InvalidYAMLError{Cause: err}
	}
	return c, nil
}
