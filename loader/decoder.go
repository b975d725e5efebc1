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
)

// Decoder parses a single configuration document.
type Decoder interface {
	Decode(io.Reader) (config.Config, error)
}

// DecoderFunc is a functional implementation of the [Decoder] interface.
type DecoderFunc func(io.Reader) (config.Config, error)

// Decode implements the [Decoder] interface.
func (f DecoderFunc) Decode(r io.Reader) (config.Config, error) {
	return f(r)
}

var errNotAnObject = errors.New("top-level value must be a mapping")

// toConfig converts a generically decoded document into a Config. Empty
// documents become an empty Config and non-string top-level keys are
// stringified.
func toConfig(v any) (config.Config, error) {
	switch m := v.(type) {
	case nil:
		return config.Config{}, nil
	case map[string]any:
		return config.Config(m), nil
	case map[any]any:
		c := make(config.Config, len(m))
		for k, v := range m {
			c[fmt.Sprint(k)] = v
		}
		return c, nil
	default:
		return nil, errNotAnObject
	}
}
