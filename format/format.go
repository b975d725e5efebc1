// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package format

import (
	"fmt"
	"maps"
	"slices"

	"github.com/z5labs/cascade/config"
)

// Formatter renders a Config.
type Formatter interface {
	Format(config.Config) (string, error)
}

// FormatterFunc is a functional implementation of the [Formatter] interface.
type FormatterFunc func(config.Config) (string, error)

// Format implements the [Formatter] interface.
func (f FormatterFunc) Format(c config.Config) (string, error) {
	return f(c)
}

var formatters = map[string]Formatter{
	"json":         JSON,
	"shell":        Shell,
	"spring_shell": SpringShell,
}

// UnknownFormatterError occurs when no formatter is registered for an id.
type UnknownFormatterError struct {
	ID string
}

// Error implements the [builtin.error] interface.
func (e UnknownFormatterError) Error() string {
	return fmt.Sprintf("unknown formatter: %s", e.ID)
}

// Lookup returns the built-in formatter registered as id.
func Lookup(id string) (Formatter, error) {
	f, ok := formatters[id]
	if !ok {
		return nil, UnknownFormatterError{ID: id}
	}
	return f, nil
}

// IDs returns the ids of all built-in formatters in ascending order.
func IDs() []string {
	return slices.Sorted(maps.Keys(formatters))
}
