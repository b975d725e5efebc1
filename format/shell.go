// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/z5labs/cascade/config"
)

// Shell renders each top-level entry as a KEY=VALUE line suitable for
// sourcing from a POSIX shell. Values are rendered by [FormatValue].
var Shell Formatter = FormatterFunc(formatShell)

// SpringShell renders the whole Config as JSON in a single
// SPRING_APPLICATION_JSON shell variable.
var SpringShell Formatter = FormatterFunc(func(c config.Config) (string, error) {
	return formatShell(config.Config{"SPRING_APPLICATION_JSON": c})
})

// ValueError occurs when a value can not be rendered for a shell.
type ValueError struct {
	Key   string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e ValueError) Error() string {
	return fmt.Sprintf("failed to format value for key %s: %s", e.Key, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e ValueError) Unwrap() error {
	return e.Cause
}

func formatShell(c config.Config) (string, error) {
	lines := make([]string, 0, len(c))
	for _, k := range config.SortedKeys(c) {
		v, err := FormatValue(c[k])
		if err != nil {
			return "", ValueError{Key: k, Cause: err}
		}
		lines = append(lines, k+"="+v)
	}
	return strings.Join(lines, "\n"), nil
}

// FormatValue renders v as a shell word.
//
// Strings are quoted, nil is empty and numbers are left bare. Everything
// else is encoded as compact JSON and then quoted.
func FormatValue(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return ShellQuote(x), nil
	case int:
		return strconv.FormatInt(int64(x), 10), nil
	case int8:
		return strconv.FormatInt(int64(x), 10), nil
	case int16:
		return strconv.FormatInt(int64(x), 10), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float32:
		return formatFloat(float64(x), 32), nil
	case float64:
		return formatFloat(x, 64), nil
	}

	s, err := compactJSON(v)
	if err != nil {
		return "", err
	}
	return ShellQuote(s), nil
}

// formatFloat renders f like encoding/json does: plain decimal notation
// between 1e-6 and 1e21, exponent notation outside of it.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	format := byte('f')
	if abs := math.Abs(f); abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) || bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}
	s := strconv.FormatFloat(f, format, -1, bits)
	if format == 'e' {
		// e-07 to e-7
		n := len(s)
		if n >= 4 && s[n-4] == 'e' && s[n-3] == '-' && s[n-2] == '0' {
			s = s[:n-2] + s[n-1:]
		}
	}
	return s
}

// ShellQuote wraps s in single quotes, closing and reopening the quoting
// around every embedded single quote.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
