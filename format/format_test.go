// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package format

import (
	"math"
	"testing"

	"github.com/z5labs/cascade/config"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	t.Run("will return the formatter", func(t *testing.T) {
		t.Run("for every registered id", func(t *testing.T) {
			for _, id := range IDs() {
				f, err := Lookup(id)
				if !assert.Nil(t, err, id) {
					return
				}
				if !assert.NotNil(t, f, id) {
					return
				}
			}
		})
	})

	t.Run("will return UnknownFormatterError", func(t *testing.T) {
		t.Run("if the id is not registered", func(t *testing.T) {
			_, err := Lookup("xml")

			var uerr UnknownFormatterError
			if !assert.ErrorAs(t, err, &uerr) {
				return
			}
			if !assert.Equal(t, "xml", uerr.ID) {
				return
			}
			if !assert.Equal(t, "unknown formatter: xml", uerr.Error()) {
				return
			}
		})
	})
}

func TestIDs(t *testing.T) {
	assert.Equal(t, []string{"json", "shell", "spring_shell"}, IDs())
}

func TestJSON(t *testing.T) {
	testCases := []struct {
		name     string
		config   config.Config
		expected string
	}{
		{
			name:     "empty config",
			config:   config.Config{},
			expected: "{}",
		},
		{
			name:   "keys are sorted and nested maps indented",
			config: config.Config{"b": 1, "a": map[string]any{"y": true, "x": "<&>"}},
			expected: `{
  "a": {
    "x": "<&>",
    "y": true
  },
  "b": 1
}`,
		},
		{
			name:     "non-string keys are stringified",
			config:   config.Config{"a": map[any]any{1: "one", true: []any{map[any]any{"k": nil}}}},
			expected: "{\n  \"a\": {\n    \"1\": \"one\",\n    \"true\": [\n      {\n        \"k\": null\n      }\n    ]\n  }\n}",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := JSON.Format(tc.config)
			if !assert.Nil(t, err) {
				return
			}
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestShell(t *testing.T) {
	t.Run("will render sorted KEY=VALUE lines", func(t *testing.T) {
		out, err := Shell.Format(config.Config{
			"PORT":    8080,
			"HOST":    "localhost",
			"EMPTY":   nil,
			"ENABLED": true,
			"TAGS":    []any{"a", "b"},
		})
		if !assert.Nil(t, err) {
			return
		}

		expected := `EMPTY=
ENABLED='true'
HOST='localhost'
PORT=8080
TAGS='["a","b"]'`
		assert.Equal(t, expected, out)
	})

	t.Run("will render nothing for an empty config", func(t *testing.T) {
		out, err := Shell.Format(config.Config{})
		if !assert.Nil(t, err) {
			return
		}
		assert.Empty(t, out)
	})

	t.Run("will return ValueError if a value can not be encoded", func(t *testing.T) {
		_, err := Shell.Format(config.Config{"CH": make(chan int)})

		var verr ValueError
		if !assert.ErrorAs(t, err, &verr) {
			return
		}
		assert.Equal(t, "CH", verr.Key)
	})
}

func TestSpringShell(t *testing.T) {
	out, err := SpringShell.Format(config.Config{
		"server": map[string]any{"port": 8080},
		"name":   "it's",
	})
	if !assert.Nil(t, err) {
		return
	}

	expected := `SPRING_APPLICATION_JSON='{"name":"it'"'"'s","server":{"port":8080}}'`
	assert.Equal(t, expected, out)
}

func TestFormatValue(t *testing.T) {
	testCases := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "nil", value: nil, expected: ""},
		{name: "string", value: "hello world", expected: "'hello world'"},
		{name: "empty string", value: "", expected: "''"},
		{name: "int", value: 42, expected: "42"},
		{name: "negative int64", value: int64(-7), expected: "-7"},
		{name: "uint8", value: uint8(255), expected: "255"},
		{name: "integral float", value: float64(8080), expected: "8080"},
		{name: "fractional float", value: 1.5, expected: "1.5"},
		{name: "large float", value: 1e21, expected: "1e+21"},
		{name: "largest plain float", value: 1e20, expected: "100000000000000000000"},
		{name: "small float", value: 1e-7, expected: "1e-7"},
		{name: "smallest plain float", value: 1e-6, expected: "0.000001"},
		{name: "negative small float", value: -2.5e-8, expected: "-2.5e-8"},
		{name: "float32", value: float32(0.25), expected: "0.25"},
		{name: "infinity", value: math.Inf(1), expected: "Infinity"},
		{name: "bool", value: false, expected: "'false'"},
		{name: "slice", value: []any{1, "two"}, expected: `'[1,"two"]'`},
		{name: "map", value: map[string]any{"b": 2, "a": 1}, expected: `'{"a":1,"b":2}'`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := FormatValue(tc.value)
			if !assert.Nil(t, err) {
				return
			}
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestShellQuote(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{in: "", expected: "''"},
		{in: "plain", expected: "'plain'"},
		{in: "it's", expected: `'it'"'"'s'`},
		{in: "$HOME `id`", expected: "'$HOME `id`'"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, ShellQuote(tc.in))
		})
	}
}
