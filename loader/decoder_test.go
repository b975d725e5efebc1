// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/z5labs/cascade/config"

	"github.com/stretchr/testify/assert"
)

type readFunc func([]byte) (int, error)

func (f readFunc) Read(b []byte) (int, error) {
	return f(b)
}

func TestDecoders(t *testing.T) {
	t.Run("will decode", func(t *testing.T) {
		testCases := []struct {
			Name     string
			Decoder  Decoder
			Doc      string
			Expected config.Config
		}{
			{
				Name:     "an empty JSON document",
				Decoder:  JSON,
				Doc:      ``,
				Expected: config.Config{},
			},
			{
				Name:     "a JSON object followed by whitespace",
				Decoder:  JSON,
				Doc:      "{\"A\": \"b\"}\n\t \n",
				Expected: config.Config{"A": "b"},
			},
			{
				Name:     "a JSON null",
				Decoder:  JSON,
				Doc:      `null`,
				Expected: config.Config{},
			},
			{
				Name:    "a JSON object",
				Decoder: JSON,
				Doc:     `{"A": 1, "B": {"C": "d"}, "E": [true]}`,
				Expected: config.Config{
					"A": float64(1),
					"B": map[string]any{"C": "d"},
					"E": []any{true},
				},
			},
			{
				Name:     "an empty YAML document",
				Decoder:  YAML,
				Doc:      ``,
				Expected: config.Config{},
			},
			{
				Name:    "a YAML mapping",
				Decoder: YAML,
				Doc:     "A: 1\nB:\n  C: d\nE:\n  - true\n",
				Expected: config.Config{
					"A": 1,
					"B": map[string]any{"C": "d"},
					"E": []any{true},
				},
			},
			{
				Name:    "a YAML mapping with non-string top-level keys",
				Decoder: YAML,
				Doc:     "1: one\ntrue: yes\n",
				Expected: config.Config{
					"1":    "one",
					"true": "yes",
				},
			},
			{
				Name:     "an empty TOML document",
				Decoder:  TOML,
				Doc:      ``,
				Expected: config.Config{},
			},
			{
				Name:    "a TOML document",
				Decoder: TOML,
				Doc:     "A = 1\nE = [true]\n\n[B]\nC = \"d\"\n",
				Expected: config.Config{
					"A": int64(1),
					"B": map[string]any{"C": "d"},
					"E": []any{true},
				},
			},
			{
				Name:     "an empty HCL document",
				Decoder:  HCL,
				Doc:      ``,
				Expected: config.Config{},
			},
			{
				Name:    "an HCL document",
				Decoder: HCL,
				Doc:     "A = 1\nB = { C = \"d\" }\nE = [true]\nF = null\n",
				Expected: config.Config{
					"A": float64(1),
					"B": map[string]any{"C": "d"},
					"E": []any{true},
					"F": nil,
				},
			},
		}

		for _, testCase := range testCases {
			t.Run(testCase.Name, func(t *testing.T) {
				c, err := testCase.Decoder.Decode(strings.NewReader(testCase.Doc))
				if !assert.Nil(t, err) {
					return
				}
				if !assert.Equal(t, testCase.Expected, c) {
					return
				}
			})
		}
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the document is malformed", func(t *testing.T) {
			testCases := []struct {
				Name    string
				Decoder Decoder
				Doc     string
				Target  func(error) bool
			}{
				{
					Name:    "JSON",
					Decoder: JSON,
					Doc:     `{"A":`,
					Target: func(err error) bool {
						var ierr InvalidJSONError
						return errors.As(err, &ierr)
					},
				},
				{
					Name:    "JSON with a second document",
					Decoder: JSON,
					Doc:     `{"A": 1} {"B": 2}`,
					Target: func(err error) bool {
						var ierr InvalidJSONError
						return errors.As(err, &ierr) && errors.Is(err, errTrailingData)
					},
				},
				{
					Name:    "JSON with trailing garbage",
					Decoder: JSON,
					Doc:     `{"A": 1}garbage`,
					Target: func(err error) bool {
						var ierr InvalidJSONError
						return errors.As(err, &ierr)
					},
				},
				{
					Name:    "JSON with an unbalanced brace",
					Decoder: JSON,
					Doc:     `{"A": 1}, "B": 2}`,
					Target: func(err error) bool {
						var ierr InvalidJSONError
						return errors.As(err, &ierr)
					},
				},
				{
					Name:    "YAML",
					Decoder: YAML,
					Doc:     "A: [1, 2",
					Target: func(err error) bool {
						var ierr InvalidYAMLError
						return errors.As(err, &ierr)
					},
				},
				{
					Name:    "TOML",
					Decoder: TOML,
					Doc:     "A = ",
					Target: func(err error) bool {
						var ierr InvalidTOMLError
						return errors.As(err, &ierr)
					},
				},
				{
					Name:    "HCL",
					Decoder: HCL,
					Doc:     "A = {",
					Target: func(err error) bool {
						var ierr InvalidHCLError
						return errors.As(err, &ierr)
					},
				},
			}

			for _, testCase := range testCases {
				t.Run(testCase.Name, func(t *testing.T) {
					_, err := testCase.Decoder.Decode(strings.NewReader(testCase.Doc))
					if !assert.Error(t, err) {
						return
					}
					if !assert.True(t, testCase.Target(err)) {
						return
					}
					if !assert.NotEmpty(t, err.Error()) {
						return
					}
				})
			}
		})

		t.Run("if the top-level value is not a mapping", func(t *testing.T) {
			_, err := JSON.Decode(strings.NewReader(`[1, 2, 3]`))

			var ierr InvalidJSONError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			if !assert.ErrorIs(t, ierr, errNotAnObject) {
				return
			}

			_, err = YAML.Decode(strings.NewReader("- 1\n- 2\n"))

			var yerr InvalidYAMLError
			if !assert.ErrorAs(t, err, &yerr) {
				return
			}
		})

		t.Run("if an HCL document contains blocks", func(t *testing.T) {
			_, err := HCL.Decode(strings.NewReader("server {\n  port = 80\n}\n"))

			var ierr InvalidHCLError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
		})

		t.Run("if an HCL document references variables", func(t *testing.T) {
			_, err := HCL.Decode(strings.NewReader("A = var.b\n"))

			var ierr InvalidHCLError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
		})

		t.Run("if the underlying io.Reader fails", func(t *testing.T) {
			readErr := errors.New("failed to read")
			r := readFunc(func(b []byte) (int, error) {
				return 0, readErr
			})

			_, err := HCL.Decode(r)
			if !assert.ErrorIs(t, err, readErr) {
				return
			}
		})
	})
}
