// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/z5labs/cascade/config"
)

// JSON renders a Config as JSON indented by two spaces.
var JSON Formatter = FormatterFunc(formatJSON)

func formatJSON(c config.Config) (string, error) {
	b, err := marshalJSON(map[string]any(c), "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func marshalJSON(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)

	err := enc.Encode(jsonSafe(v))
	if err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// jsonSafe rewrites nested maps with non-string keys, which encoding/json
// refuses, into string keyed maps.
func jsonSafe(v any) any {
	switch x := v.(type) {
	case config.Config:
		return jsonSafe(map[string]any(x))
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, v := range x {
			out[k] = jsonSafe(v)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, v := range x {
			out[fmt.Sprint(k)] = jsonSafe(v)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, v := range x {
			out[i] = jsonSafe(v)
		}
		return out
	default:
		return v
	}
}

func compactJSON(v any) (string, error) {
	b, err := marshalJSON(v, "")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
