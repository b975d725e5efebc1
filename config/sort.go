// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"context"
	"maps"
	"slices"
)

type sorter struct{}

// Sort normalizes string keyed maps so they serialize with their keys in
// ascending order. Go maps are unordered, so the order itself is produced
// by the formatters; Sort only settles the map representation. It implements both [ConfigTransformer] and [ValueTransformer].
//
// Values which are not maps are returned unchanged, as are maps with any
// non-string key. A map[any]any whose keys are all strings is returned as a
// new map[string]any. Sort only inspects one level; register it as a value
// transformer to have it applied to each top-level value as well.
var Sort = sorter{}

// TransformConfig implements the [ConfigTransformer] interface.
func (sorter) TransformConfig(_ context.Context, c Config) (Config, error) {
	out := make(Config, len(c))
	for _, k := range SortedKeys(c) {
		out[k] = c[k]
	}
	return out, nil
}

// TransformValue implements the [ValueTransformer] interface.
func (sorter) TransformValue(_ context.Context, v any) (any, error) {
	switch m := v.(type) {
	case Config:
		return Config(sortStringMap(m)), nil
	case map[string]any:
		return sortStringMap(m), nil
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			s, ok := k.(string)
			if !ok {
				return m, nil
			}
			out[s] = v
		}
		return out, nil
	default:
		return v, nil
	}
}

func sortStringMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for _, k := range SortedKeys(m) {
		out[k] = m[k]
	}
	return out
}

// SortedKeys returns the keys of m in ascending byte order.
func SortedKeys[M ~map[string]V, V any](m M) []string {
	return slices.Sorted(maps.Keys(m))
}
