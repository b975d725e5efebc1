// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"context"
	"fmt"
	"maps"

	"dario.cat/mergo"
)

// Merger combines a previously accumulated Config with the current one.
//
// Mergers are applied strictly left to right so implementations do not need
// to be associative or commutative, only deterministic.
type Merger interface {
	Merge(ctx context.Context, prev, curr Config) (Config, error)
}

// MergerFunc is a functional implementation of the [Merger] interface.
type MergerFunc func(context.Context, Config, Config) (Config, error)

// Merge implements the [Merger] interface.
func (f MergerFunc) Merge(ctx context.Context, prev, curr Config) (Config, error) {
	return f(ctx, prev, curr)
}

// Shallow overrides top-level keys of prev with those of curr. Keys unique to
// either side are preserved and nested values are replaced, not merged.
var Shallow Merger = MergerFunc(shallow)

func shallow(_ context.Context, prev, curr Config) (Config, error) {
	m := make(Config, len(prev)+len(curr))
	maps.Copy(m, prev)
	maps.Copy(m, curr)
	return m, nil
}

// Sorted wraps m and passes each of its results through [Sort].
//
// A Config is a Go map and has no key order of its own, so Sorted returns a
// fresh Config equal to the wrapped result. Ascending key order only shows
// up once the Config is formatted. To normalize nested map[any]any values
// as well, register [Sort] as a value transformer.
func Sorted(m Merger) Merger {
	return MergerFunc(func(ctx context.Context, prev, curr Config) (Config, error) {
		merged, err := m.Merge(ctx, prev, curr)
		if err != nil {
			return nil, err
		}
		return Sort.TransformConfig(ctx, merged)
	})
}

// DeepMergeError occurs when [Deep] fails to merge two configs.
type DeepMergeError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e DeepMergeError) Error() string {
	return fmt.Sprintf("failed to deep merge config: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e DeepMergeError) Unwrap() error {
	return e.Cause
}

// Deep recursively merges nested string keyed maps, letting values from curr
// win over values from prev. Slices and other values are replaced.
var Deep Merger = MergerFunc(deep)

func deep(_ context.Context, prev, curr Config) (Config, error) {
	dst := deepCopy(map[string]any(prev))
	src := deepCopy(map[string]any(curr))

	err := mergo.Merge(&dst, src, mergo.WithOverride)
	if err != nil {
		return nil, DeepMergeError{Cause: err}
	}
	return Config(dst), nil
}

// deepCopy copies every nested map so mergo can write into dst without
// touching maps owned by the caller.
func deepCopy(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch x := v.(type) {
		case map[string]any:
			out[k] = deepCopy(x)
		case Config:
			out[k] = deepCopy(x)
		default:
			out[k] = v
		}
	}
	return out
}
