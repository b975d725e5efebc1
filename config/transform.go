// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import "context"

// ConfigTransformer post-processes a whole Config.
type ConfigTransformer interface {
	TransformConfig(context.Context, Config) (Config, error)
}

// ConfigTransformerFunc is a functional implementation of the [ConfigTransformer] interface.
type ConfigTransformerFunc func(context.Context, Config) (Config, error)

// TransformConfig implements the [ConfigTransformer] interface.
func (f ConfigTransformerFunc) TransformConfig(ctx context.Context, c Config) (Config, error) {
	return f(ctx, c)
}

// ValueTransformer post-processes a single value.
type ValueTransformer interface {
	TransformValue(context.Context, any) (any, error)
}

// ValueTransformerFunc is a functional implementation of the [ValueTransformer] interface.
type ValueTransformerFunc func(context.Context, any) (any, error)

// TransformValue implements the [ValueTransformer] interface.
func (f ValueTransformerFunc) TransformValue(ctx context.Context, v any) (any, error) {
	return f(ctx, v)
}

type identity struct{}

func (identity) TransformConfig(_ context.Context, c Config) (Config, error) {
	return c, nil
}

func (identity) TransformValue(_ context.Context, v any) (any, error) {
	return v, nil
}

// Identity returns its input untouched. It implements both [ConfigTransformer]
// and [ValueTransformer] and is what composing zero transformers yields.
var Identity = identity{}

// IsIdentity reports whether t is nil or [Identity].
func IsIdentity(t any) bool {
	if t == nil {
		return true
	}
	_, ok := t.(identity)
	return ok
}

// ComposeConfigTransformers returns a ConfigTransformer which applies each
// of ts in order, feeding the output of one into the next. Nil and identity
// transformers are dropped and, if none remain, [Identity] is returned.
func ComposeConfigTransformers(ts ...ConfigTransformer) ConfigTransformer {
	ts = withoutIdentity(ts)
	switch len(ts) {
	case 0:
		return Identity
	case 1:
		return ts[0]
	}
	return ConfigTransformerFunc(func(ctx context.Context, c Config) (Config, error) {
		var err error
		for _, t := range ts {
			c, err = t.TransformConfig(ctx, c)
			if err != nil {
				return nil, err
			}
		}
		return c, nil
	})
}

// ComposeValueTransformers is the per value counterpart of [ComposeConfigTransformers].
func ComposeValueTransformers(ts ...ValueTransformer) ValueTransformer {
	ts = withoutIdentity(ts)
	switch len(ts) {
	case 0:
		return Identity
	case 1:
		return ts[0]
	}
	return ValueTransformerFunc(func(ctx context.Context, v any) (any, error) {
		var err error
		for _, t := range ts {
			v, err = t.TransformValue(ctx, v)
			if err != nil {
				return nil, err
			}
		}
		return v, nil
	})
}

// AsConfigTransformer lifts value transformers into a ConfigTransformer which
// rewrites the value of every top-level key. Nested values are handed to the
// value transformers whole, so recursion is up to them.
func AsConfigTransformer(ts ...ValueTransformer) ConfigTransformer {
	vt := ComposeValueTransformers(ts...)
	if IsIdentity(vt) {
		return Identity
	}
	return ConfigTransformerFunc(func(ctx context.Context, c Config) (Config, error) {
		out := make(Config, len(c))
		for k, v := range c {
			tv, err := vt.TransformValue(ctx, v)
			if err != nil {
				return nil, err
			}
			out[k] = tv
		}
		return out, nil
	})
}

func withoutIdentity[T any](ts []T) []T {
	out := make([]T, 0, len(ts))
	for _, t := range ts {
		if IsIdentity(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}
