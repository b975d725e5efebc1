// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func addKey(k string, v any) ConfigTransformer {
	return ConfigTransformerFunc(func(ctx context.Context, c Config) (Config, error) {
		out := c.Clone()
		out[k] = v
		return out, nil
	})
}

func renameKey(from, to string) ConfigTransformer {
	return ConfigTransformerFunc(func(ctx context.Context, c Config) (Config, error) {
		out := c.Clone()
		v, ok := out[from]
		if !ok {
			return out, nil
		}
		delete(out, from)
		out[to] = v
		return out, nil
	})
}

func upper() ValueTransformer {
	return ValueTransformerFunc(func(ctx context.Context, v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return v, nil
		}
		return strings.ToUpper(s), nil
	})
}

func suffix(sfx string) ValueTransformer {
	return ValueTransformerFunc(func(ctx context.Context, v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return v, nil
		}
		return s + sfx, nil
	})
}

func TestComposeConfigTransformers(t *testing.T) {
	t.Run("will return Identity for", func(t *testing.T) {
		testCases := []struct {
			name string
			ts   []ConfigTransformer
		}{
			{name: "no transformers"},
			{name: "only identity transformers", ts: []ConfigTransformer{Identity, Identity}},
			{name: "only nil transformers", ts: []ConfigTransformer{nil}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				ct := ComposeConfigTransformers(tc.ts...)
				require.True(t, IsIdentity(ct))
			})
		}
	})

	t.Run("will apply transformers in the given order", func(t *testing.T) {
		in := Config{"a": 1}

		ct := ComposeConfigTransformers(addKey("b", 2), renameKey("b", "c"))
		out, err := ct.TransformConfig(context.Background(), in)
		require.NoError(t, err)
		require.Equal(t, Config{"a": 1, "c": 2}, out)

		ct = ComposeConfigTransformers(renameKey("b", "c"), addKey("b", 2))
		out, err = ct.TransformConfig(context.Background(), in)
		require.NoError(t, err)
		require.Equal(t, Config{"a": 1, "b": 2}, out)
	})

	t.Run("will skip identity transformers", func(t *testing.T) {
		ct := ComposeConfigTransformers(Identity, addKey("b", 2), Identity)
		require.False(t, IsIdentity(ct))

		out, err := ct.TransformConfig(context.Background(), Config{})
		require.NoError(t, err)
		require.Equal(t, Config{"b": 2}, out)
	})

	t.Run("will stop at the first error", func(t *testing.T) {
		transformErr := errors.New("transform failed")
		called := false
		ct := ComposeConfigTransformers(
			ConfigTransformerFunc(func(ctx context.Context, c Config) (Config, error) {
				return nil, transformErr
			}),
			ConfigTransformerFunc(func(ctx context.Context, c Config) (Config, error) {
				called = true
				return c, nil
			}),
		)

		_, err := ct.TransformConfig(context.Background(), Config{})
		require.ErrorIs(t, err, transformErr)
		require.False(t, called)
	})
}

func TestComposeValueTransformers(t *testing.T) {
	t.Run("will return Identity when given nothing", func(t *testing.T) {
		require.True(t, IsIdentity(ComposeValueTransformers()))
		require.True(t, IsIdentity(ComposeValueTransformers(Identity)))
	})

	t.Run("will apply transformers in the given order", func(t *testing.T) {
		vt := ComposeValueTransformers(suffix("-x"), upper())
		v, err := vt.TransformValue(context.Background(), "a")
		require.NoError(t, err)
		require.Equal(t, "A-X", v)

		vt = ComposeValueTransformers(upper(), suffix("-x"))
		v, err = vt.TransformValue(context.Background(), "a")
		require.NoError(t, err)
		require.Equal(t, "A-x", v)
	})
}

func TestAsConfigTransformer(t *testing.T) {
	t.Run("will return Identity when given no value transformers", func(t *testing.T) {
		require.True(t, IsIdentity(AsConfigTransformer()))
	})

	t.Run("will rewrite every top-level value", func(t *testing.T) {
		in := Config{"a": "x", "b": 1, "c": map[string]any{"d": "y"}}

		out, err := AsConfigTransformer(upper()).TransformConfig(context.Background(), in)
		require.NoError(t, err)
		require.Equal(t, Config{"a": "X", "b": 1, "c": map[string]any{"d": "y"}}, out)
		require.Equal(t, Config{"a": "x", "b": 1, "c": map[string]any{"d": "y"}}, in)
	})

	t.Run("will propagate value transformer errors", func(t *testing.T) {
		transformErr := errors.New("bad value")
		vt := ValueTransformerFunc(func(ctx context.Context, v any) (any, error) {
			return nil, transformErr
		})

		_, err := AsConfigTransformer(vt).TransformConfig(context.Background(), Config{"a": 1})
		require.ErrorIs(t, err, transformErr)
	})
}
