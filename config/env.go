// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"context"
	"os"
	"strings"
)

// Env overlays environment variables onto a Config.
type Env struct {
	prefix  string
	environ func() []string
}

// FromEnv returns an Env which sets every environment variable of the
// current process named prefix+KEY as the top-level string value KEY.
// An empty prefix is not allowed to match, since it would copy the whole
// environment.
func FromEnv(prefix string) Env {
	return Env{
		prefix:  prefix,
		environ: os.Environ,
	}
}

// TransformConfig implements the [ConfigTransformer] interface.
func (src Env) TransformConfig(_ context.Context, c Config) (Config, error) {
	out := c.Clone()
	if src.prefix == "" {
		return out, nil
	}
	for _, pair := range src.environ() {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		key, ok := strings.CutPrefix(k, src.prefix)
		if !ok || key == "" {
			continue
		}
		out[key] = v
	}
	return out, nil
}
