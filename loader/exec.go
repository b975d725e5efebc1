// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/z5labs/cascade/config"
)

// ExecError occurs when a script exits unsuccessfully.
type ExecError struct {
	Path   string
	Stderr string
	Cause  error
}

// Error implements the [builtin.error] interface.
func (e ExecError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("failed to execute %s: %s", e.Path, e.Cause)
	}
	return fmt.Sprintf("failed to execute %s: %s: %s", e.Path, e.Cause, msg)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e ExecError) Unwrap() error {
	return e.Cause
}

// Exec returns a Loader which runs name with args followed by the candidate
// path and decodes the JSON object written to stdout. An object whose only
// key is "default" is unwrapped to that key's value.
//
// A missing script is reported as a [NotFoundError] with [CodeModuleNotFound].
func Exec(name string, args ...string) Loader {
	return LoaderFunc(func(ctx context.Context, path string) (config.Config, error) {
		_, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NotFoundError{Path: path, ErrCode: CodeModuleNotFound, Cause: err}
		}
		if err != nil {
			return nil, err
		}

		var stdout, stderr bytes.Buffer
		cmd := exec.CommandContext(ctx, name, append(slices.Clone(args), path)...)
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		err = cmd.Run()
		if err != nil {
			return nil, ExecError{Path: path, Stderr: stderr.String(), Cause: err}
		}

		c, err := JSON.Decode(&stdout)
		if err != nil {
			return nil, err
		}
		return unwrapDefault(c), nil
	})
}

func unwrapDefault(c config.Config) config.Config {
	if len(c) != 1 {
		return c
	}
	def, ok := c["default"]
	if !ok {
		return c
	}
	switch m := def.(type) {
	case nil:
		return config.Config{}
	case map[string]any:
		return config.Config(m)
	default:
		return c
	}
}

// Scripts returns registry entries which load js, mjs and ts files with
// [Exec]. They are meant to be appended to a Registry:
//
//	reg := loader.NewRegistry(append(loader.Defaults().Entries(), loader.Scripts("node", "print-config.js")...)...)
func Scripts(name string, args ...string) []Entry {
	l := Exec(name, args...)
	return []Entry{
		{Extension: "js", Loader: l},
		{Extension: "mjs", Loader: l},
		{Extension: "ts", Loader: l},
	}
}
