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
	"io"
	"io/fs"
	"os"
	"text/template"

	"github.com/z5labs/cascade/config"
	"github.com/z5labs/cascade/internal/try"
)

type fileOptions struct {
	fs     fs.FS
	render bool
	funcs  template.FuncMap
}

// FileOption configures a file backed Loader.
type FileOption func(*fileOptions)

// FS configures the file system candidates are opened from.
//
// Candidate paths are passed to fsys as is, so the config root must be a
// valid [fs.FS] path: slash separated, unrooted and without "." or ".."
// elements. Any other root fails with an [InvalidPathError].
//
// By default, paths are opened as is from the host file system.
func FS(fsys fs.FS) FileOption {
	return func(fo *fileOptions) {
		fo.fs = fsys
	}
}

// Template renders each file as a text/template before decoding it. The
// given funcs are made available alongside the builtin "env" and "default"
// functions and take precedence over them.
func Template(funcs template.FuncMap) FileOption {
	return func(fo *fileOptions) {
		fo.render = true
		for name, f := range funcs {
			fo.funcs[name] = f
		}
	}
}

// InvalidPathError occurs when a candidate path is not valid for the
// configured [fs.FS], most likely because the config root is absolute or
// contains "..".
type InvalidPathError struct {
	Path  string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e InvalidPathError) Error() string {
	return fmt.Sprintf("%s: invalid path for fs.FS, the config root must be relative to the file system root: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidPathError) Unwrap() error {
	return e.Cause
}

type hostFS struct{}

func (hostFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// File returns a Loader which reads a file and decodes it with dec.
//
// A missing file is reported as a [NotFoundError] with [CodeFileNotFound].
func File(dec Decoder, opts ...FileOption) Loader {
	fo := &fileOptions{
		fs:    hostFS{},
		funcs: defaultTemplateFuncs(),
	}
	for _, opt := range opts {
		opt(fo)
	}

	return LoaderFunc(func(ctx context.Context, path string) (config.Config, error) {
		b, err := readFile(fo.fs, path)
		if err != nil {
			return nil, err
		}

		var r io.Reader = bytes.NewReader(b)
		if fo.render {
			r, err = render(path, b, fo.funcs)
			if err != nil {
				return nil, err
			}
		}
		return dec.Decode(r)
	})
}

func readFile(fsys fs.FS, path string) (_ []byte, err error) {
	// some implementations report invalid paths as missing files
	if _, host := fsys.(hostFS); !host && !fs.ValidPath(path) {
		return nil, InvalidPathError{Path: path, Cause: fs.ErrInvalid}
	}

	f, err := fsys.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, NotFoundError{Path: path, ErrCode: CodeFileNotFound, Cause: err}
	}
	if errors.Is(err, fs.ErrInvalid) {
		return nil, InvalidPathError{Path: path, Cause: err}
	}
	if errors.Is(err, fs.ErrPermission) {
		return nil, PermissionError{Path: path, Cause: err}
	}
	if err != nil {
		return nil, err
	}
	defer try.Close(&err, f)

	return io.ReadAll(f)
}
