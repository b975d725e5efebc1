// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/z5labs/cascade/config"
)

// Loader produces a fresh Config from the file at the given path.
type Loader interface {
	Load(ctx context.Context, path string) (config.Config, error)
}

// LoaderFunc is a functional implementation of the [Loader] interface.
type LoaderFunc func(context.Context, string) (config.Config, error)

// Load implements the [Loader] interface.
func (f LoaderFunc) Load(ctx context.Context, path string) (config.Config, error) {
	return f(ctx, path)
}

// Classification codes reported by the loaders in this package.
const (
	CodeFileNotFound      = "ENOENT"
	CodeModuleNotFound    = "MODULE_NOT_FOUND"
	CodeESMModuleNotFound = "ERR_MODULE_NOT_FOUND"
	CodePermissionDenied  = "EACCES"
)

// Code returns the classification code of the first error in err's chain
// which has a Code() string method, or an empty string.
func Code(err error) string {
	var coded interface {
		error
		Code() string
	}
	if !errors.As(err, &coded) {
		return ""
	}
	return coded.Code()
}

// NotFoundError occurs when a candidate does not exist or cannot be resolved.
type NotFoundError struct {
	Path    string
	ErrCode string
	Cause   error
}

// Error implements the [builtin.error] interface.
func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s: not found: %s", e.Path, e.ErrCode)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e NotFoundError) Unwrap() error {
	return e.Cause
}

// Code returns the classification code.
func (e NotFoundError) Code() string {
	return e.ErrCode
}

// PermissionError occurs when a candidate exists but may not be read.
type PermissionError struct {
	Path  string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e PermissionError) Error() string {
	return fmt.Sprintf("%s: permission denied: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e PermissionError) Unwrap() error {
	return e.Cause
}

// Code returns [CodePermissionDenied].
func (e PermissionError) Code() string {
	return CodePermissionDenied
}
