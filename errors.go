// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cascade

import "fmt"

// LoadError occurs when a loader fails with an error whose code is not
// ignorable.
type LoadError struct {
	Path      string
	Extension string
	Cause     error
}

// Error implements the [builtin.error] interface.
func (e LoadError) Error() string {
	return fmt.Sprintf("failed to load %s using the %s loader: %s", e.Path, e.Extension, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e LoadError) Unwrap() error {
	return e.Cause
}

// MergeError occurs when the configured Merger fails.
type MergeError struct {
	Path  string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e MergeError) Error() string {
	return fmt.Sprintf("failed to merge config from %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e MergeError) Unwrap() error {
	return e.Cause
}

// TransformError occurs when a configured transformer fails.
type TransformError struct {
	Path  string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e TransformError) Error() string {
	return fmt.Sprintf("failed to transform config from %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e TransformError) Unwrap() error {
	return e.Cause
}
