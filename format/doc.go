// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package format renders a resolved config.Config as text.
//
// Every built-in formatter emits map keys in ascending order so the output
// for a given Config is stable.
package format
