// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package loader turns candidate configuration files into [config.Config] values.
//
// A [Loader] is keyed by file extension inside a [Registry]. The resolver
// asks every registered Loader for its extension at each candidate location
// and folds the results together in registry order.
//
// Loaders report failures as errors which may carry a classification code,
// see [Code]. The resolver, not the Loader, decides whether a code means the
// candidate is simply absent.
//
// # Formats
//
// [File] reads from an [fs.FS] and hands the contents to a [Decoder]. The
// package provides decoders for JSON, YAML, TOML and HCL, and [Defaults]
// registers all of them. Files may optionally be rendered as text/template
// documents before being decoded, see [Template].
//
// Executable configuration is supported through [Exec], which runs an
// interpreter against the candidate and decodes the JSON it prints. It is
// never registered by default.
package loader
