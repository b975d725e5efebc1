// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package config provides the value model shared by every stage of cascade's
// resolution pipeline.
//
// # Core Concepts
//
// Config is the mapping produced by loaders and consumed by formatters. The
// package never mutates a Config it is given; every Merger and transformer
// returns a new one.
//
// Merger combines two Configs. [Shallow] is the default and lets the right
// operand win on conflicting top-level keys. [Sorted] wraps any Merger so its
// results are normalized by [Sort], and [Deep] recursively merges nested maps.
//
// ConfigTransformer and ValueTransformer post-process loaded Configs. They are
// composed with [ComposeConfigTransformers] and [ComposeValueTransformers], and
// value transformers are lifted over a whole Config with [AsConfigTransformer].
// Composition of nothing yields [Identity], which callers may compare against
// with [IsIdentity] to skip work entirely.
//
// # Basic Usage
//
//	merged, err := config.Sorted(config.Shallow).Merge(ctx,
//	    config.Config{"color": "red", "size": 1},
//	    config.Config{"color": "blue"},
//	)
//
// Resolved values can be decoded into a typed struct:
//
//	var cfg struct {
//	    Color string `config:"color"`
//	}
//	err := config.Decode(merged, &cfg)
package config
