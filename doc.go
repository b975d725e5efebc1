// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package cascade resolves a single effective configuration from a directory
// tree of optional override files.
//
// Given a root directory and path segments such as ["dev", "CustomerA"],
// [LoadConfig] walks from the root towards the most specific directory. At
// every depth it tries, in order, a file named after the directory itself,
// one per common name ("common" and "index" by default) and one named after
// the final path segment. Each of those candidates is attempted once per
// extension registered in the [loader.Registry] and every file found is
// merged over what was resolved before it, so deeper and later files win.
//
// For root "config" and segments ["dev", "CustomerA"] with the default common
// names, candidates are tried in this order, each with every extension:
//
//	config, config/common, config/index, config/CustomerA,
//	config/dev, config/dev/common, config/dev/index, config/dev/CustomerA,
//	config/dev/CustomerA, config/dev/CustomerA/common, ...
//
// Missing files are not an error. A loader failure is only ignored if its
// classification code is one of the configured ignorable codes, see
// [loader.Code]; anything else aborts resolution.
//
// # Basic Usage
//
//	cfg, err := cascade.LoadConfig(ctx, "config", []string{"dev", "CustomerA"},
//	    cascade.Merger(config.Sorted(config.Shallow)),
//	    cascade.ValueTransformers(config.Sort),
//	)
package cascade
