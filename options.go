// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cascade

import (
	"log/slog"
	"slices"

	"github.com/z5labs/cascade/config"
	"github.com/z5labs/cascade/loader"
)

type options struct {
	merger             config.Merger
	commonNames        []string
	ignoreErrorCodes   []string
	loaders            loader.Registry
	valueTransformers  []config.ValueTransformer
	configTransformers []config.ConfigTransformer
	verbose            bool
	logHandler         slog.Handler
}

// Option configures a single [LoadConfig] call.
type Option func(*options)

// DefaultCommonNames returns the names tried at every depth by default.
func DefaultCommonNames() []string {
	return []string{"common", "index"}
}

// DefaultIgnoreErrorCodes returns the loader codes which are treated as an
// absent file by default.
func DefaultIgnoreErrorCodes() []string {
	return []string{
		loader.CodeESMModuleNotFound,
		loader.CodeModuleNotFound,
		loader.CodeFileNotFound,
	}
}

func defaultOptions() options {
	return options{
		merger:           config.Shallow,
		commonNames:      DefaultCommonNames(),
		ignoreErrorCodes: DefaultIgnoreErrorCodes(),
		loaders:          loader.Defaults(),
		logHandler:       slog.Default().Handler(),
	}
}

// Merger configures how Configs are combined.
//
// Default is [config.Shallow].
func Merger(m config.Merger) Option {
	return func(o *options) {
		o.merger = m
	}
}

// CommonNames configures the file names, without extension, tried at every
// depth after the directory's own file. Passing no names disables them.
//
// Default is [DefaultCommonNames].
func CommonNames(names ...string) Option {
	return func(o *options) {
		o.commonNames = slices.Clone(names)
	}
}

// IgnoreErrorCodes configures which loader error codes mean a candidate is
// absent rather than broken.
//
// Default is [DefaultIgnoreErrorCodes].
func IgnoreErrorCodes(codes ...string) Option {
	return func(o *options) {
		o.ignoreErrorCodes = slices.Clone(codes)
	}
}

// Loaders configures the extensions tried for each candidate and the order
// their results are merged in.
//
// Default is [loader.Defaults].
func Loaders(r loader.Registry) Option {
	return func(o *options) {
		o.loaders = r
	}
}

// ValueTransformers configures transformers applied to every top-level
// value of each loaded file.
func ValueTransformers(ts ...config.ValueTransformer) Option {
	return func(o *options) {
		o.valueTransformers = slices.Clone(ts)
	}
}

// ConfigTransformers configures transformers applied, in order, to each
// loaded file after its value transformers.
func ConfigTransformers(ts ...config.ConfigTransformer) Option {
	return func(o *options) {
		o.configTransformers = slices.Clone(ts)
	}
}

// Verbose logs every loaded file with its contents and every ignored
// candidate with its error code.
func Verbose(v bool) Option {
	return func(o *options) {
		o.verbose = v
	}
}

// LogHandler configures the underlying slog.Handler.
//
// Default is the handler of [slog.Default] at the time of the call. Use
// [github.com/z5labs/cascade/pkg/noop.LogHandler] to discard every record.
func LogHandler(h slog.Handler) Option {
	return func(o *options) {
		o.logHandler = h
	}
}
