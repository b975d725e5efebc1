// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package cli implements the cascade command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/z5labs/cascade"
	"github.com/z5labs/cascade/config"
	"github.com/z5labs/cascade/format"
	"github.com/z5labs/cascade/internal/logging"
	"github.com/z5labs/cascade/loader"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// EnvPrefix is prepended to every flag name, upper cased with dashes
// replaced by underscores, to form its environment variable.
const EnvPrefix = "CASCADE"

const (
	flagVerbose      = "verbose"
	flagCommonNames  = "common-names"
	flagIgnoreCodes  = "ignore-codes"
	flagSort         = "sort"
	flagDeep         = "deep"
	flagTemplate     = "template"
	flagScriptRunner = "script-runner"
	flagTrace        = "trace"
	flagEnvPrefix    = "env-prefix"
)

var errMissingArgs = errors.New("a formatter id and a config root are required")

// New returns the root command. Formatted output is written to stdout and
// logs and traces to stderr.
func New(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "cascade [flags] <formatter> <config root> [segments...]",
		Short: "Resolve hierarchical configuration and print it",
		Long: "Resolve the configuration for the given segments below a config root " +
			"and print it using one of the formatters: " + strings.Join(format.IDs(), ", ") + ".",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errMissingArgs
			}
			_, err := format.Lookup(args[0])
			return err
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return v.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), v, args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.Bool(flagVerbose, false, "log every loaded and ignored config file")
	flags.StringSlice(flagCommonNames, cascade.DefaultCommonNames(), "file names tried at every depth")
	flags.StringSlice(flagIgnoreCodes, cascade.DefaultIgnoreErrorCodes(), "loader error codes treated as a missing file")
	flags.Bool(flagSort, true, "normalize nested maps and merge results")
	flags.Bool(flagDeep, false, "recursively merge nested maps instead of replacing them")
	flags.Bool(flagTemplate, false, "render config files with text/template before decoding them")
	flags.String(flagScriptRunner, "", "command used to evaluate js, mjs and ts config files, e.g. \"deno run -A\"")
	flags.Bool(flagTrace, false, "write OpenTelemetry spans to stderr")
	flags.String(flagEnvPrefix, "", "override top-level keys with environment variables carrying this prefix")

	return cmd
}

func run(ctx context.Context, v *viper.Viper, args []string, stdout, stderr io.Writer) (err error) {
	f, err := format.Lookup(args[0])
	if err != nil {
		return err
	}

	if v.GetBool(flagTrace) {
		shutdown, terr := initTracing(ctx, stderr)
		if terr != nil {
			return terr
		}
		defer func() {
			err = errors.Join(err, shutdown(context.WithoutCancel(ctx)))
		}()
	}

	level := slog.LevelError
	if v.GetBool(flagVerbose) {
		level = slog.LevelInfo
	}
	logHandler := logging.NewTraceHandler(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	c, err := cascade.LoadConfig(ctx, args[1], args[2:], options(v, logHandler)...)
	if err != nil {
		return err
	}
	if prefix := v.GetString(flagEnvPrefix); prefix != "" {
		c, err = config.FromEnv(prefix).TransformConfig(ctx, c)
		if err != nil {
			return err
		}
	}

	out, err := f.Format(c)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

func options(v *viper.Viper, h slog.Handler) []cascade.Option {
	var fileOpts []loader.FileOption
	if v.GetBool(flagTemplate) {
		fileOpts = append(fileOpts, loader.Template(nil))
	}
	registry := loader.Defaults(fileOpts...)
	if runner := strings.Fields(v.GetString(flagScriptRunner)); len(runner) > 0 {
		for _, e := range loader.Scripts(runner[0], runner[1:]...) {
			registry = registry.Register(e.Extension, e.Loader)
		}
	}

	merger := config.Shallow
	if v.GetBool(flagDeep) {
		merger = config.Deep
	}

	opts := []cascade.Option{
		cascade.Loaders(registry),
		cascade.CommonNames(stringSlice(v, flagCommonNames)...),
		cascade.IgnoreErrorCodes(stringSlice(v, flagIgnoreCodes)...),
		cascade.Verbose(v.GetBool(flagVerbose)),
		cascade.LogHandler(h),
	}
	if v.GetBool(flagSort) {
		merger = config.Sorted(merger)
		opts = append(opts, cascade.ValueTransformers(config.Sort))
	}
	return append(opts, cascade.Merger(merger))
}

// stringSlice splits every element on commas since values read from the
// environment arrive as a single string.
func stringSlice(v *viper.Viper, key string) []string {
	var out []string
	for _, s := range v.GetStringSlice(key) {
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func initTracing(ctx context.Context, w io.Writer) (func(context.Context) error, error) {
	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(w),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(
		ctx,
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			semconv.ServiceName("cascade"),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
