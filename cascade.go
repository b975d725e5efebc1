// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cascade

import (
	"context"
	"log/slog"
	"slices"

	"github.com/z5labs/cascade/config"
	"github.com/z5labs/cascade/internal/try"
	"github.com/z5labs/cascade/loader"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const instrumentationName = "github.com/z5labs/cascade"

// LoadConfig resolves the Config for segments below root.
//
// Candidates are visited from root to the most specific directory and
// merged in that order, see the package documentation. Loads of the same
// candidate for different extensions run concurrently, everything else runs
// sequentially. LoadConfig returns an empty Config if no candidate exists.
//
// A loader error with a non-ignorable code is returned as a [LoadError],
// and Merger and transformer failures as a [MergeError] or [TransformError].
// No partial result is returned on failure.
func LoadConfig(ctx context.Context, root string, segments []string, opts ...Option) (_ config.Config, err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := newResolver(o)

	ctx, span := r.tracer.Start(ctx, "cascade.LoadConfig", trace.WithAttributes(
		attribute.String("cascade.root", root),
		attribute.StringSlice("cascade.segments", segments),
	))
	defer span.End()
	defer func() {
		if err == nil {
			return
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}()

	acc := config.Config{}
	for _, base := range candidateBases(root, segments, extraSuffixes(o.commonNames, segments)) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c, err := r.loadCandidate(ctx, base)
		if err != nil {
			return nil, err
		}

		acc, err = r.merge(ctx, base, acc, c)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

type resolver struct {
	merger      config.Merger
	loaders     []loader.Entry
	ignoreCodes []string
	transform   config.ConfigTransformer
	verbose     bool
	log         *slog.Logger
	tracer      trace.Tracer
}

func newResolver(o options) *resolver {
	transformers := append(
		[]config.ConfigTransformer{config.AsConfigTransformer(o.valueTransformers...)},
		o.configTransformers...,
	)
	return &resolver{
		merger:      o.merger,
		loaders:     o.loaders.Entries(),
		ignoreCodes: o.ignoreErrorCodes,
		transform:   config.ComposeConfigTransformers(transformers...),
		verbose:     o.verbose,
		log:         slog.New(o.logHandler),
		tracer:      otel.Tracer(instrumentationName),
	}
}

type loadResult struct {
	path  string
	cfg   config.Config
	found bool
}

// loadCandidate loads base with every registered extension and folds the
// results together in registry order.
func (r *resolver) loadCandidate(ctx context.Context, base string) (config.Config, error) {
	ctx, span := r.tracer.Start(ctx, "cascade.loadCandidate", trace.WithAttributes(
		attribute.String("cascade.candidate", base),
	))
	defer span.End()

	results := make([]loadResult, len(r.loaders))
	g, gctx := errgroup.WithContext(ctx)
	for i, e := range r.loaders {
		g.Go(func() error {
			res, err := r.loadFile(gctx, e, base+"."+e.Extension)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	err := g.Wait()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	c := config.Config{}
	for _, res := range results {
		loaded := config.Config{}
		if res.found {
			loaded, err = r.apply(ctx, res)
			if err != nil {
				return nil, err
			}
		}

		c, err = r.merge(ctx, res.path, c, loaded)
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (r *resolver) loadFile(ctx context.Context, e loader.Entry, path string) (loadResult, error) {
	c, err := load(ctx, e.Loader, path)
	if err == nil {
		if r.verbose {
			r.log.InfoContext(ctx, "loaded config file", slog.String("path", path), slog.Any("config", c))
		}
		if c == nil {
			c = config.Config{}
		}
		return loadResult{path: path, cfg: c, found: true}, nil
	}

	code := loader.Code(err)
	if code != "" && slices.Contains(r.ignoreCodes, code) {
		if r.verbose {
			r.log.InfoContext(ctx, "ignored config file", slog.String("path", path), slog.String("code", code))
		}
		return loadResult{path: path}, nil
	}

	// a sibling load already failed and cancelled this one
	if ctx.Err() != nil {
		return loadResult{}, ctx.Err()
	}

	r.log.ErrorContext(
		ctx,
		"unexpected error while loading config file",
		slog.String("path", path),
		slog.String("extension", e.Extension),
		slog.String("code", code),
		slog.Any("error", err),
	)
	return loadResult{}, LoadError{Path: path, Extension: e.Extension, Cause: err}
}

func load(ctx context.Context, l loader.Loader, path string) (_ config.Config, err error) {
	defer try.Recover(&err)
	return l.Load(ctx, path)
}

func (r *resolver) apply(ctx context.Context, res loadResult) (config.Config, error) {
	if config.IsIdentity(r.transform) {
		return res.cfg, nil
	}
	c, err := r.transform.TransformConfig(ctx, res.cfg)
	if err != nil {
		return nil, TransformError{Path: res.path, Cause: err}
	}
	return c, nil
}

func (r *resolver) merge(ctx context.Context, path string, prev, curr config.Config) (config.Config, error) {
	c, err := r.merger.Merge(ctx, prev, curr)
	if err != nil {
		return nil, MergeError{Path: path, Cause: err}
	}
	return c, nil
}
