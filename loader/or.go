// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loader

import (
	"context"
	"errors"

	"github.com/z5labs/cascade/config"
)

var errNoLoaders = errors.New("no loaders to try")

// Or returns a Loader which tries each of loaders in order and returns the
// first successful result. If every loader fails, the last error is returned.
func Or(loaders ...Loader) Loader {
	return LoaderFunc(func(ctx context.Context, path string) (config.Config, error) {
		err := error(NotFoundError{Path: path, ErrCode: CodeFileNotFound, Cause: errNoLoaders})
		for _, l := range loaders {
			var c config.Config
			c, err = l.Load(ctx, path)
			if err == nil {
				return c, nil
			}
		}
		return nil, err
	})
}
