// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package noop

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogHandler(t *testing.T) {
	t.Run("will never be enabled", func(t *testing.T) {
		for _, lvl := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
			if !assert.False(t, LogHandler{}.Enabled(context.Background(), lvl)) {
				return
			}
		}
	})

	t.Run("will stay a LogHandler when derived", func(t *testing.T) {
		h := LogHandler{}.WithAttrs([]slog.Attr{slog.String("a", "b")}).WithGroup("g")
		if !assert.IsType(t, LogHandler{}, h) {
			return
		}
	})
}
