package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/vango-dev/hyperflex/internal/errors"
	"github.com/vango-dev/hyperflex/pkg/tree"
	"github.com/vango-dev/hyperflex/pkg/vdom"
)

// Logging logs every build at debug level and every failure at warn level.
// A nil logger uses slog.Default().
func Logging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "render")

	return func(next RenderFunc) RenderFunc {
		return func(ctx context.Context, spec *tree.Spec) (*vdom.VNode, error) {
			start := time.Now()
			node, err := next(ctx, spec)
			elapsed := time.Since(start)

			var selector string
			if spec != nil {
				selector = spec.Selector
			}
			if err != nil {
				logger.WarnContext(ctx, "build failed",
					"selector", selector,
					"code", errors.CodeOf(err),
					"error", err,
					"duration", elapsed,
				)
				return nil, err
			}
			logger.DebugContext(ctx, "build complete",
				"selector", selector,
				"elements", spec.Count(),
				"duration", elapsed,
			)
			return node, nil
		}
	}
}
