package track

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/nestedbench/internal/logger"
	"github.com/kailas-cloud/nestedbench/internal/rally"
)

// AllIndices is the index name used when the operation names none.
const AllIndices = "_all"

// Refresh refreshes params["index"], or every index when unset. Errors are
// returned to the harness as-is; it owns retries and reporting.
func Refresh(ctx context.Context, c rally.Client, p rally.Params) error {
	index := p.StringOr("index", AllIndices)
	start := time.Now()
	if err := c.Refresh(ctx, index); err != nil {
		return fmt.Errorf("refresh %s: %w", index, err)
	}
	logger.FromContext(ctx).Debug("Index refreshed",
		zap.String("index", index),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}
