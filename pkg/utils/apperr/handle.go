package apperr

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/mailnode/pkg/domain/model"
)

// Handle logs an error, adding node context when the error carries it
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)

	var nodeErr *model.NodeAPIError
	if errors.As(err, &nodeErr) {
		logger = logger.With(
			slog.String("node", nodeErr.Node),
			slog.Int("item_index", nodeErr.ItemIndex),
			slog.String("operation", nodeErr.Operation.String()),
		)
	}

	logger.Error("application error", "error", err)
}
