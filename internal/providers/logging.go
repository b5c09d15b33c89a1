package providers

import (
	"context"
	"log/slog"

	"github.com/reyes-code/football-stats-service/internal/logging"
)

// logWithProvider logs through the request-scoped logger when one is installed,
// falling back to logger, and always tags the provider name.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	logger = logging.FromContext(ctx, logger)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider))
	logger.Log(ctx, level, msg, args...)
}
