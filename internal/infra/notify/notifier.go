// Package notify implements the storefront notification surface.
package notify

import (
	"context"
	"log/slog"

	"storefront/internal/domain/service"
)

// logNotifier records notifications on the structured log. It stands in
// for the toast banners of a browser storefront until a push channel
// exists.
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier writing to the given logger.
func NewLogNotifier(logger *slog.Logger) service.Notifier {
	return &logNotifier{logger: logger}
}

// Notify delivers one notification. Safe for concurrent use; the
// session manager calls it from a timer goroutine.
func (n *logNotifier) Notify(ctx context.Context, level service.NotificationLevel, message string) {
	logLevel := slog.LevelInfo
	if level == service.NotifyError {
		logLevel = slog.LevelWarn
	}
	n.logger.LogAttrs(ctx, logLevel, "Notification",
		slog.String("level", string(level)),
		slog.String("message", message))
}
