package audit

import (
	"context"
	"naiyuan-admin/internal/ports"

	"go.uber.org/zap"
)

// LogPublisher writes events to the log. Used when no broker is configured.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.Named("audit")}
}

func (p *LogPublisher) Publish(ctx context.Context, ev ports.AdminActionEvent) error {
	p.logger.Info("admin action",
		zap.String("event_id", ev.ID),
		zap.String("action", ev.Action),
		zap.String("resource", ev.Resource),
		zap.String("resource_id", ev.ResourceID),
		zap.String("actor", ev.Actor),
		zap.String("detail", ev.Detail),
		zap.Time("at", ev.At),
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }
