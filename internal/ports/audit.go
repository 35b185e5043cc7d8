package ports

import (
	"context"
	"time"
)

// AdminActionEvent records one successful admin mutation.
type AdminActionEvent struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resourceId,omitempty"`
	Actor      string    `json:"actor,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	At         time.Time `json:"at"`
}

// Sink for admin action events. Publish errors never fail the admin action.
type AuditPublisher interface {
	Publish(ctx context.Context, ev AdminActionEvent) error
	Close() error
}
