package audit

import (
	"context"
	"naiyuan-admin/internal/platform/obs"
	"naiyuan-admin/internal/ports"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recorder stamps and publishes events for callers that must not fail
// because auditing did.
type Recorder struct {
	pub    ports.AuditPublisher
	logger *zap.Logger
	now    func() time.Time
}

func NewRecorder(pub ports.AuditPublisher, logger *zap.Logger) *Recorder {
	return &Recorder{pub: pub, logger: logger, now: time.Now}
}

// Record publishes one event. Errors are logged and swallowed.
func (r *Recorder) Record(ctx context.Context, action, resource, resourceID, detail string) {
	if r == nil || r.pub == nil {
		return
	}
	ev := ports.AdminActionEvent{
		ID:         uuid.NewString(),
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Actor:      ActorFrom(ctx),
		Detail:     detail,
		At:         r.now().UTC(),
	}
	if err := r.pub.Publish(ctx, ev); err != nil {
		r.logger.Warn("audit publish failed",
			zap.String("req_id", obs.RequestID(ctx)),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

type actorKey struct{}

// WithActor tags ctx with who is acting (email or session id).
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFrom(ctx context.Context) string {
	a, _ := ctx.Value(actorKey{}).(string)
	return a
}
