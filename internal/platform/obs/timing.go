package obs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID stores the request id that Time and the request logger report.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs the duration of an operation. Use as
//
//	defer obs.Time(ctx, "backend.Bills")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		fields := []zap.Field{
			zap.String("req_id", reqID),
			zap.String("op", name),
			zap.Int64("dur_ms", dur.Milliseconds()),
		}
		if errp != nil && *errp != nil {
			zap.L().Warn("op failed", append(fields, zap.Error(*errp))...)
			return
		}
		zap.L().Debug("op done", fields...)
	}
}
