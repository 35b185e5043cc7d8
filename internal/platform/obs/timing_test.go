package obs

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTimeLogsOperation(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	ctx := WithRequestID(context.Background(), "abc")

	func() (err error) {
		defer Time(ctx, "backend.Bills")(&err)
		return nil
	}()
	func() (err error) {
		defer Time(ctx, "backend.VerifyPayment")(&err)
		return errors.New("boom")
	}()

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Level != zapcore.DebugLevel || entries[0].ContextMap()["op"] != "backend.Bills" {
		t.Fatalf("first entry = %+v", entries[0])
	}
	if entries[1].Level != zapcore.WarnLevel || entries[1].ContextMap()["error"] != "boom" {
		t.Fatalf("second entry = %+v", entries[1])
	}
	if entries[1].ContextMap()["req_id"] != "abc" {
		t.Fatalf("req_id = %v", entries[1].ContextMap()["req_id"])
	}
}
