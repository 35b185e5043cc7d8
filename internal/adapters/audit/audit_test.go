package audit

import (
	"context"
	"encoding/json"
	"errors"
	"naiyuan-admin/internal/ports"
	"testing"

	skafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fakeWriter is a test writer that records messages written.
type fakeWriter struct {
	msgs []skafka.Message
	err  error
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...skafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestKafkaPublish(t *testing.T) {
	fw := &fakeWriter{}
	p := NewKafkaPublisherWithWriter(fw)

	err := p.Publish(context.Background(), ports.AdminActionEvent{
		ID: "e1", Action: "payment.verify", Resource: "payment", ResourceID: "p1",
	})
	require.NoError(t, err)
	require.Len(t, fw.msgs, 1)

	msg := fw.msgs[0]
	assert.Equal(t, "p1", string(msg.Key))
	assert.Equal(t, "payment.verify", string(msg.Headers[0].Value))

	var ev ports.AdminActionEvent
	require.NoError(t, json.Unmarshal(msg.Value, &ev))
	assert.Equal(t, "e1", ev.ID)
}

func TestKafkaPublishKeyFallsBackToResource(t *testing.T) {
	fw := &fakeWriter{}
	p := NewKafkaPublisherWithWriter(fw)

	require.NoError(t, p.Publish(context.Background(), ports.AdminActionEvent{Action: "config.update", Resource: "referral_config"}))
	assert.Equal(t, "referral_config", string(fw.msgs[0].Key))
}

func TestRecorderSwallowsPublishErrors(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	fw := &fakeWriter{err: errors.New("broker down")}
	r := NewRecorder(NewKafkaPublisherWithWriter(fw), zap.New(core))

	ctx := WithActor(context.Background(), "ops@naiyuan.test")
	r.Record(ctx, "wallet.credit", "wallet", "u1", "500")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "audit publish failed", logs.All()[0].Message)
}

func TestRecorderStampsEvents(t *testing.T) {
	fw := &fakeWriter{}
	r := NewRecorder(NewKafkaPublisherWithWriter(fw), zap.NewNop())

	ctx := WithActor(context.Background(), "ops@naiyuan.test")
	r.Record(ctx, "shipment_request.approve", "shipment", "s1", "")

	require.Len(t, fw.msgs, 1)
	var ev ports.AdminActionEvent
	require.NoError(t, json.Unmarshal(fw.msgs[0].Value, &ev))
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, "ops@naiyuan.test", ev.Actor)
	assert.False(t, ev.At.IsZero())
}

func TestLogPublisher(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := NewLogPublisher(zap.New(core))

	require.NoError(t, p.Publish(context.Background(), ports.AdminActionEvent{Action: "rate.delete", ResourceID: "r1"}))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "rate.delete", logs.All()[0].ContextMap()["action"])
}

func TestNilRecorderIsNoop(t *testing.T) {
	var r *Recorder
	r.Record(context.Background(), "x", "y", "z", "")
}
