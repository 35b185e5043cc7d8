package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"naiyuan-admin/internal/ports"
	"time"

	skafka "github.com/segmentio/kafka-go"
)

// Writer is the subset of kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// KafkaPublisher writes admin action events as JSON, keyed by resource id
// so events for one record stay ordered within a partition.
type KafkaPublisher struct {
	writer Writer
}

func NewKafkaPublisher(brokerURL, topic string) *KafkaPublisher {
	w := &skafka.Writer{
		Addr:         skafka.TCP(brokerURL),
		Topic:        topic,
		Balancer:     &skafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
	}
	return &KafkaPublisher{writer: w}
}

func NewKafkaPublisherWithWriter(w Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev ports.AdminActionEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("audit: marshal event: %w", err)
	}

	key := ev.ResourceID
	if key == "" {
		key = ev.Resource
	}
	msg := skafka.Message{
		Key:   []byte(key),
		Value: b,
		Headers: []skafka.Header{
			{Key: "action", Value: []byte(ev.Action)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("audit: kafka write: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
