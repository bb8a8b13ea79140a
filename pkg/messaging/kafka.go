package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/segmentio/kafka-go"
)

// Publisher sends a JSON encoded event to a topic.
type Publisher interface {
	Publish(ctx context.Context, topic string, key string, value any) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducer struct {
	brokers   []string
	newWriter func(topic string) messageWriter

	mu      sync.Mutex
	writers map[string]messageWriter
}

func NewKafkaProducer(brokers []string) *KafkaProducer {
	p := &KafkaProducer{
		brokers: brokers,
		writers: make(map[string]messageWriter),
	}

	p.newWriter = func(topic string) messageWriter {
		return &kafka.Writer{
			Addr:                   kafka.TCP(p.brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
	}

	return p
}

// one writer per topic, created lazily
func (p *KafkaProducer) writer(topic string) messageWriter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if w, ok := p.writers[topic]; ok {
		return w
	}

	w := p.newWriter(topic)
	p.writers[topic] = w

	return w
}

func (p *KafkaProducer) Publish(ctx context.Context, topic string, key string, value any) error {

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal event for topic %s: %w", topic, err)
	}

	message := kafka.Message{
		Key:   []byte(key),
		Value: payload,
	}

	if err := p.writer(topic).WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", topic, err)
	}

	return nil
}

func (p *KafkaProducer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error

	for topic, w := range p.writers {
		if err := w.Close(); err != nil {
			slog.Error("Failed to close kafka writer", slog.String("topic", topic), slog.String("error", err.Error()))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	clear(p.writers)

	return firstErr
}
