package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/backoffice/internal/entity"
)

type Producer struct {
	l            *slog.Logger
	w            *kafka.Writer
	mutatedTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:            l,
		w:            w,
		mutatedTopic: topic,
	}
}

// RecordMutated publishes m keyed by entity and record key so that every
// change of one record lands on the same partition.
func (p *Producer) RecordMutated(ctx context.Context, m entity.Mutation) error {
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(fmt.Sprintf("%s/%s", m.Entity, m.Key)),
		Value: b,
		Topic: p.mutatedTopic,
	})
	if err != nil {
		return fmt.Errorf("write kafka message: %w", err)
	}

	return nil
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
