package repository

import (
	"context"

	"SawitFeed/internal/domain/models"
	pkgkafka "SawitFeed/pkg/kafka"
)

// KafkaQuotePublisher forwards validated quote sets to a Kafka topic so
// downstream consumers (alerting, archival) can follow the feed without
// polling the API. Messages are keyed by region to keep one region on
// one partition.
type KafkaQuotePublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

func NewKafkaQuotePublisher(producer *pkgkafka.Producer, topic string) *KafkaQuotePublisher {
	return &KafkaQuotePublisher{producer: producer, topic: topic}
}

func (p *KafkaQuotePublisher) PublishQuotes(ctx context.Context, quotes []models.Quote) error {
	msgs := make([]pkgkafka.Message, 0, len(quotes))
	for _, q := range quotes {
		msgs = append(msgs, pkgkafka.Message{
			Key:   []byte(q.Region),
			Value: q,
		})
	}
	return p.producer.PublishBatch(ctx, p.topic, msgs)
}

func (p *KafkaQuotePublisher) Close() error {
	return p.producer.Close()
}
