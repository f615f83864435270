package noop

import (
	"context"

	"estate_erp/internal/mq"
)

// Publisher discards every message. It is used when no broker is configured.
type Publisher struct{}

func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	return nil
}

func (p *Publisher) Close() {}

var _ mq.Publisher = (*Publisher)(nil)
