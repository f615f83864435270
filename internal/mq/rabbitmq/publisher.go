package rabbitmq

import (
	"context"
	"fmt"
	"sync"

	"estate_erp/internal/conf"
	"estate_erp/internal/mq"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher publishes to a durable topic exchange. It implements mq.Publisher.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *zap.Logger
}

// NewPublisher dials RabbitMQ and declares the audit exchange.
func NewPublisher(cfg *conf.RabbitMQConfig, logger *zap.Logger) (*Publisher, func(), error) {
	namedLogger := logger.Named("RabbitMQPublisher")

	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", cfg.User, cfg.Password, cfg.Host, cfg.Port)
	conn, err := amqp.Dial(dsn)
	if err != nil {
		namedLogger.Error("Failed to connect to RabbitMQ", zap.Error(err))
		return nil, nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		namedLogger.Error("Failed to open a channel", zap.Error(err))
		if connErr := conn.Close(); connErr != nil {
			namedLogger.Error("Failed to close connection after channel failure", zap.Error(connErr))
		}
		return nil, nil, err
	}

	if err := ch.ExchangeDeclare(cfg.AuditExchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		namedLogger.Error("Failed to declare exchange", zap.Error(err), zap.String("exchange", cfg.AuditExchange))
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, err
	}

	namedLogger.Info("Connected to RabbitMQ", zap.String("exchange", cfg.AuditExchange))
	p := &Publisher{
		conn:     conn,
		channel:  ch,
		exchange: cfg.AuditExchange,
		logger:   namedLogger,
	}
	return p, p.Close, nil
}

func (p *Publisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel == nil {
		return amqp.ErrClosed
	}

	err := p.channel.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Error("Failed to publish a message", zap.Error(err), zap.String("routingKey", routingKey))
		return err
	}

	p.logger.Debug("Message published", zap.String("routingKey", routingKey), zap.Int("bytes", len(body)))
	return nil
}

// Close closes the channel and then the connection.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			p.logger.Error("Failed to close channel", zap.Error(err))
		}
		p.channel = nil
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			p.logger.Error("Failed to close connection", zap.Error(err))
		}
		p.conn = nil
	}
	p.logger.Info("RabbitMQ connection closed")
}

var _ mq.Publisher = (*Publisher)(nil)
