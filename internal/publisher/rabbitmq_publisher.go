package publisher

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-connector-service/config"
	"github.com/jeffleon2/draftea-connector-service/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

var ErrPublishNacked = errors.New("broker did not confirm the message")

// RabbitMQPublisher publishes dead letters as persistent JSON messages to a
// direct exchange. The connection is opened lazily and reopened after a failure.
type RabbitMQPublisher struct {
	cfg config.RabbitMQ

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewRabbitMQPublisher(cfg config.RabbitMQ) *RabbitMQPublisher {
	return &RabbitMQPublisher{cfg: cfg}
}

// DeclareTopology declares the durable exchange and queue and binds them.
func DeclareTopology(ch *amqp.Channel, cfg config.RabbitMQ) error {
	if err := ch.ExchangeDeclare(
		cfg.Exchange, // name
		"direct",     // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(
		cfg.Queue, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	); err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := ch.QueueBind(cfg.Queue, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}
	return nil
}

func (p *RabbitMQPublisher) connect() error {
	if p.channel != nil && !p.channel.IsClosed() {
		return nil
	}
	p.resetLocked()

	conn, err := amqp.Dial(p.cfg.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	if err := DeclareTopology(ch, p.cfg); err != nil {
		ch.Close()
		conn.Close()
		return err
	}

	if err := ch.Confirm(false); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("failed to enable publisher confirms: %w", err)
	}

	p.conn, p.channel = conn, ch
	logrus.WithFields(logrus.Fields{
		"exchange":    p.cfg.Exchange,
		"queue":       p.cfg.Queue,
		"routing_key": p.cfg.RoutingKey,
	}).Info("rabbitmq dead letter publisher connected")
	return nil
}

// Publish is synchronous: it returns once the broker has confirmed the message.
func (p *RabbitMQPublisher) Publish(ctx context.Context, msg models.DeadLetterMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.connect(); err != nil {
		return err
	}

	exchange, routingKey := msg.Exchange, msg.RoutingKey
	if exchange == "" {
		exchange = p.cfg.Exchange
	}
	if routingKey == "" {
		routingKey = p.cfg.RoutingKey
	}

	confirm, err := p.channel.PublishWithDeferredConfirmWithContext(ctx, exchange, routingKey, false, false, amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     uuid.NewString(),
		CorrelationId: msg.Key,
		Timestamp:     msg.Timestamp,
		Body:          msg.Payload,
	})
	if err != nil {
		p.resetLocked()
		return fmt.Errorf("failed to publish dead letter: %w", err)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		p.resetLocked()
		return fmt.Errorf("failed waiting for publisher confirm: %w", err)
	}
	if !acked {
		return ErrPublishNacked
	}
	return nil
}

func (p *RabbitMQPublisher) resetLocked() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.channel, p.conn = nil, nil
}

func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resetLocked()
	return nil
}
