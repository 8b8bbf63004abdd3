package subscriber

import (
	"context"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-connector-service/config"
	"github.com/jeffleon2/draftea-connector-service/internal/publisher"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const reconnectDelay = 5 * time.Second

// RabbitMQConsumer consumes the dead-letter queue with manual acknowledgements.
type RabbitMQConsumer struct {
	cfg config.RabbitMQ
}

func NewRabbitMQConsumer(cfg config.RabbitMQ) *RabbitMQConsumer {
	return &RabbitMQConsumer{cfg: cfg}
}

// Listen consumes until ctx is cancelled, reconnecting when the broker goes away.
func (c *RabbitMQConsumer) Listen(ctx context.Context, handler Handler) error {
	for {
		err := c.consume(ctx, handler)
		if ctx.Err() != nil {
			return nil
		}
		logrus.WithError(err).Warnf("rabbitmq consumer stopped, reconnecting in %v", reconnectDelay)

		select {
		case <-time.After(reconnectDelay):
		case <-ctx.Done():
			return nil
		}
	}
}

func (c *RabbitMQConsumer) consume(ctx context.Context, handler Handler) error {
	conn, err := amqp.Dial(c.cfg.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := publisher.DeclareTopology(ch, c.cfg); err != nil {
		return err
	}

	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set qos: %w", err)
	}

	msgs, err := ch.Consume(
		c.cfg.Queue,       // queue
		c.cfg.ConsumerTag, // consumer tag
		false,             // auto-ack (we'll ack manually)
		false,             // exclusive
		false,             // no-local
		false,             // no-wait
		nil,               // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	logrus.WithField("queue", c.cfg.Queue).Info("rabbitmq retry consumer started")

	for {
		select {
		case <-ctx.Done():
			return nil

		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("message channel closed")
			}

			if err := handler(ctx, msg.Body); err != nil {
				logrus.WithFields(logrus.Fields{
					"message_id":     msg.MessageId,
					"correlation_id": msg.CorrelationId,
				}).WithError(err).Error("retry handler failed, message dropped")
			}
			if err := msg.Ack(false); err != nil {
				logrus.WithError(err).Error("failed to ack message")
			}
		}
	}
}
