package subscriber

import (
	"context"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// KafkaConsumer reads the dead-letter topic in a consumer group. ReadMessage
// commits offsets, so every message is consumed exactly once per group whatever
// the handler returns.
type KafkaConsumer struct {
	Reader messageReader
	Topic  string
}

func NewKafkaConsumer(brokers []string, topic, groupID string) *KafkaConsumer {
	return &KafkaConsumer{
		Reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		}),
		Topic: topic,
	}
}

// Listen blocks until ctx is cancelled.
func (c *KafkaConsumer) Listen(ctx context.Context, handler Handler) error {
	logrus.WithField("topic", c.Topic).Info("kafka retry consumer started")
	for {
		msg, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			logrus.WithField("topic", c.Topic).WithError(err).Error("kafka read error")
			select {
			case <-time.After(time.Second):
				continue
			case <-ctx.Done():
				return nil
			}
		}

		if err := handler(ctx, msg.Value); err != nil {
			logrus.WithFields(logrus.Fields{
				"topic":     msg.Topic,
				"key":       string(msg.Key),
				"partition": msg.Partition,
				"offset":    msg.Offset,
			}).WithError(err).Error("retry handler failed, message dropped")
		}
	}
}

func (c *KafkaConsumer) Close() error {
	return c.Reader.Close()
}
