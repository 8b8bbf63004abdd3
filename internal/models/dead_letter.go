package models

import "time"

const (
	DeadLetterExchange   = "failed.transaction.exchange"
	DeadLetterQueue      = "failed.transaction.queue"
	DeadLetterRoutingKey = "failed.transaction.routingkey"
)

// DeadLetterMessage is a serialized ExternalAPIRequest plus its routing metadata.
type DeadLetterMessage struct {
	Exchange   string
	RoutingKey string
	Key        string
	Payload    []byte
	Timestamp  time.Time
}
