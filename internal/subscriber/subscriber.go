package subscriber

import "context"

// Handler processes one dead-lettered payload. Its error is logged and the
// message is acknowledged regardless: redelivery is driven by the audit store,
// not by the broker.
type Handler func(ctx context.Context, body []byte) error
