package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-connector-service/internal/models"
	"github.com/jeffleon2/draftea-connector-service/internal/models/dto"
	"github.com/sirupsen/logrus"
)

// RetryHandler resubmits dead-lettered requests through the transaction service.
type RetryHandler struct {
	Service TransactionService
}

func NewRetryHandler(s TransactionService) *RetryHandler {
	return &RetryHandler{Service: s}
}

// HandleDeadLetter rebuilds a request tagged RETRY_SERVICE from a dead-letter
// payload and processes it. The outcome is already recorded in the audit
// store, so the returned error is informational only.
func (h *RetryHandler) HandleDeadLetter(ctx context.Context, body []byte) error {
	var req models.ExternalAPIRequest
	if err := json.Unmarshal(body, &req); err != nil {
		logrus.Errorf("Error parsing dead letter %s", err.Error())
		return fmt.Errorf("error parsing dead letter %w", err)
	}

	log := logrus.WithField("internal_order_id", req.TransactionID)
	log.Info("retrying dead-lettered transaction")

	resp, err := h.Service.Process(ctx, dto.RetryRequest(req, time.Now().UTC()))
	if err != nil {
		log.WithError(err).Warn("retry failed, left to the rescue sweep")
		return fmt.Errorf("error retrying transaction %s: %w", req.TransactionID, err)
	}

	log.Infof("retry succeeded: %s", resp.Message)
	return nil
}
