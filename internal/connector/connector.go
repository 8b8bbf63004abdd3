package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jeffleon2/draftea-connector-service/config"
	"github.com/jeffleon2/draftea-connector-service/internal/metrics"
	"github.com/jeffleon2/draftea-connector-service/internal/models"
	"github.com/sirupsen/logrus"
)

const processPath = "/v1/process"

// DeadLetterPublisher delivers a serialized request to the dead-letter channel.
type DeadLetterPublisher interface {
	Publish(ctx context.Context, msg models.DeadLetterMessage) error
}

// Route names where dead-lettered requests are sent.
type Route struct {
	Exchange   string
	RoutingKey string
}

type Connector struct {
	Client         *http.Client
	BaseURL        string
	RequestTimeout time.Duration
	RetryConfig    config.RetryConfig
	Publisher      DeadLetterPublisher
	Route          Route
}

func NewConnector(client *http.Client, ext config.External, retryConfig config.RetryConfig, publisher DeadLetterPublisher, route Route) *Connector {
	if client == nil {
		client = &http.Client{}
	}
	if retryConfig.MaxAttempts <= 0 {
		retryConfig.MaxAttempts = 3
	}
	if retryConfig.BaseDelay == 0 {
		retryConfig.BaseDelay = time.Second
	}
	if retryConfig.MaxDelay == 0 {
		retryConfig.MaxDelay = 10 * time.Second
	}
	if ext.RequestTimeout == 0 {
		ext.RequestTimeout = 5 * time.Second
	}
	if route.Exchange == "" {
		route.Exchange = models.DeadLetterExchange
	}
	if route.RoutingKey == "" {
		route.RoutingKey = models.DeadLetterRoutingKey
	}

	return &Connector{
		Client:         client,
		BaseURL:        strings.TrimRight(ext.BaseURL, "/"),
		RequestTimeout: ext.RequestTimeout,
		RetryConfig:    retryConfig,
		Publisher:      publisher,
		Route:          route,
	}
}

// SendRequest forwards req to the external API making at most MaxAttempts attempts.
// A 4xx or other non-retryable failure ends the call immediately. When every
// attempt fails with a retryable failure, or the overall budget runs out, the
// request is dead-lettered before the exhausted error is returned.
func (c *Connector) SendRequest(ctx context.Context, req models.ExternalAPIRequest) (*models.ExternalAPIResponse, error) {
	budgetCtx, cancel := context.WithTimeout(ctx, timeoutBudget(c.RetryConfig, c.RequestTimeout))
	defer cancel()

	var last Failure
	attempts := 0

loop:
	for attempt := 1; attempt <= c.RetryConfig.MaxAttempts; attempt++ {
		attempts = attempt
		resp, failure := c.attempt(budgetCtx, req)
		if failure == nil {
			metrics.ExternalCallAttempts.WithLabelValues("success").Inc()
			if attempt > 1 {
				logrus.WithFields(logrus.Fields{
					"internal_order_id": req.TransactionID,
					"attempts":          attempt,
				}).Info("external call succeeded after retries")
			}
			return resp, nil
		}
		last = *failure

		if ctx.Err() == nil && budgetCtx.Err() != nil {
			metrics.ExternalCallAttempts.WithLabelValues("budget_exceeded").Inc()
			logrus.WithFields(logrus.Fields{
				"internal_order_id": req.TransactionID,
				"attempts":          attempt,
			}).Warn("external call exceeded its timeout budget")
			break loop
		}

		verdict := Classify(last)
		metrics.ExternalCallAttempts.WithLabelValues(verdict.String()).Inc()

		if verdict == NonRetryable {
			logrus.WithFields(logrus.Fields{
				"internal_order_id": req.TransactionID,
				"status_code":       last.StatusCode,
				"transport":         last.Transport,
			}).WithError(last.Err).Error("external call failed with non-retryable error")
			return nil, &models.TransactionError{
				Kind:        models.KindNonRetryableExternal,
				Message:     "external system rejected the transaction",
				ReferenceID: req.TransactionID,
				StatusCode:  last.StatusCode,
				Cause:       last.Err,
			}
		}

		if attempt == c.RetryConfig.MaxAttempts {
			break
		}

		delay := calculateBackoff(c.RetryConfig, attempt-1)
		logrus.WithFields(logrus.Fields{
			"internal_order_id": req.TransactionID,
			"attempt":           attempt,
			"max_attempts":      c.RetryConfig.MaxAttempts,
			"delay":             delay,
		}).WithError(last.Err).Warn("retrying external call")

		select {
		case <-time.After(delay):
		case <-budgetCtx.Done():
			last = transportFailure(budgetCtx.Err())
			if ctx.Err() != nil {
				return nil, &models.TransactionError{
					Kind:        models.KindNonRetryableExternal,
					Message:     "external call cancelled",
					ReferenceID: req.TransactionID,
					Cause:       ctx.Err(),
				}
			}
			break loop
		}
	}

	logrus.WithFields(logrus.Fields{
		"internal_order_id": req.TransactionID,
		"attempts":          attempts,
	}).WithError(last.Err).Error("external call retries exhausted")

	// The caller's cancellation must not prevent the dead-letter publish.
	dlqCtx, dlqCancel := context.WithTimeout(context.WithoutCancel(ctx), c.RequestTimeout)
	defer dlqCancel()
	deadLettered := c.SendToDeadLetter(dlqCtx, req)

	return nil, &models.TransactionError{
		Kind:         models.KindExhaustedRetry,
		Message:      fmt.Sprintf("external system unavailable after %d attempts", attempts),
		ReferenceID:  req.TransactionID,
		StatusCode:   last.StatusCode,
		DeadLettered: deadLettered,
		Cause:        last.Err,
	}
}

func (c *Connector) attempt(ctx context.Context, req models.ExternalAPIRequest) (*models.ExternalAPIResponse, *Failure) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.RequestTimeout)
	defer cancel()

	body, err := json.Marshal(req)
	if err != nil {
		f := Failure{Transport: TransportOther, Err: fmt.Errorf("error marshaling request: %w", err)}
		return nil, &f
	}

	httpReq, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, c.BaseURL+processPath, bytes.NewReader(body))
	if err != nil {
		f := Failure{Transport: TransportOther, Err: err}
		return nil, &f
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)

	resp, err := c.Client.Do(httpReq)
	if err != nil {
		f := transportFailure(err)
		if f.Transport == TransportTimeout && ctx.Err() != nil {
			// The budget, not the attempt, ran out.
			f.Transport = TransportCanceled
		}
		return nil, &f
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		f := statusFailure(resp.StatusCode, fmt.Errorf("external API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail))))
		return nil, &f
	}

	var out models.ExternalAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return &out, nil
		}
		f := Failure{Transport: TransportDecode, Err: fmt.Errorf("error decoding external response: %w", err)}
		return nil, &f
	}
	return &out, nil
}

// PublishDeadLetter serializes req and hands it to the dead-letter publisher.
func (c *Connector) PublishDeadLetter(ctx context.Context, req models.ExternalAPIRequest) error {
	if c.Publisher == nil {
		metrics.DeadLetterPublishTotal.WithLabelValues("error").Inc()
		return &models.TransactionError{
			Kind:        models.KindDeadLetterPublish,
			Message:     "no dead-letter publisher configured",
			ReferenceID: req.TransactionID,
		}
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return &models.TransactionError{
			Kind:        models.KindDeadLetterPublish,
			Message:     "error marshaling dead letter",
			ReferenceID: req.TransactionID,
			Cause:       err,
		}
	}

	msg := models.DeadLetterMessage{
		Exchange:   c.Route.Exchange,
		RoutingKey: c.Route.RoutingKey,
		Key:        req.TransactionID,
		Payload:    payload,
		Timestamp:  time.Now().UTC(),
	}
	if err := c.Publisher.Publish(ctx, msg); err != nil {
		metrics.DeadLetterPublishTotal.WithLabelValues("error").Inc()
		return &models.TransactionError{
			Kind:        models.KindDeadLetterPublish,
			Message:     "dead-letter publish failed",
			ReferenceID: req.TransactionID,
			Cause:       err,
		}
	}

	metrics.DeadLetterPublishTotal.WithLabelValues("ok").Inc()
	return nil
}

// SendToDeadLetter is the best-effort variant used on the synchronous path:
// publish errors are logged and reported only as false.
func (c *Connector) SendToDeadLetter(ctx context.Context, req models.ExternalAPIRequest) bool {
	if err := c.PublishDeadLetter(ctx, req); err != nil {
		logrus.WithField("internal_order_id", req.TransactionID).WithError(err).Error("failed to send transaction to dead letter")
		return false
	}
	logrus.WithField("internal_order_id", req.TransactionID).Info("transaction sent to dead letter")
	return true
}
