package service

import (
	"context"
	"errors"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/jeffleon2/draftea-connector-service/internal/metrics"
	"github.com/jeffleon2/draftea-connector-service/internal/models"
	"github.com/jeffleon2/draftea-connector-service/internal/models/dto"
	"github.com/jeffleon2/draftea-connector-service/internal/validation"
	"github.com/sirupsen/logrus"
)

// AuditRepo defines the audit store operations used by the orchestrator and the sweeps.
type AuditRepo interface {
	Create(ctx context.Context, audit *models.TransactionAudit) error
	Transition(ctx context.Context, next models.TransactionAudit, from models.AuditStatus) error
	MarkNotified(ctx context.Context, id uint64) error
	FindByOrderID(ctx context.Context, orderID string) ([]models.TransactionAudit, error)
	FindStuckFailed(ctx context.Context, cutoff time.Time, limit int) ([]models.TransactionAudit, error)
	FindStalePending(ctx context.Context, cutoff time.Time, limit int) ([]models.TransactionAudit, error)
}

// ExternalConnector defines the calls made to the external payment system and its dead-letter channel.
type ExternalConnector interface {
	SendRequest(ctx context.Context, req models.ExternalAPIRequest) (*models.ExternalAPIResponse, error)
	PublishDeadLetter(ctx context.Context, req models.ExternalAPIRequest) error
}

// TransactionService forwards validated transactions to the external system and
// records every outcome in the audit store.
//
// Each valid request gets exactly one PENDING row, written before the external
// call, and exactly one later transition to SUCCESS or FAILED.
type TransactionService struct {
	Repo      AuditRepo
	Connector ExternalConnector
	Validator *validatorv10.Validate
	Now       func() time.Time
}

func NewTransactionService(repo AuditRepo, connector ExternalConnector) *TransactionService {
	return &TransactionService{
		Repo:      repo,
		Connector: connector,
		Validator: validation.New(),
		Now:       func() time.Time { return time.Now().UTC() },
	}
}

// Process runs one transaction through validate, PENDING, external call and terminal write.
// The returned response is always populated; err is a *models.TransactionError when not nil.
func (s *TransactionService) Process(ctx context.Context, req *dto.TransactionRequest) (dto.TransactionResponse, error) {
	if req == nil {
		txErr := models.NewValidationError("", "request body is required")
		return dto.Failed(txErr.Message, ""), txErr
	}

	req.Sanitize()
	if err := s.Validator.Struct(req); err != nil {
		msg := validation.Describe(err)
		logrus.WithField("internal_order_id", req.InternalOrderID).Warnf("transaction rejected: %s", msg)
		metrics.TransactionsTotal.WithLabelValues("REJECTED").Inc()
		return dto.Failed(msg, req.InternalOrderID), models.NewValidationError(req.InternalOrderID, msg)
	}

	audit := req.ToAudit(s.Now())
	if err := s.Repo.Create(ctx, &audit); err != nil {
		txErr := models.NewPersistenceError(req.InternalOrderID, err)
		logrus.WithField("internal_order_id", req.InternalOrderID).WithError(err).Error("failed to write pending audit")
		return dto.Failed(txErr.Message, req.InternalOrderID), txErr
	}

	log := logrus.WithFields(logrus.Fields{
		"internal_order_id": audit.InternalOrderID,
		"audit_id":          audit.ID,
		"service_type":      audit.ServiceType,
	})
	log.Info("pending audit written")

	start := time.Now()
	resp, err := s.Connector.SendRequest(ctx, audit.ExternalRequest())
	elapsed := time.Since(start)

	if err == nil && resp.IsEmpty() {
		err = &models.TransactionError{
			Kind:        models.KindNonRetryableExternal,
			Message:     "empty response from external system",
			ReferenceID: audit.InternalOrderID,
		}
	}

	// Terminal writes must land even when the caller has gone away.
	persistCtx := context.WithoutCancel(ctx)

	if err != nil {
		metrics.ExternalCallDuration.WithLabelValues("failure").Observe(elapsed.Seconds())
		return s.fail(persistCtx, log, audit, err)
	}

	metrics.ExternalCallDuration.WithLabelValues("success").Observe(elapsed.Seconds())
	log.WithField("elapsed_ms", elapsed.Milliseconds()).Info("external call completed")

	next, err := audit.Succeed(resp.ConfirmationID, s.Now())
	if err != nil {
		return dto.Failed(err.Error(), audit.InternalOrderID), models.NewPersistenceError(audit.InternalOrderID, err)
	}

	if err := s.Repo.Transition(persistCtx, next, models.StatusPending); err != nil {
		if !errors.Is(err, models.ErrStaleTransition) {
			log.WithError(err).Error("failed to write success audit")
			txErr := models.NewPersistenceError(audit.InternalOrderID, err)
			return dto.Failed(txErr.Message, audit.InternalOrderID), txErr
		}
		log.Warn("audit changed before success could be recorded")
	} else {
		log.Info("audit marked SUCCESS")
	}

	metrics.TransactionsTotal.WithLabelValues(string(models.StatusSuccess)).Inc()
	return dto.Succeeded(resp, audit.InternalOrderID), nil
}

func (s *TransactionService) fail(ctx context.Context, log *logrus.Entry, audit models.TransactionAudit, cause error) (dto.TransactionResponse, error) {
	txErr, ok := models.AsTransactionError(cause)
	if !ok {
		txErr = &models.TransactionError{
			Kind:        models.KindNonRetryableExternal,
			Message:     "external call failed",
			ReferenceID: audit.InternalOrderID,
			Cause:       cause,
		}
	}

	next, err := audit.Fail(txErr.Error(), txErr.DeadLettered, s.Now())
	if err == nil {
		err = s.Repo.Transition(ctx, next, models.StatusPending)
	}
	switch {
	case err == nil:
		log.WithFields(logrus.Fields{
			"kind":              txErr.Kind,
			"notification_sent": next.NotificationSent,
		}).WithError(cause).Warn("audit marked FAILED")
	case errors.Is(err, models.ErrStaleTransition):
		log.Warn("audit changed before failure could be recorded")
	default:
		// The row stays PENDING and is expired by the cleanup sweep.
		log.WithError(err).Error("failed to write failure audit")
	}

	metrics.TransactionsTotal.WithLabelValues(string(models.StatusFailed)).Inc()
	return dto.Failed(txErr.Message, audit.InternalOrderID), txErr
}

// FindByOrderID lists every audit recorded for the order, newest first.
func (s *TransactionService) FindByOrderID(ctx context.Context, orderID string) ([]models.TransactionAudit, error) {
	audits, err := s.Repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, models.NewPersistenceError(orderID, err)
	}
	return audits, nil
}
