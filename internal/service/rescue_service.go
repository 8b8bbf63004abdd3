package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-connector-service/internal/metrics"
	"github.com/jeffleon2/draftea-connector-service/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	JobRescueFailed  = "rescue-failed-transactions"
	JobExpirePending = "expire-stale-pending"
)

// RescueService repairs audit rows left inconsistent by crashes or broker outages.
type RescueService struct {
	Repo            AuditRepo
	Connector       ExternalConnector
	Staleness       time.Duration
	PendingDeadline time.Duration
	BatchSize       int
	Now             func() time.Time
}

func NewRescueService(repo AuditRepo, connector ExternalConnector, staleness, pendingDeadline time.Duration, batchSize int) *RescueService {
	if batchSize <= 0 {
		batchSize = 50
	}
	return &RescueService{
		Repo:            repo,
		Connector:       connector,
		Staleness:       staleness,
		PendingDeadline: pendingDeadline,
		BatchSize:       batchSize,
		Now:             func() time.Time { return time.Now().UTC() },
	}
}

// RescueFailed dead-letters FAILED rows that were never forwarded and marks
// them notified. A row whose publish fails stays eligible for the next run.
func (s *RescueService) RescueFailed(ctx context.Context) (int, error) {
	rows, err := s.Repo.FindStuckFailed(ctx, s.Now().Add(-s.Staleness), s.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("error finding stuck failed transactions: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	logrus.WithField("job", JobRescueFailed).Infof("found %d failed transactions to forward", len(rows))

	rescued := 0
	for _, row := range rows {
		if ctx.Err() != nil {
			break
		}
		log := logrus.WithFields(logrus.Fields{
			"job":               JobRescueFailed,
			"audit_id":          row.ID,
			"internal_order_id": row.InternalOrderID,
		})

		if _, err := row.MarkNotified(); err != nil {
			log.WithError(err).Warn("skipping row")
			continue
		}
		if err := s.Connector.PublishDeadLetter(ctx, row.ExternalRequest()); err != nil {
			log.WithError(err).Error("failed to forward transaction to dead letter")
			continue
		}
		if err := s.Repo.MarkNotified(ctx, row.ID); err != nil {
			log.WithError(err).Error("dead letter sent but notification flag not stored")
			continue
		}
		log.Info("transaction forwarded to dead letter")
		rescued++
	}

	metrics.RescuedTransactionsTotal.WithLabelValues(JobRescueFailed).Add(float64(rescued))
	return rescued, nil
}

// ExpireStalePending fails PENDING rows older than the deadline so that
// RescueFailed picks them up on a later run.
func (s *RescueService) ExpireStalePending(ctx context.Context) (int, error) {
	now := s.Now()
	rows, err := s.Repo.FindStalePending(ctx, now.Add(-s.PendingDeadline), s.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("error finding stale pending transactions: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	logrus.WithField("job", JobExpirePending).Infof("found %d stale pending transactions", len(rows))

	expired := 0
	for _, row := range rows {
		if ctx.Err() != nil {
			break
		}
		log := logrus.WithFields(logrus.Fields{
			"job":               JobExpirePending,
			"audit_id":          row.ID,
			"internal_order_id": row.InternalOrderID,
		})

		next, err := row.Expire(now)
		if err != nil {
			log.WithError(err).Warn("skipping row")
			continue
		}
		if err := s.Repo.Transition(ctx, next, models.StatusPending); err != nil {
			if errors.Is(err, models.ErrStaleTransition) {
				log.Info("row completed concurrently")
			} else {
				log.WithError(err).Error("failed to expire pending transaction")
			}
			continue
		}
		log.Info("pending transaction expired")
		expired++
	}

	metrics.RescuedTransactionsTotal.WithLabelValues(JobExpirePending).Add(float64(expired))
	return expired, nil
}
