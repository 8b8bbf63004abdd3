package posgrest

import (
	"context"
	"time"

	"github.com/jeffleon2/draftea-connector-service/internal/models"
	"gorm.io/gorm"
)

// AuditRepository persists TransactionAudit rows. Status changes are conditional
// single-row updates so concurrent writers cannot overwrite a terminal state.
type AuditRepository struct {
	*repository[models.TransactionAudit]
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{New[models.TransactionAudit](db)}
}

// FindByOrderID returns every audit row for the order, newest first.
func (r *AuditRepository) FindByOrderID(ctx context.Context, orderID string) ([]models.TransactionAudit, error) {
	return r.GetBy(ctx, "internal_order_id = ?", orderID, "created_at DESC, id DESC")
}

// FindStuckFailed selects FAILED rows that were never dead-lettered and have not been touched since cutoff.
func (r *AuditRepository) FindStuckFailed(ctx context.Context, cutoff time.Time, limit int) ([]models.TransactionAudit, error) {
	var audits []models.TransactionAudit
	err := r.db.WithContext(ctx).
		Where("status = ? AND notification_sent = ? AND updated_at < ?", models.StatusFailed, false, cutoff).
		Order("updated_at ASC").
		Limit(limit).
		Find(&audits).Error
	return audits, err
}

// FindStalePending selects PENDING rows created before cutoff.
func (r *AuditRepository) FindStalePending(ctx context.Context, cutoff time.Time, limit int) ([]models.TransactionAudit, error) {
	var audits []models.TransactionAudit
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", models.StatusPending, cutoff).
		Order("created_at ASC").
		Limit(limit).
		Find(&audits).Error
	return audits, err
}

// Transition writes next over the row only if it is still in status from.
// It returns models.ErrStaleTransition when another writer got there first.
func (r *AuditRepository) Transition(ctx context.Context, next models.TransactionAudit, from models.AuditStatus) error {
	res := r.db.WithContext(ctx).
		Model(&models.TransactionAudit{}).
		Where("id = ? AND status = ?", next.ID, from).
		Updates(map[string]interface{}{
			"status":            next.Status,
			"details":           next.Details,
			"notification_sent": next.NotificationSent,
			"updated_at":        next.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrStaleTransition
	}
	return nil
}

// MarkNotified flips notification_sent on a FAILED row. updated_at is left alone.
func (r *AuditRepository) MarkNotified(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).
		Model(&models.TransactionAudit{}).
		Where("id = ? AND status = ? AND notification_sent = ?", id, models.StatusFailed, false).
		UpdateColumn("notification_sent", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrStaleTransition
	}
	return nil
}
