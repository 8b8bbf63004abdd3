package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type AuditStatus string

const (
	StatusPending AuditStatus = "PENDING"
	StatusSuccess AuditStatus = "SUCCESS"
	StatusFailed  AuditStatus = "FAILED"

	ServiceTypeRetry = "RETRY_SERVICE"

	PendingTimeoutDetails = "Timeout - automatically cancelled by scheduler"
)

var (
	// ErrInvalidTransition is returned when a transition is not allowed from the current status.
	ErrInvalidTransition = errors.New("invalid audit status transition")
	// ErrStaleTransition is returned by the store when the row no longer matches the
	// status the transition was computed from.
	ErrStaleTransition = errors.New("audit row changed concurrently")
)

func init() {
	// Amounts travel as JSON numbers on every wire we speak.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionAudit is the system of record for one forwarding attempt of a transaction.
//
// Values are treated as immutable: the transition methods return a new value and
// never touch the receiver. Once SUCCESS or FAILED, only NotificationSent may change,
// and only from false to true.
type TransactionAudit struct {
	ID               uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	InternalOrderID  string          `gorm:"index;not null" json:"internalOrderId"`
	Amount           decimal.Decimal `gorm:"type:numeric(19,4);not null" json:"amount"`
	Currency         string          `gorm:"not null" json:"currency"`
	ServiceType      string          `json:"serviceType"`
	Status           AuditStatus     `gorm:"index;not null" json:"status"`
	Details          string          `json:"details,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `gorm:"index" json:"updatedAt"`
	NotificationSent bool            `gorm:"not null;default:false" json:"notificationSent"`
}

func (TransactionAudit) TableName() string {
	return "transaction_audit"
}

// NewPendingAudit builds the row written before any external call is made.
func NewPendingAudit(orderID string, amount decimal.Decimal, currency, serviceType string, at time.Time) TransactionAudit {
	return TransactionAudit{
		InternalOrderID: orderID,
		Amount:          amount,
		Currency:        currency,
		ServiceType:     serviceType,
		Status:          StatusPending,
		CreatedAt:       at,
		UpdatedAt:       at,
	}
}

// Succeed moves a PENDING audit to SUCCESS, recording the external confirmation id.
func (a TransactionAudit) Succeed(confirmationID string, at time.Time) (TransactionAudit, error) {
	if a.Status != StatusPending {
		return a, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, StatusSuccess)
	}
	a.Status = StatusSuccess
	a.Details = "Confirmed ID: " + confirmationID
	a.UpdatedAt = at
	return a, nil
}

// Fail moves a PENDING audit to FAILED. notified is true when the failure has
// already been forwarded to the dead-letter channel.
func (a TransactionAudit) Fail(details string, notified bool, at time.Time) (TransactionAudit, error) {
	if a.Status != StatusPending {
		return a, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, StatusFailed)
	}
	a.Status = StatusFailed
	a.Details = details
	a.NotificationSent = notified
	a.UpdatedAt = at
	return a, nil
}

// Expire fails an abandoned PENDING audit.
func (a TransactionAudit) Expire(at time.Time) (TransactionAudit, error) {
	return a.Fail(PendingTimeoutDetails, false, at)
}

// MarkNotified flags a FAILED audit as forwarded to the dead-letter channel.
func (a TransactionAudit) MarkNotified() (TransactionAudit, error) {
	if a.Status != StatusFailed || a.NotificationSent {
		return a, fmt.Errorf("%w: mark notified on %s (notified=%t)", ErrInvalidTransition, a.Status, a.NotificationSent)
	}
	a.NotificationSent = true
	return a, nil
}

// ExternalRequest projects the audit onto the external system's request shape.
func (a TransactionAudit) ExternalRequest() ExternalAPIRequest {
	return ExternalAPIRequest{
		TransactionID: a.InternalOrderID,
		Amount:        a.Amount,
		Currency:      a.Currency,
	}
}

func (s AuditStatus) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

func (s AuditStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusSuccess, StatusFailed:
		return true
	default:
		return false
	}
}
