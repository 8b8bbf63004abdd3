package models

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	KindValidation           ErrorKind = "validation"
	KindNonRetryableExternal ErrorKind = "non_retryable_external"
	KindRetryableExternal    ErrorKind = "retryable_external"
	KindExhaustedRetry       ErrorKind = "exhausted_retry"
	KindPersistence          ErrorKind = "persistence"
	KindDeadLetterPublish    ErrorKind = "dead_letter_publish"
)

// TransactionError is the single error type surfaced by the forwarding engine.
type TransactionError struct {
	Kind        ErrorKind
	Message     string
	ReferenceID string
	// StatusCode is the upstream HTTP status, zero for transport failures.
	StatusCode int
	// DeadLettered is set on exhausted failures whose dead-letter publish succeeded.
	DeadLettered bool
	Cause        error
}

func (e *TransactionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TransactionError) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the error kind to the status returned to the caller.
func (e *TransactionError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNonRetryableExternal:
		return http.StatusBadGateway
	case KindRetryableExternal, KindExhaustedRetry:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func NewValidationError(referenceID, message string) *TransactionError {
	return &TransactionError{Kind: KindValidation, Message: message, ReferenceID: referenceID}
}

func NewPersistenceError(referenceID string, cause error) *TransactionError {
	return &TransactionError{Kind: KindPersistence, Message: "audit store unavailable", ReferenceID: referenceID, Cause: cause}
}

// AsTransactionError extracts a *TransactionError from err's chain.
func AsTransactionError(err error) (*TransactionError, bool) {
	var txErr *TransactionError
	if errors.As(err, &txErr) {
		return txErr, true
	}
	return nil, false
}

// IsKind reports whether err carries a TransactionError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	txErr, ok := AsTransactionError(err)
	return ok && txErr.Kind == kind
}
