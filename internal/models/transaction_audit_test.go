package models_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-connector-service/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func pending() models.TransactionAudit {
	return models.NewPendingAudit("ORD-1", decimal.RequireFromString("250.75"), "CZK", "WEB", now)
}

func TestSucceed(t *testing.T) {
	a := pending()

	next, err := a.Succeed("conf-1", now.Add(time.Second))

	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, next.Status)
	assert.Equal(t, "Confirmed ID: conf-1", next.Details)
	assert.Equal(t, now.Add(time.Second), next.UpdatedAt)
	assert.Equal(t, models.StatusPending, a.Status, "receiver is not modified")
}

func TestFail(t *testing.T) {
	next, err := pending().Fail("boom", true, now)

	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, next.Status)
	assert.Equal(t, "boom", next.Details)
	assert.True(t, next.NotificationSent)
}

func TestTerminalStatesAreFinal(t *testing.T) {
	done, err := pending().Succeed("conf-1", now)
	require.NoError(t, err)
	failed, err := pending().Fail("boom", false, now)
	require.NoError(t, err)

	_, err = done.Fail("late", false, now)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
	_, err = failed.Succeed("late", now)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
	_, err = done.Expire(now)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestExpire(t *testing.T) {
	next, err := pending().Expire(now)

	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, next.Status)
	assert.Equal(t, models.PendingTimeoutDetails, next.Details)
	assert.False(t, next.NotificationSent)
}

func TestMarkNotified(t *testing.T) {
	failed, err := pending().Fail("boom", false, now)
	require.NoError(t, err)

	notified, err := failed.MarkNotified()
	require.NoError(t, err)
	assert.True(t, notified.NotificationSent)
	assert.Equal(t, failed.UpdatedAt, notified.UpdatedAt)

	_, err = notified.MarkNotified()
	assert.ErrorIs(t, err, models.ErrInvalidTransition)

	_, err = pending().MarkNotified()
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestExternalRequest(t *testing.T) {
	req := pending().ExternalRequest()

	assert.Equal(t, "ORD-1", req.TransactionID)
	assert.Equal(t, "CZK", req.Currency)

	body, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"transactionId":"ORD-1","amount":250.75,"currency":"CZK"}`, string(body))
}

func TestAuditStatus(t *testing.T) {
	assert.False(t, models.StatusPending.IsTerminal())
	assert.True(t, models.StatusSuccess.IsTerminal())
	assert.True(t, models.StatusFailed.IsTerminal())
	assert.True(t, models.StatusPending.IsValid())
	assert.False(t, models.AuditStatus("AUTHORIZED").IsValid())
}

func TestExternalAPIResponse_IsEmpty(t *testing.T) {
	var nilResp *models.ExternalAPIResponse
	assert.True(t, nilResp.IsEmpty())
	assert.True(t, (&models.ExternalAPIResponse{}).IsEmpty())
	assert.False(t, (&models.ExternalAPIResponse{ConfirmationID: "x"}).IsEmpty())
}

func TestTransactionError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := fmt.Errorf("wrapped: %w", &models.TransactionError{Kind: models.KindExhaustedRetry, Message: "unavailable", Cause: cause})

	txErr, ok := models.AsTransactionError(err)
	require.True(t, ok)
	assert.Equal(t, "unavailable: dial tcp: connection refused", txErr.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, models.IsKind(err, models.KindExhaustedRetry))
	assert.False(t, models.IsKind(errors.New("plain"), models.KindExhaustedRetry))

	statuses := map[models.ErrorKind]int{
		models.KindValidation:           http.StatusBadRequest,
		models.KindNonRetryableExternal: http.StatusBadGateway,
		models.KindRetryableExternal:    http.StatusServiceUnavailable,
		models.KindExhaustedRetry:       http.StatusServiceUnavailable,
		models.KindPersistence:          http.StatusInternalServerError,
		models.KindDeadLetterPublish:    http.StatusInternalServerError,
	}
	for kind, want := range statuses {
		assert.Equal(t, want, (&models.TransactionError{Kind: kind}).HTTPStatus(), kind)
	}
}
