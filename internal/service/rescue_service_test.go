package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-connector-service/internal/models"
	"github.com/jeffleon2/draftea-connector-service/internal/service"
	"github.com/jeffleon2/draftea-connector-service/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRescueService(t *testing.T) (*service.RescueService, *mocks.MockAuditRepo, *mocks.MockExternalConnector) {
	repo := mocks.NewMockAuditRepo(t)
	conn := mocks.NewMockExternalConnector(t)
	svc := service.NewRescueService(repo, conn, time.Minute, 24*time.Hour, 50)
	svc.Now = func() time.Time { return fixedNow }
	return svc, repo, conn
}

func failedRow(id uint64, orderID string) models.TransactionAudit {
	return models.TransactionAudit{
		ID:              id,
		InternalOrderID: orderID,
		Amount:          decimal.RequireFromString("10.50"),
		Currency:        "EUR",
		Status:          models.StatusFailed,
		UpdatedAt:       fixedNow.Add(-5 * time.Minute),
	}
}

func TestRescueFailed_ForwardsAndMarksNotified(t *testing.T) {
	svc, repo, conn := newRescueService(t)
	ctx := context.Background()

	repo.EXPECT().
		FindStuckFailed(ctx, fixedNow.Add(-time.Minute), 50).
		Return([]models.TransactionAudit{failedRow(1, "ORD-1"), failedRow(2, "ORD-2")}, nil).
		Once()
	conn.EXPECT().
		PublishDeadLetter(ctx, models.ExternalAPIRequest{TransactionID: "ORD-1", Amount: decimal.RequireFromString("10.50"), Currency: "EUR"}).
		Return(nil).
		Once()
	conn.EXPECT().
		PublishDeadLetter(ctx, mock.MatchedBy(func(r models.ExternalAPIRequest) bool { return r.TransactionID == "ORD-2" })).
		Return(nil).
		Once()
	repo.EXPECT().MarkNotified(ctx, uint64(1)).Return(nil).Once()
	repo.EXPECT().MarkNotified(ctx, uint64(2)).Return(nil).Once()

	n, err := svc.RescueFailed(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRescueFailed_RowFailureDoesNotAbortSweep(t *testing.T) {
	svc, repo, conn := newRescueService(t)
	ctx := context.Background()

	repo.EXPECT().
		FindStuckFailed(ctx, mock.AnythingOfType("time.Time"), 50).
		Return([]models.TransactionAudit{failedRow(1, "ORD-1"), failedRow(2, "ORD-2")}, nil).
		Once()
	conn.EXPECT().
		PublishDeadLetter(ctx, mock.MatchedBy(func(r models.ExternalAPIRequest) bool { return r.TransactionID == "ORD-1" })).
		Return(&models.TransactionError{Kind: models.KindDeadLetterPublish, Message: "dead-letter publish failed"}).
		Once()
	conn.EXPECT().
		PublishDeadLetter(ctx, mock.MatchedBy(func(r models.ExternalAPIRequest) bool { return r.TransactionID == "ORD-2" })).
		Return(nil).
		Once()
	repo.EXPECT().MarkNotified(ctx, uint64(2)).Return(nil).Once()

	n, err := svc.RescueFailed(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	repo.AssertNotCalled(t, "MarkNotified", ctx, uint64(1))
}

func TestRescueFailed_SecondRunPublishesNothing(t *testing.T) {
	svc, repo, conn := newRescueService(t)
	ctx := context.Background()

	repo.EXPECT().
		FindStuckFailed(ctx, mock.AnythingOfType("time.Time"), 50).
		Return([]models.TransactionAudit{failedRow(1, "ORD-1")}, nil).
		Once()
	repo.EXPECT().
		FindStuckFailed(ctx, mock.AnythingOfType("time.Time"), 50).
		Return([]models.TransactionAudit{}, nil).
		Once()
	conn.EXPECT().
		PublishDeadLetter(ctx, mock.AnythingOfType("models.ExternalAPIRequest")).
		Return(nil).
		Once()
	repo.EXPECT().MarkNotified(ctx, uint64(1)).Return(nil).Once()

	first, err := svc.RescueFailed(ctx)
	require.NoError(t, err)
	second, err := svc.RescueFailed(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second)
}

func TestRescueFailed_SkipsAlreadyNotified(t *testing.T) {
	svc, repo, _ := newRescueService(t)
	ctx := context.Background()

	row := failedRow(1, "ORD-1")
	row.NotificationSent = true
	repo.EXPECT().
		FindStuckFailed(ctx, mock.AnythingOfType("time.Time"), 50).
		Return([]models.TransactionAudit{row}, nil).
		Once()

	n, err := svc.RescueFailed(ctx)

	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRescueFailed_StoreError(t *testing.T) {
	svc, repo, _ := newRescueService(t)
	ctx := context.Background()

	repo.EXPECT().
		FindStuckFailed(ctx, mock.AnythingOfType("time.Time"), 50).
		Return(nil, errors.New("connection reset")).
		Once()

	_, err := svc.RescueFailed(ctx)

	assert.Error(t, err)
}

func TestExpireStalePending(t *testing.T) {
	svc, repo, _ := newRescueService(t)
	ctx := context.Background()

	stale := models.NewPendingAudit("ORD-9", decimal.NewFromInt(1), "USD", "WEB", fixedNow.Add(-25*time.Hour))
	stale.ID = 9
	raced := models.NewPendingAudit("ORD-10", decimal.NewFromInt(1), "USD", "WEB", fixedNow.Add(-25*time.Hour))
	raced.ID = 10

	repo.EXPECT().
		FindStalePending(ctx, fixedNow.Add(-24*time.Hour), 50).
		Return([]models.TransactionAudit{stale, raced}, nil).
		Once()
	repo.EXPECT().
		Transition(ctx, mock.MatchedBy(func(a models.TransactionAudit) bool {
			return a.ID == 9 &&
				a.Status == models.StatusFailed &&
				a.Details == models.PendingTimeoutDetails &&
				!a.NotificationSent
		}), models.StatusPending).
		Return(nil).
		Once()
	repo.EXPECT().
		Transition(ctx, mock.MatchedBy(func(a models.TransactionAudit) bool { return a.ID == 10 }), models.StatusPending).
		Return(models.ErrStaleTransition).
		Once()

	n, err := svc.ExpireStalePending(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestExpireStalePending_Nothing(t *testing.T) {
	svc, repo, _ := newRescueService(t)
	ctx := context.Background()

	repo.EXPECT().
		FindStalePending(ctx, mock.AnythingOfType("time.Time"), 50).
		Return(nil, nil).
		Once()

	n, err := svc.ExpireStalePending(ctx)

	require.NoError(t, err)
	assert.Zero(t, n)
}
