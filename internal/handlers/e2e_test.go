package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-connector-service/config"
	"github.com/jeffleon2/draftea-connector-service/internal/connector"
	"github.com/jeffleon2/draftea-connector-service/internal/handlers"
	"github.com/jeffleon2/draftea-connector-service/internal/models"
	"github.com/jeffleon2/draftea-connector-service/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo is an in-process audit store with the same conditional-update rules as the database one.
type memoryRepo struct {
	mu     sync.Mutex
	nextID uint64
	rows   map[uint64]models.TransactionAudit
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: map[uint64]models.TransactionAudit{}}
}

func (r *memoryRepo) Create(_ context.Context, audit *models.TransactionAudit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	audit.ID = r.nextID
	r.rows[audit.ID] = *audit
	return nil
}

func (r *memoryRepo) Transition(_ context.Context, next models.TransactionAudit, from models.AuditStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.rows[next.ID]
	if !ok || cur.Status != from {
		return models.ErrStaleTransition
	}
	r.rows[next.ID] = next
	return nil
}

func (r *memoryRepo) MarkNotified(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.rows[id]
	if !ok {
		return models.ErrStaleTransition
	}
	next, err := cur.MarkNotified()
	if err != nil {
		return models.ErrStaleTransition
	}
	r.rows[id] = next
	return nil
}

func (r *memoryRepo) FindByOrderID(_ context.Context, orderID string) ([]models.TransactionAudit, error) {
	return r.filter(func(a models.TransactionAudit) bool { return a.InternalOrderID == orderID }), nil
}

func (r *memoryRepo) FindStuckFailed(_ context.Context, cutoff time.Time, _ int) ([]models.TransactionAudit, error) {
	return r.filter(func(a models.TransactionAudit) bool {
		return a.Status == models.StatusFailed && !a.NotificationSent && a.UpdatedAt.Before(cutoff)
	}), nil
}

func (r *memoryRepo) FindStalePending(_ context.Context, cutoff time.Time, _ int) ([]models.TransactionAudit, error) {
	return r.filter(func(a models.TransactionAudit) bool {
		return a.Status == models.StatusPending && a.CreatedAt.Before(cutoff)
	}), nil
}

func (r *memoryRepo) filter(keep func(models.TransactionAudit) bool) []models.TransactionAudit {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.TransactionAudit
	for _, a := range r.rows {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

type recordingPublisher struct {
	mu   sync.Mutex
	msgs []models.DeadLetterMessage
}

func (p *recordingPublisher) Publish(_ context.Context, msg models.DeadLetterMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
	return nil
}

func newE2ERouter(t *testing.T, external http.Handler) (*gin.Engine, *memoryRepo, *recordingPublisher) {
	t.Helper()
	srv := httptest.NewServer(external)
	t.Cleanup(srv.Close)

	repo := newMemoryRepo()
	pub := &recordingPublisher{}
	conn := connector.NewConnector(nil,
		config.External{BaseURL: srv.URL, RequestTimeout: 2 * time.Second},
		config.RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond},
		pub, connector.Route{})
	svc := service.NewTransactionService(repo, conn)

	return newRouter(svc), repo, pub
}

func TestEndToEnd_MockExternalSuccess(t *testing.T) {
	mockExternal := handlers.NewMockExternalHandler()
	mockExternal.Delay = func() time.Duration { return time.Millisecond }
	external := gin.New()
	external.POST("/v1/process", mockExternal.Process)

	r, repo, pub := newE2ERouter(t, external)

	w := doRequest(r, http.MethodPost, "/api/transactions",
		`{"internalOrderId":"E2E-001","amount":250.75,"currencyCode":"CZK","serviceType":"WEB"}`, testAPIKey)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "E2E-001", resp.InternalReferenceID)
	assert.Equal(t, "OK: COMPLETED", resp.Message)

	rows, err := repo.FindByOrderID(context.Background(), "E2E-001")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.StatusSuccess, rows[0].Status)
	assert.Equal(t, "CZK", rows[0].Currency)
	assert.True(t, decimal.RequireFromString("250.75").Equal(rows[0].Amount))
	assert.Contains(t, rows[0].Details, "Confirmed ID: ")
	assert.Empty(t, pub.msgs)
}

func TestEndToEnd_ClientErrorRecordsFailed(t *testing.T) {
	r, repo, pub := newE2ERouter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))

	w := doRequest(r, http.MethodPost, "/api/transactions",
		`{"internalOrderId":"E2E-002","amount":10,"currencyCode":"EUR"}`, testAPIKey)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	rows, _ := repo.FindByOrderID(context.Background(), "E2E-002")
	require.Len(t, rows, 1)
	assert.Equal(t, models.StatusFailed, rows[0].Status)
	assert.False(t, rows[0].NotificationSent)
	assert.Empty(t, pub.msgs)
}

func TestEndToEnd_UnavailableDeadLetters(t *testing.T) {
	r, repo, pub := newE2ERouter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	w := doRequest(r, http.MethodPost, "/api/transactions",
		`{"internalOrderId":"E2E-003","amount":10,"currencyCode":"EUR"}`, testAPIKey)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	rows, _ := repo.FindByOrderID(context.Background(), "E2E-003")
	require.Len(t, rows, 1)
	assert.Equal(t, models.StatusFailed, rows[0].Status)
	assert.True(t, rows[0].NotificationSent)
	require.Len(t, pub.msgs, 1)
	assert.Equal(t, "E2E-003", pub.msgs[0].Key)
}

func TestEndToEnd_ValidationWritesNoAudit(t *testing.T) {
	r, repo, _ := newE2ERouter(t, http.NotFoundHandler())

	w := doRequest(r, http.MethodPost, "/api/transactions",
		`{"internalOrderId":"E2E-004","amount":0,"currencyCode":"CZK"}`, testAPIKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	rows, _ := repo.FindByOrderID(context.Background(), "E2E-004")
	assert.Empty(t, rows)
}
