package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-connector-service/config"
	handlers "github.com/jeffleon2/draftea-connector-service/internal/handlers"
	"github.com/stretchr/testify/assert"
)

func routeSet(r *gin.Engine) map[string]bool {
	set := map[string]bool{}
	for _, route := range r.Routes() {
		set[route.Method+" "+route.Path] = true
	}
	return set
}

func newTestApp(env, roles string) *App {
	gin.SetMode(gin.TestMode)
	return &App{
		config: &config.Config{APP: config.APP{ENV: env, Roles: roles, APIKey: "k"}},
		Router: gin.New(),
	}
}

func TestRegisterRoutes_APIRole(t *testing.T) {
	a := newTestApp("production", "api")
	a.RegisterRoutes(handlers.NewTransactionHandler(nil), nil)

	routes := routeSet(a.Router)
	assert.True(t, routes["POST /api/transactions"])
	assert.True(t, routes["GET /api/transactions/:internalOrderId"])
	assert.True(t, routes["POST /api/middleware/v1/transaction"])
	assert.True(t, routes["GET /health"])
	assert.True(t, routes["GET /metrics"])
	assert.False(t, routes["POST /mock-external/v1/process"])
}

func TestRegisterRoutes_WorkerOnly(t *testing.T) {
	a := newTestApp("production", "rescuer,consumer")
	a.RegisterRoutes(handlers.NewTransactionHandler(nil), nil)

	routes := routeSet(a.Router)
	assert.False(t, routes["POST /api/transactions"])
	assert.True(t, routes["GET /health"])
}

func TestRegisterRoutes_LocalMocks(t *testing.T) {
	a := newTestApp("local", "api")
	a.RegisterRoutes(handlers.NewTransactionHandler(nil), nil)

	routes := routeSet(a.Router)
	assert.True(t, routes["POST /mock-external/v1/process"])
	assert.True(t, routes["POST /mock-auth/token"])

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInitScheduler_Roles(t *testing.T) {
	a := newTestApp("production", "api")
	assert.Nil(t, a.initScheduler())

	a = newTestApp("production", "rescuer,cleanup")
	a.config.Scheduler = config.Scheduler{RescueInterval: 1, CleanupInterval: 1}
	runner := a.initScheduler()
	if assert.NotNil(t, runner) {
		assert.Len(t, runner.Jobs, 2)
	}
}
