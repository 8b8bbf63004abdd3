package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-connector-service/config"
	handlers "github.com/jeffleon2/draftea-connector-service/internal/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(h *handlers.TransactionHandler, ping func(ctx context.Context) error) {
	a.Router.GET("/health", handlers.Health(ping))
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if a.config.APP.IsLocal() {
		mock := handlers.NewMockExternalHandler()
		a.Router.POST("/mock-external/v1/process", mock.Process)
		a.Router.POST("/mock-auth/token", handlers.MockToken)
	}

	if !a.config.APP.HasRole(config.RoleAPI) {
		return
	}

	api := a.Router.Group("/api", handlers.APIKeyAuth(a.config.APP.APIKey))
	api.POST("/transactions", h.CreateTransaction)
	api.GET("/transactions/:internalOrderId", h.GetTransactions)
	api.POST("/middleware/v1/transaction", h.CreateTransaction)
}
