package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-connector-service/internal/models/dto"
)

const (
	APIKeyHeader = "X-API-KEY"
	PrincipalKey = "principal"

	PrincipalAPIClient = "API_CLIENT_SERVICE"
)

// APIKeyAuth rejects requests whose X-API-KEY does not match apiKey. An empty
// apiKey rejects everything.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := c.GetHeader(APIKeyHeader)
		if apiKey == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(apiKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failed("invalid or missing API key", ""))
			return
		}
		c.Set(PrincipalKey, PrincipalAPIClient)
		c.Next()
	}
}
