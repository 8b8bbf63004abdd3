package handlers

import (
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-connector-service/internal/models"
)

// MockExternalHandler stands in for the external payment system in local and test environments.
type MockExternalHandler struct {
	Delay func() time.Duration
}

func NewMockExternalHandler() *MockExternalHandler {
	return &MockExternalHandler{
		Delay: func() time.Duration {
			return time.Duration(50+rand.IntN(450)) * time.Millisecond
		},
	}
}

// POST /mock-external/v1/process
func (h *MockExternalHandler) Process(c *gin.Context) {
	var req models.ExternalAPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	delay := h.Delay()
	select {
	case <-time.After(delay):
	case <-c.Request.Context().Done():
		return
	}

	c.JSON(http.StatusOK, models.ExternalAPIResponse{
		StatusCode:       http.StatusOK,
		ConfirmationID:   uuid.NewString(),
		DetailStatus:     "COMPLETED",
		ProcessingTimeMs: delay.Milliseconds(),
	})
}

// POST /mock-auth/token
func MockToken(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"access_token": "mock-jwt-token-" + uuid.NewString(),
		"token_type":   "Bearer",
		"expires_in":   3600,
		"scope":        "write",
	})
}
