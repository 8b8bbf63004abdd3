package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-connector-service/internal/models"
	"github.com/jeffleon2/draftea-connector-service/internal/models/dto"
	"github.com/sirupsen/logrus"
)

type TransactionService interface {
	Process(ctx context.Context, req *dto.TransactionRequest) (dto.TransactionResponse, error)
	FindByOrderID(ctx context.Context, orderID string) ([]models.TransactionAudit, error)
}

type TransactionHandler struct {
	Service TransactionService
}

func NewTransactionHandler(s TransactionService) *TransactionHandler {
	return &TransactionHandler{Service: s}
}

// POST /api/transactions
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("invalid transaction body")
		c.JSON(http.StatusBadRequest, dto.Failed("invalid request body", ""))
		return
	}

	resp, err := h.Service.Process(c.Request.Context(), &req)
	if err != nil {
		c.JSON(statusFor(err), resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GET /api/transactions/:internalOrderId
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	orderID := c.Param("internalOrderId")

	audits, err := h.Service.FindByOrderID(c.Request.Context(), orderID)
	if err != nil {
		logrus.WithField("internal_order_id", orderID).WithError(err).Error("audit lookup failed")
		c.JSON(statusFor(err), dto.Failed("audit store unavailable", orderID))
		return
	}
	if len(audits) == 0 {
		c.JSON(http.StatusNotFound, dto.Failed("transaction not found", orderID))
		return
	}

	c.JSON(http.StatusOK, audits)
}

func statusFor(err error) int {
	if txErr, ok := models.AsTransactionError(err); ok {
		return txErr.HTTPStatus()
	}
	return http.StatusInternalServerError
}
