package dto

import (
	"strings"
	"time"

	"github.com/jeffleon2/draftea-connector-service/internal/models"
	"github.com/shopspring/decimal"
)

// TransactionRequest is the caller's input to POST /api/transactions.
type TransactionRequest struct {
	InternalOrderID string          `json:"internalOrderId"`
	Amount          decimal.Decimal `json:"amount" validate:"gt=0"`
	CurrencyCode    string          `json:"currencyCode" validate:"required"`
	ServiceType     string          `json:"serviceType"`
	RequestedAt     time.Time       `json:"requestedAt"`
}

// TransactionResponse is returned for every processed request, successful or not.
type TransactionResponse struct {
	Success             bool   `json:"success"`
	Message             string `json:"message"`
	InternalReferenceID string `json:"internalReferenceId,omitempty"`
}

func (r *TransactionRequest) Sanitize() {
	r.InternalOrderID = strings.TrimSpace(r.InternalOrderID)
	r.CurrencyCode = strings.ToUpper(strings.TrimSpace(r.CurrencyCode))
	r.ServiceType = strings.TrimSpace(r.ServiceType)
}

func (r *TransactionRequest) ToAudit(at time.Time) models.TransactionAudit {
	return models.NewPendingAudit(r.InternalOrderID, r.Amount, r.CurrencyCode, r.ServiceType, at)
}

func (r *TransactionRequest) ToExternal() models.ExternalAPIRequest {
	return models.ExternalAPIRequest{
		TransactionID: r.InternalOrderID,
		Amount:        r.Amount,
		Currency:      r.CurrencyCode,
	}
}

// RetryRequest rebuilds a request from a dead-lettered external request. The
// service type marks the resulting audit as produced by the retry consumer.
func RetryRequest(req models.ExternalAPIRequest, at time.Time) *TransactionRequest {
	return &TransactionRequest{
		InternalOrderID: req.TransactionID,
		Amount:          req.Amount,
		CurrencyCode:    req.Currency,
		ServiceType:     models.ServiceTypeRetry,
		RequestedAt:     at,
	}
}

func Succeeded(resp *models.ExternalAPIResponse, orderID string) TransactionResponse {
	return TransactionResponse{
		Success:             true,
		Message:             "OK: " + resp.DetailStatus,
		InternalReferenceID: orderID,
	}
}

func Failed(message, orderID string) TransactionResponse {
	return TransactionResponse{
		Success:             false,
		Message:             message,
		InternalReferenceID: orderID,
	}
}
