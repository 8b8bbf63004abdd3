package models

import "github.com/shopspring/decimal"

// ExternalAPIRequest is the body sent to POST /v1/process of the external system.
type ExternalAPIRequest struct {
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
}

// ExternalAPIResponse is what the external system answers on success.
type ExternalAPIResponse struct {
	StatusCode       int    `json:"status_code"`
	ConfirmationID   string `json:"confirmation_id"`
	DetailStatus     string `json:"detailStatus"`
	ProcessingTimeMs int64  `json:"processingTimeMs"`
}

// IsEmpty reports whether the external system answered without any content.
func (r *ExternalAPIResponse) IsEmpty() bool {
	return r == nil || (r.StatusCode == 0 && r.ConfirmationID == "" && r.DetailStatus == "")
}
