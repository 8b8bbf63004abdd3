package validation

import (
	"testing"

	"github.com/jeffleon2/draftea-connector-service/internal/models/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionRequest_Valid(t *testing.T) {
	v := New()

	req := dto.TransactionRequest{
		InternalOrderID: "ORDER-1",
		Amount:          decimal.RequireFromString("250.75"),
		CurrencyCode:    "CZK",
		ServiceType:     "PAYMENT",
	}

	assert.NoError(t, v.Struct(req))
}

func TestTransactionRequest_InvalidAmount(t *testing.T) {
	v := New()

	for _, amount := range []string{"0", "-1", "-0.01"} {
		req := dto.TransactionRequest{
			InternalOrderID: "ORDER-1",
			Amount:          decimal.RequireFromString(amount),
			CurrencyCode:    "CZK",
		}

		err := v.Struct(req)
		if assert.Error(t, err, amount) {
			assert.Equal(t, "amount must be greater than 0", Describe(err))
		}
	}
}

func TestTransactionRequest_SmallPositiveAmount(t *testing.T) {
	v := New()

	req := dto.TransactionRequest{
		Amount:       decimal.RequireFromString("0.01"),
		CurrencyCode: "EUR",
	}

	assert.NoError(t, v.Struct(req))
}

func TestTransactionRequest_MissingCurrency(t *testing.T) {
	v := New()

	req := dto.TransactionRequest{
		InternalOrderID: "ORDER-1",
		Amount:          decimal.NewFromInt(10),
	}

	err := v.Struct(req)
	if assert.Error(t, err) {
		assert.Equal(t, "currencyCode is required", Describe(err))
	}
}

func TestTransactionRequest_MultipleErrors(t *testing.T) {
	v := New()

	err := v.Struct(dto.TransactionRequest{})
	if assert.Error(t, err) {
		msg := Describe(err)
		assert.Contains(t, msg, "amount must be greater than 0")
		assert.Contains(t, msg, "currencyCode is required")
	}
}
