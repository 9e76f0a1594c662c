package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMigrateCurrencySymbol(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		{symbol: "$", want: "USD"},
		{symbol: "€", want: "EUR"},
		{symbol: "£", want: "GBP"},
		{symbol: "¥", want: "JPY"},
		{symbol: "C$", want: "CAD"},
		{symbol: "A$", want: "AUD"},
		{symbol: "Rs", want: "LKR"},
		{symbol: "??", want: "USD"},
		{symbol: "", want: "USD"},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			assert.Equal(t, tt.want, MigrateCurrencySymbol(tt.symbol))
		})
	}
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "€", CurrencySymbol("EUR"))
	assert.Equal(t, "$", CurrencySymbol("XYZ"), "unknown codes fall back to dollar")
}

func TestFormatAmount(t *testing.T) {
	amount := decimal.NewFromFloat(1234.5)

	assert.Equal(t, "$1234.50", FormatAmount(amount, "USD"))
	assert.Equal(t, "£1234.50", FormatAmount(amount, "GBP"))
	// LKR conventionally places the symbol after the amount.
	assert.Equal(t, "1234.50 Rs", FormatAmount(amount, "LKR"))
}
