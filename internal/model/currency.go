package model

import "github.com/shopspring/decimal"

// Currency describes one supported display currency.
type Currency struct {
	Code   string
	Symbol string
	Name   string
}

// Currencies is the fixed table of supported currencies, in display order.
var Currencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "LKR", Symbol: "Rs", Name: "Sri Lankan Rupee"},
}

// CurrencySymbol returns the display symbol for a currency code, falling
// back to "$" for unknown codes.
func CurrencySymbol(code string) string {
	for _, c := range Currencies {
		if c.Code == code {
			return c.Symbol
		}
	}
	return "$"
}

// MigrateCurrencySymbol converts a legacy stored symbol to its currency
// code. Unknown symbols map to USD.
func MigrateCurrencySymbol(symbol string) string {
	for _, c := range Currencies {
		if c.Symbol == symbol {
			return c.Code
		}
	}
	return "USD"
}

// FormatAmount renders an amount with its currency symbol. LKR conventionally
// places the symbol after the amount; everything else prefixes it.
func FormatAmount(amount decimal.Decimal, code string) string {
	symbol := CurrencySymbol(code)
	fixed := amount.StringFixed(2)
	if code == "LKR" {
		return fixed + " " + symbol
	}
	return symbol + fixed
}
