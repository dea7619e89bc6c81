package model

type currencyInfo struct {
	digits uint8
	symbol string
}

var currencies = map[CurrencyCode]currencyInfo{
	"GEL": {2, "₾"}, "USD": {2, "$"}, "EUR": {2, "€"}, "JPY": {0, "¥"},
}
