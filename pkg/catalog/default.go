package catalog

import "checkout/pkg/model"

const DefaultCurrencyCode model.CurrencyCode = "USD"

var defaultProducts = []model.Product{
	{Sku: "ipd", Name: "Super iPad", Price: model.Amount{Number: 54999, CurrencyCode: DefaultCurrencyCode}},
	{Sku: "mbp", Name: "MacBook Pro", Price: model.Amount{Number: 139999, CurrencyCode: DefaultCurrencyCode}},
	{Sku: "atv", Name: "Apple TV", Price: model.Amount{Number: 10950, CurrencyCode: DefaultCurrencyCode}},
	{Sku: "vga", Name: "VGA adapter", Price: model.Amount{Number: 3000, CurrencyCode: DefaultCurrencyCode}},
}

// DefaultCatalog is the fixed store data set.
func DefaultCatalog() *InMemoryCatalog {
	c, err := NewInMemoryCatalog(DefaultCurrencyCode, defaultProducts...)
	if err != nil {
		panic(err)
	}
	return c
}
