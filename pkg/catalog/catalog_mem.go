package catalog

import (
	"checkout/pkg/model"
	"fmt"
	"sort"
)

// InMemoryCatalog is immutable once built, so concurrent reads need no locking.
type InMemoryCatalog struct {
	currencyCode model.CurrencyCode
	products     map[model.Sku]model.Product
}

var _ Catalog = &InMemoryCatalog{}

func NewInMemoryCatalog(currencyCode model.CurrencyCode, products ...model.Product) (*InMemoryCatalog, error) {
	if _, ok := model.GetDigits(currencyCode); !ok {
		return nil, model.InvalidCurrencyCodeError{CurrencyCode: currencyCode}
	}
	c := &InMemoryCatalog{
		currencyCode: currencyCode,
		products:     make(map[model.Sku]model.Product, len(products)),
	}
	for _, product := range products {
		if product.Sku == "" {
			return nil, ErrEmptySku
		}
		if _, ok := c.products[product.Sku]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSku, product.Sku)
		}
		if e := model.CheckCurrencyCodeCompatible(currencyCode, product.Price.CurrencyCode); e != nil {
			return nil, e
		}
		if product.Price.IsNegative() {
			return nil, NegativePriceError{Sku: product.Sku, Price: product.Price}
		}
		c.products[product.Sku] = product
	}
	return c, nil
}

func (c *InMemoryCatalog) Lookup(sku model.Sku) (model.Product, bool) {
	product, ok := c.products[sku]
	return product, ok
}

func (c *InMemoryCatalog) PriceOf(sku model.Sku) (model.Amount, error) {
	product, ok := c.products[sku]
	if !ok {
		return model.Amount{}, model.UnknownSkuError{Sku: sku}
	}
	return product.Price, nil
}

func (c *InMemoryCatalog) CurrencyCode() model.CurrencyCode {
	return c.currencyCode
}

// Products returns a copy sorted by SKU.
func (c *InMemoryCatalog) Products() []model.Product {
	products := make([]model.Product, 0, len(c.products))
	for _, product := range c.products {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Sku < products[j].Sku })
	return products
}
