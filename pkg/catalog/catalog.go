package catalog

import (
	"checkout/pkg/model"
	"errors"
	"fmt"
)

// Catalog is the read-only product lookup used by checkouts and offer rules.
type Catalog interface {
	Lookup(sku model.Sku) (model.Product, bool)
	PriceOf(sku model.Sku) (model.Amount, error)
	CurrencyCode() model.CurrencyCode
}

// ErrDuplicateSku is returned when a catalog is built with the same SKU twice.
var ErrDuplicateSku = errors.New("duplicate sku")

// ErrEmptySku is returned when a product has no SKU.
var ErrEmptySku = errors.New("empty sku")

type NegativePriceError struct {
	Sku   model.Sku
	Price model.Amount
}

func (e NegativePriceError) Error() string {
	return fmt.Sprintf("negative price %s for sku %q", e.Price, e.Sku)
}
