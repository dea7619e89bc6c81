package offer

import (
	"checkout/pkg/catalog"
	"checkout/pkg/model"
	"fmt"
)

// OfferRule computes the discount a promotion grants over everything scanned so far.
// Implementations are pure: the same items always yield the same discount.
// ok is false when the discount cannot be represented.
type OfferRule interface {
	Discount(items []model.Sku) (discount model.Amount, ok bool)
}

type NegativeQuantityError struct {
	Quantity int
}

func (e NegativeQuantityError) Error() string {
	return fmt.Sprintf("quantity is negative %d", e.Quantity)
}

type NegativeAmountError struct {
	Amount model.Amount
}

func (e NegativeAmountError) Error() string {
	return fmt.Sprintf("amount is negative %s", e.Amount)
}

func checkSkuInCatalog(c catalog.Catalog, sku model.Sku) error {
	if _, ok := c.Lookup(sku); !ok {
		return model.UnknownSkuError{Sku: sku}
	}
	return nil
}
