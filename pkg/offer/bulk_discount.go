package offer

import (
	"checkout/pkg/catalog"
	"checkout/pkg/model"
	"fmt"
)

// BulkDiscountRule reprices every unit of a sku at newPrice once strictly more than
// minQty units are scanned.
type BulkDiscountRule struct {
	catalog  catalog.Catalog
	sku      model.Sku
	minQty   int
	newPrice model.Amount
}

var _ OfferRule = &BulkDiscountRule{}

func NewBulkDiscountRule(c catalog.Catalog, sku model.Sku, minQty int, newPrice model.Amount) (*BulkDiscountRule, error) {
	if minQty < 0 {
		return nil, NegativeQuantityError{Quantity: minQty}
	}
	if newPrice.IsNegative() {
		return nil, NegativeAmountError{Amount: newPrice}
	}
	if e := model.CheckCurrencyCodeCompatible(c.CurrencyCode(), newPrice.CurrencyCode); e != nil {
		return nil, e
	}
	if e := checkSkuInCatalog(c, sku); e != nil {
		return nil, e
	}
	return &BulkDiscountRule{catalog: c, sku: sku, minQty: minQty, newPrice: newPrice}, nil
}

// Discount may be negative when newPrice is above the catalog price.
func (r *BulkDiscountRule) Discount(items []model.Sku) (model.Amount, bool) {
	qty := model.CountOf(items, r.sku)
	if qty <= r.minQty {
		return model.ZeroAmount(r.catalog.CurrencyCode()), true
	}
	unitPrice, err := r.catalog.PriceOf(r.sku)
	if err != nil {
		panic(err)
	}
	perUnit, ok := unitPrice.Sub(r.newPrice)
	if !ok {
		return model.Amount{}, false
	}
	return perUnit.Mul(int64(qty))
}

func (r *BulkDiscountRule) String() string {
	return fmt.Sprintf("%s at %s above %d", r.sku, r.newPrice, r.minQty)
}
