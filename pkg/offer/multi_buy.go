package offer

import (
	"checkout/pkg/catalog"
	"checkout/pkg/model"
	"fmt"
)

type InvalidMultiBuyError struct {
	Buy int
	Pay int
}

func (e InvalidMultiBuyError) Error() string {
	return fmt.Sprintf("invalid multi-buy, buy %d pay %d", e.Buy, e.Pay)
}

// MultiBuyRule charges for pay units out of every group of buy units of a sku.
type MultiBuyRule struct {
	catalog catalog.Catalog
	sku     model.Sku
	buy     int
	pay     int
}

var _ OfferRule = &MultiBuyRule{}

func NewMultiBuyRule(c catalog.Catalog, sku model.Sku, buy int, pay int) (*MultiBuyRule, error) {
	if buy < 1 || pay < 0 || pay >= buy {
		return nil, InvalidMultiBuyError{Buy: buy, Pay: pay}
	}
	if e := checkSkuInCatalog(c, sku); e != nil {
		return nil, e
	}
	return &MultiBuyRule{catalog: c, sku: sku, buy: buy, pay: pay}, nil
}

// NewThreeForTwoRule makes every third unit of sku free.
func NewThreeForTwoRule(c catalog.Catalog, sku model.Sku) (*MultiBuyRule, error) {
	return NewMultiBuyRule(c, sku, 3, 2)
}

func (r *MultiBuyRule) Discount(items []model.Sku) (model.Amount, bool) {
	qty := model.CountOf(items, r.sku)
	if qty == 0 {
		return model.ZeroAmount(r.catalog.CurrencyCode()), true
	}
	freeUnits := int64(qty/r.buy) * int64(r.buy-r.pay)
	unitPrice, err := r.catalog.PriceOf(r.sku)
	if err != nil {
		// The sku was checked at construction and catalogs are immutable.
		panic(err)
	}
	return unitPrice.Mul(freeUnits)
}

func (r *MultiBuyRule) String() string {
	if r.buy == 3 && r.pay == 2 {
		return fmt.Sprintf("3 for 2 on %s", r.sku)
	}
	return fmt.Sprintf("%d for %d on %s", r.buy, r.pay, r.sku)
}
