package checkout

import (
	"checkout/pkg/catalog"
	"checkout/pkg/model"
	"checkout/pkg/offer"
	"fmt"

	"github.com/rs/zerolog"
)

const scanLogCapacity = 16

// Checkout accumulates scanned SKUs and prices them against a fixed set of offer rules.
// It is not safe for concurrent use.
type Checkout struct {
	id      string
	catalog catalog.Catalog
	rules   []offer.OfferRule
	scanned model.ScanLog
	logger  zerolog.Logger
}

func NewCheckout(c catalog.Catalog, rules []offer.OfferRule) *Checkout {
	return NewCheckoutWith(c, rules, &model.UuidCheckoutIdGenerator{}, zerolog.Nop())
}

func NewCheckoutWith(c catalog.Catalog, rules []offer.OfferRule, idGenerator model.CheckoutIdGenerator, logger zerolog.Logger) *Checkout {
	checkout := &Checkout{
		id:      idGenerator.New(),
		catalog: c,
		rules:   make([]offer.OfferRule, len(rules)),
		scanned: model.NewScanLogWithCapacity(scanLogCapacity),
	}
	copy(checkout.rules, rules)
	checkout.logger = logger.With().Str("checkout_id", checkout.id).Logger()
	return checkout
}

func (co *Checkout) Id() string {
	return co.id
}

// Scan records sku. An unknown sku returns model.UnknownSkuError and records nothing.
func (co *Checkout) Scan(sku model.Sku) error {
	if _, ok := co.catalog.Lookup(sku); !ok {
		co.logger.Warn().Str("sku", string(sku)).Msg("Rejected unknown SKU")
		return model.UnknownSkuError{Sku: sku}
	}
	co.scanned.Append(sku)
	co.logger.Debug().
		Str("sku", string(sku)).
		Int("sku_count", co.scanned.Count(sku)).
		Int("count", co.scanned.Len()).
		Msg("Scanned")
	return nil
}

func (co *Checkout) Items() []model.Sku {
	return co.scanned.GetItemsCopy()
}

// Total is the base price of everything scanned minus the discount of every rule,
// each discount clamped at zero. Ok is false only if the arithmetic overflowed.
func (co *Checkout) Total() model.TotalAmount {
	return co.Summary().Total
}

type AppliedDiscount struct {
	Rule     string
	Discount model.Amount
}

type Summary struct {
	CheckoutId string
	Items      []model.Sku
	Base       model.TotalAmount
	Discounts  []AppliedDiscount
	Total      model.TotalAmount
}

func (co *Checkout) Summary() Summary {
	items := co.scanned.GetItemsCopy()
	currencyCode := co.catalog.CurrencyCode()

	base := model.NewTotalAmount(currencyCode)
	for _, sku := range items {
		price, err := co.catalog.PriceOf(sku)
		if err != nil {
			// Every scanned sku was found in the catalog and catalogs do not change.
			panic(err)
		}
		base.Add(price)
	}

	total := base
	discounts := make([]AppliedDiscount, 0, len(co.rules))
	for _, rule := range co.rules {
		discount, ok := rule.Discount(items)
		if !ok {
			total.Ok = false
			discount = model.ZeroAmount(currencyCode)
		} else if discount.IsNegative() {
			discount = model.ZeroAmount(currencyCode)
		}
		discounts = append(discounts, AppliedDiscount{Rule: describe(rule), Discount: discount})
		total.Sub(discount)
	}

	co.logger.Debug().
		Int("items", len(items)).
		Str("base", base.Total.String()).
		Str("total", total.Total.String()).
		Bool("ok", total.Ok).
		Msg("Computed total")

	return Summary{
		CheckoutId: co.id,
		Items:      items,
		Base:       base,
		Discounts:  discounts,
		Total:      total,
	}
}

func describe(rule offer.OfferRule) string {
	if s, ok := rule.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", rule)
}
