package mocks

import (
	"checkout/pkg/model"
	"checkout/pkg/offer"
)

//go:generate mockgen -destination=mock_offer_rule.go -package=mocks checkout/pkg/offer OfferRule
var _ offer.OfferRule = &MockOfferRule{}

//go:generate mockgen -destination=mock_checkout_id_generator.go -package=mocks checkout/pkg/model CheckoutIdGenerator
var _ model.CheckoutIdGenerator = &MockCheckoutIdGenerator{}
