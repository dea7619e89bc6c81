package model

import "github.com/google/uuid"

type CheckoutIdGenerator interface {
	New() string
}

type UuidCheckoutIdGenerator struct{}

var _ CheckoutIdGenerator = &UuidCheckoutIdGenerator{}

func (*UuidCheckoutIdGenerator) New() string {
	return uuid.New().String()
}
