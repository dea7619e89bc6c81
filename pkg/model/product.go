package model

import "fmt"

type Sku string

type UnknownSkuError struct {
	Sku Sku
}

func (e UnknownSkuError) Error() string {
	return fmt.Sprintf("unknown SKU %q", e.Sku)
}

type Product struct {
	Sku   Sku
	Name  string
	Price Amount
}
