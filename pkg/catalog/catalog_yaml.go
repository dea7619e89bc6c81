package catalog

import (
	"checkout/pkg/model"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type yamlProduct struct {
	Sku   string `yaml:"sku"`
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
}

type yamlCatalog struct {
	Currency string        `yaml:"currency"`
	Products []yamlProduct `yaml:"products"`
}

// LoadYamlCatalog reads a catalog file of the form:
//
//	currency: USD
//	products:
//	  - sku: ipd
//	    name: Super iPad
//	    price: 549.99
func LoadYamlCatalog(path string) (*InMemoryCatalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()
	return DecodeYamlCatalog(f)
}

func DecodeYamlCatalog(r io.Reader) (*InMemoryCatalog, error) {
	var doc yamlCatalog
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	currencyCode := model.CurrencyCode(doc.Currency)
	if currencyCode == "" {
		currencyCode = DefaultCurrencyCode
	}
	products := make([]model.Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		price, err := model.NewAmountFromString(p.Price, currencyCode)
		if err != nil {
			return nil, fmt.Errorf("price of sku %q: %w", p.Sku, err)
		}
		products = append(products, model.Product{Sku: model.Sku(p.Sku), Name: p.Name, Price: price})
	}
	return NewInMemoryCatalog(currencyCode, products...)
}
