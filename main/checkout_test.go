package main

import (
	"bytes"
	"checkout/pkg/catalog"
	"checkout/pkg/model"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkus(t *testing.T) {
	assert.Equal(t, defaultItems, parseSkus("", nil))
	assert.Equal(t, []model.Sku{"atv", "ipd"}, parseSkus(" atv, ,ipd ", nil))
	assert.Equal(t, []model.Sku{"atv", "vga", "mbp"}, parseSkus("atv", []string{"vga", "mbp"}))
}

func TestRunPrintsScenarioTotals(t *testing.T) {
	cases := []struct {
		skus     []model.Sku
		expected string
	}{
		{
			skus:     []model.Sku{"atv", "atv", "atv", "vga"},
			expected: "SKUs Scanned: atv, atv, atv, vga\nTotal expected: $249.00\n",
		},
		{
			skus:     []model.Sku{"atv", "ipd", "ipd", "atv", "ipd", "ipd", "ipd"},
			expected: "SKUs Scanned: atv, ipd, ipd, atv, ipd, ipd, ipd\nTotal expected: $2718.95\n",
		},
		{
			skus:     []model.Sku{"atv", "atv", "atv", "ipd", "ipd", "ipd", "ipd", "ipd", "vga"},
			expected: "SKUs Scanned: atv, atv, atv, ipd, ipd, ipd, ipd, ipd, vga\nTotal expected: $2748.95\n",
		},
	}
	for _, c := range cases {
		// Arrange
		var out bytes.Buffer

		// Act
		err := run(&out, zerolog.Nop(), "", c.skus)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, c.expected, out.String())
	}
}

func TestRunFailsOnUnknownSku(t *testing.T) {
	// Arrange
	var out bytes.Buffer

	// Act
	err := run(&out, zerolog.Nop(), "", []model.Sku{"atv", "unknown"})

	// Assert
	assert.ErrorIs(t, err, model.UnknownSkuError{Sku: "unknown"})
	assert.Empty(t, out.String())
}

func TestRunWithYamlCatalog(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := "currency: USD\nproducts:\n" +
		"  - {sku: ipd, name: Super iPad, price: 600.00}\n" +
		"  - {sku: atv, name: Apple TV, price: 100.00}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	var out bytes.Buffer

	// Act
	err := run(&out, zerolog.Nop(), path, []model.Sku{"atv", "atv", "atv", "ipd"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "SKUs Scanned: atv, atv, atv, ipd\nTotal expected: $800.00\n", out.String())
}

func TestRunFailsWhenCatalogLacksOfferSkus(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products:\n  - {sku: vga, name: VGA, price: 30}\n"), 0o600))

	// Act
	err := run(&bytes.Buffer{}, zerolog.Nop(), path, []model.Sku{"vga"})

	// Assert
	assert.ErrorIs(t, err, model.UnknownSkuError{Sku: "atv"})
}

func TestRunLogsOnlyOffersThatDiscount(t *testing.T) {
	// Arrange
	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.InfoLevel)

	// Act
	err := run(&bytes.Buffer{}, logger, "", []model.Sku{"atv", "atv", "atv", "ipd"})

	// Assert
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"rule":"3 for 2 on atv","discount":"109.50"`)
	assert.NotContains(t, logs.String(), "ipd at 499.99 above 4")
	assert.Equal(t, 1, strings.Count(logs.String(), "Offer applied"))
}

func TestStoreRulesPricesBulkIpdAt49999(t *testing.T) {
	// Arrange
	c := catalog.DefaultCatalog()

	// Act
	rules, err := storeRules(c)

	// Assert
	require.NoError(t, err)
	require.Len(t, rules, 2)
	discount, ok := rules[1].Discount([]model.Sku{"ipd", "ipd", "ipd", "ipd", "ipd"})
	assert.True(t, ok)
	assert.Equal(t, model.Amount{Number: 5 * 5000, CurrencyCode: "USD"}, discount)
}
