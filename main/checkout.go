package main

import (
	"checkout/pkg/catalog"
	"checkout/pkg/checkout"
	"checkout/pkg/config"
	"checkout/pkg/logging"
	"checkout/pkg/model"
	"checkout/pkg/offer"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	itemsFlag     = "items"
	catalogFlag   = "catalog"
	logLevelFlag  = "log-level"
	logFormatFlag = "log-format"
)

// Example 1 of the store, used when no SKU is given.
var defaultItems = []model.Sku{"atv", "atv", "atv", "vga"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to load configuration: %v\n", err)
		os.Exit(1)
	}

	items := flag.String(itemsFlag, "", "Comma separated SKUs to scan, e.g. atv,ipd,vga")
	catalogFile := flag.String(catalogFlag, cfg.CatalogFile, "YAML catalog file, built-in catalog when empty")
	logLevel := flag.String(logLevelFlag, cfg.LogLevel, "Log level")
	logFormat := flag.String(logFormatFlag, cfg.LogFormat, "Log format, console or json")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	logger := logging.NewLogger(*logFormat, *logLevel)
	skus := parseSkus(*items, flag.Args())
	if err := run(os.Stdout, logger, *catalogFile, skus); err != nil {
		logger.Error().Err(err).Msg("Checkout failed")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseSkus(items string, args []string) []model.Sku {
	var skus []model.Sku
	for _, part := range append(strings.Split(items, ","), args...) {
		if sku := strings.TrimSpace(part); sku != "" {
			skus = append(skus, model.Sku(sku))
		}
	}
	if len(skus) == 0 {
		return defaultItems
	}
	return skus
}

func loadCatalog(path string) (*catalog.InMemoryCatalog, error) {
	if path == "" {
		return catalog.DefaultCatalog(), nil
	}
	return catalog.LoadYamlCatalog(path)
}

func storeRules(c catalog.Catalog) ([]offer.OfferRule, error) {
	threeForTwo, err := offer.NewThreeForTwoRule(c, "atv")
	if err != nil {
		return nil, fmt.Errorf("atv offer: %w", err)
	}
	bulkPrice, err := model.NewAmountFromInt64(49999, c.CurrencyCode())
	if err != nil {
		return nil, fmt.Errorf("ipd offer: %w", err)
	}
	bulk, err := offer.NewBulkDiscountRule(c, "ipd", 4, bulkPrice)
	if err != nil {
		return nil, fmt.Errorf("ipd offer: %w", err)
	}
	return []offer.OfferRule{threeForTwo, bulk}, nil
}

func run(w io.Writer, logger zerolog.Logger, catalogFile string, skus []model.Sku) error {
	c, err := loadCatalog(catalogFile)
	if err != nil {
		return err
	}
	rules, err := storeRules(c)
	if err != nil {
		return err
	}

	co := checkout.NewCheckoutWith(c, rules, &model.UuidCheckoutIdGenerator{}, logger)
	for _, sku := range skus {
		if err := co.Scan(sku); err != nil {
			return err
		}
	}

	summary := co.Summary()
	if !summary.Total.Ok {
		return fmt.Errorf("total of checkout %s overflowed", summary.CheckoutId)
	}
	for _, applied := range summary.Discounts {
		if applied.Discount.IsZero() {
			continue
		}
		logger.Info().Str("rule", applied.Rule).Str("discount", applied.Discount.String()).Msg("Offer applied")
	}

	names := make([]string, len(summary.Items))
	for i, sku := range summary.Items {
		names[i] = string(sku)
	}
	fmt.Fprintln(w, "SKUs Scanned:", strings.Join(names, ", "))
	fmt.Fprintln(w, "Total expected:", summary.Total.Total.Format())
	return nil
}
