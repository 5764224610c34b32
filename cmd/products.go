package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"pricewatch/internal/config"
	"pricewatch/pkg/domain"
	"pricewatch/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func productsCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manages tracked products",
	}

	cmd.AddCommand(productsImportCommand(cfg), productsListCommand(cfg))

	return cmd
}

// productsImportCommand seeds tracked products from a JSON array of products.
// Every product is validated before anything is stored.
func productsImportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.json>",
		Short: "Imports tracked products from a JSON file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			products, err := readProducts(args[0])
			if err != nil {
				logger.Fatal(ctx, "could not read products", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			stored, err := strg.StoreProducts(ctx, products...)
			if err != nil {
				logger.Fatal(ctx, "could not store products", zap.Error(err))
			}

			for _, p := range stored {
				fmt.Printf("%s\t%s\n", p.ID, p.ProductName) //nolint: forbidigo
			}
		},
	}

	return cmd
}

func productsListCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists tracked products",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			products, err := strg.Products(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not load products", zap.Error(err))
			}

			for _, p := range products {
				fmt.Printf("%s\t%s\t%s %s\t%s\n", //nolint: forbidigo
					p.ID, p.ProductName, p.ExpectedPrice, p.ExpectedPriceCurrency, p.URL)
			}
		},
	}
}

func readProducts(path string) ([]domain.TrackedProduct, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	var products []domain.TrackedProduct
	if err := json.Unmarshal(b, &products); err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", path, err)
	}

	var errs []error
	for i := range products {
		if err := products[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("product #%d: %w", i, err))
		}
	}

	return products, errors.Join(errs...)
}
