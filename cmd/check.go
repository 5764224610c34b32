package main

import (
	"context"
	"fmt"
	"pricewatch/internal/config"
	"pricewatch/internal/monitor"
	"pricewatch/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCommand constructs the 'check' subcommand that prints the price found
// on a page. Nothing is stored and no database is needed.
func checkCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Loads a page and prints the price shown at a CSS selector",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			URL, _ := cmd.Flags().GetString("url")
			selector, _ := cmd.Flags().GetString("selector")

			fetcher, closeFetcher := getFetcher(ctx, cfg)
			defer closeFetcher()

			mon := monitor.New(nil, fetcher, nil, monitor.NewOptions(cfg))
			price, err := mon.CheckURL(ctx, URL, selector)
			if err != nil {
				logger.Error(ctx, "could not check price", zap.Error(err))

				return
			}

			fmt.Println(price.String()) //nolint: forbidigo
		},
	}

	cmd.Flags().String("url", "", "Product page URL")
	cmd.Flags().String("selector", "", "CSS selector of the price element")
	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("selector")

	return cmd
}
