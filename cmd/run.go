package main

import (
	"context"
	"fmt"
	"os/signal"
	"pricewatch/internal/config"
	"pricewatch/internal/monitor"
	"pricewatch/pkg/domain"
	"pricewatch/pkg/logger"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runCommand constructs the 'run' subcommand that executes one batch run in
// the foreground, without the job queue.
func runCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Checks tracked products once and notifies on price drops",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rawIDs, _ := cmd.Flags().GetStringSlice("product")
			filter := make([]domain.ProductID, 0, len(rawIDs))
			for _, raw := range rawIDs {
				id, err := domain.ParseProductID(raw)
				if err != nil {
					logger.Fatal(ctx, "invalid product id", zap.Error(err))
				}
				filter = append(filter, id)
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			fetcher, closeFetcher := getFetcher(ctx, cfg)
			defer closeFetcher()

			mon := monitor.New(strg, fetcher, getNotifier(ctx, cfg), monitor.NewOptions(cfg))

			run, err := mon.Prepare(ctx, domain.RunID{}, domain.RunTriggerOnDemand, filter)
			if err != nil {
				logger.Fatal(ctx, "could not prepare run", zap.Error(err))
			}

			run, err = mon.Execute(ctx, run.ID)
			if err != nil {
				logger.Fatal(ctx, "could not execute run", zap.Error(err))
			}

			for _, res := range run.Results {
				price := "-"
				if res.ObservedPrice != nil {
					price = res.ObservedPrice.String()
				}
				status := string(res.Decision)
				if res.Failed() {
					status = string(res.ErrorKind)
				}
				fmt.Printf("%s\t%s\t%s\tnotified=%t\n", res.ProductID, price, status, res.Notified) //nolint: forbidigo
			}
			fmt.Printf("run %s: %d succeeded, %d failed\n", run.ID, run.SucceededCount, run.FailedCount) //nolint: forbidigo
		},
	}

	cmd.Flags().StringSlice("product", nil, "Limit the run to these product IDs")

	return cmd
}
