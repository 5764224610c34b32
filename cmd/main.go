// Package main provides the CLI entrypoint for the price watch service.
// It wires subcommands (serve, run, check, products, migrate, jwt), loads
// configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"pricewatch/internal/config"
	"pricewatch/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pricewatch",
		Short: "Watches product pages and emails recipients when prices drop",
	}

	// cobra flags are only parsed on Execute, but the config is needed to build
	// the subcommands. The flag is declared for cobra and read with the
	// standard flags package.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	fs := flag.NewFlagSet("pricewatch", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {}
	configPath := fs.String("c", "config.yml", "The config file path")
	// unknown subcommand flags stop parsing but -c usually comes first
	_ = fs.Parse(configFlagArgs(os.Args[1:]))

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config: ", err)
	}

	logger.Setup(cfg.Environment, cfg.LogLevel)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		runCommand(cfg),
		checkCommand(cfg),
		productsCommand(cfg),
		JWTCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configFlagArgs extracts the -c/--config flag from args wherever it appears.
func configFlagArgs(args []string) []string {
	for i, arg := range args {
		switch arg {
		case "-c", "--config":
			if i+1 < len(args) {
				return []string{"-c", args[i+1]}
			}
		}
		for _, prefix := range []string{"-c=", "--config="} {
			if len(arg) > len(prefix) && arg[:len(prefix)] == prefix {
				return []string{"-c", arg[len(prefix):]}
			}
		}
	}

	return nil
}
