package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"storefront/config"
	"storefront/internal/seed"
	"storefront/pkg/logger"

	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "storefront"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		logLevel string
		seedFile string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Storefront catalog, cart, wishlist and order service",
		Long: `Storefront serves the catalog, cart, wishlist, order and admin login
routes over HTTP, and a read-only catalog API over gRPC.

State lives in memory and is rebuilt from the seed on every start.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New("info", "json")
			cfg := config.LoadConfig(log)
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("seed") {
				cfg.SeedFile = seedFile
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error); overrides LOG_LEVEL")
	cmd.Flags().StringVar(&seedFile, "seed", "", "YAML seed file; overrides SEED_FILE")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check-seed <file>",
		Short: "Validate a YAML seed file without starting the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := seed.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d products, %d admins\n", args[0], len(f.Products), len(f.Admins))
			return nil
		},
	})

	return cmd
}
