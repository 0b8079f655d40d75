// Package main is the entry point for the catalog server and CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-catalog/cmd/server/client"
	"github.com/KirkDiggler/rpg-catalog/internal/config"
	"github.com/KirkDiggler/rpg-catalog/internal/logger"
)

var (
	cfg    *config.Config
	appLog *slog.Logger

	// flag overrides for the environment config
	catalogRoot   string
	catalogSource string
	redisAddr     string
	rngSeed       uint64
	logLevel      string
)

var rootCmd = &cobra.Command{
	Use:   "rpg-catalog",
	Short: "RPG content catalog server",
	Long: `rpg-catalog serves procedural content catalogs: it resolves
@domain/path/category:item references, draws weighted random items and
expands generation patterns.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&catalogRoot, "catalog-root", "", "catalog content directory (env CATALOG_ROOT)")
	flags.StringVar(&catalogSource, "source", "", "catalog source: filesystem or redis (env CATALOG_SOURCE)")
	flags.StringVar(&redisAddr, "redis-addr", "", "redis address (env REDIS_ADDR)")
	flags.Uint64Var(&rngSeed, "seed", 0, "seed for deterministic selection (env RNG_SEED)")
	flags.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (env LOG_LEVEL)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(executeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(probabilitiesCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

// loadConfig reads the environment and applies any flags that were set
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg = config.Load()

	flags := cmd.Flags()
	if flags.Changed("catalog-root") {
		cfg.CatalogRoot = catalogRoot
	}
	if flags.Changed("source") {
		cfg.CatalogSource = catalogSource
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = redisAddr
	}
	if flags.Changed("seed") {
		cfg.RNGSeed = rngSeed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = config.ParseLogLevel(logLevel)
	}
	if flags.Changed("port") {
		cfg.GRPCPort = grpcPort
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	appLog = logger.Setup(cfg)
	return nil
}
