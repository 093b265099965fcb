// Package cmd implements the garage CLI.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/garagehq/garage/internal/config"
	"github.com/garagehq/garage/internal/jokes"
	"github.com/garagehq/garage/internal/storage"
)

var (
	cfg     *config.Config
	store   storage.Store
	jokeSvc jokes.Service
	logger  *zap.Logger
)

var (
	configPath string
	useMemory  bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "garage",
	Short: "A GraphQL gateway over a vehicle and part inventory",
	Long: `Garage exposes a two-collection inventory (vehicles and their parts),
stored in MongoDB, through a typed GraphQL API. Every vehicle read is
enriched with a joke from an external service, because cars are serious
business.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}

		if useMemory {
			store = storage.NewMemStore()
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			store, err = storage.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
			if err != nil {
				return fmt.Errorf("connecting to document store: %w", err)
			}
		}

		jokeSvc = jokes.NewClient(cfg.Jokes.URL, time.Duration(cfg.Jokes.TimeoutSeconds)*time.Second)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := store.Close(ctx); err != nil {
				return fmt.Errorf("closing store: %w", err)
			}
		}
		if logger != nil {
			_ = logger.Sync()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.ConfigFile, "Path to the garage config file")
	rootCmd.PersistentFlags().BoolVar(&useMemory, "memory", false, "Use a throwaway in-memory store instead of MongoDB")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose, human-readable logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
