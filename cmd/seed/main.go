// Package main carga el catálogo inicial en la base configurada.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"bordoodles-api/internal/app"
	"bordoodles-api/internal/platform/config"
	"bordoodles-api/internal/platform/logger"
	"bordoodles-api/internal/seed"
)

var (
	dataDir string
	reset   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "seed",
	Short:        "Load parents.json and puppies.json into the catalog database",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runSeed,
}

func init() {
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "", "directory with parents.json and puppies.json (default: SEED_DATA_DIR)")
	rootCmd.Flags().BoolVar(&reset, "reset", false, "drop and recreate the tables before loading")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.DBDriver == config.DBDriverMemory {
		return errors.New("seed: DB_DRIVER=memory has nothing to seed")
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    "bordoodles-seed",
	})
	defer func() { _ = log.Sync() }()

	dir := dataDir
	if dir == "" {
		dir = cfg.SeedDataDir
	}

	st, err := app.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	if reset {
		if err := st.Reset(ctx); err != nil {
			return fmt.Errorf("seed: reset: %w", err)
		}
		log.Info("database reset", nil)
	} else if err := st.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("seed: ensure schema: %w", err)
	}

	res, err := seed.NewLoader(st.Parents(), st.Puppies(), log).LoadDir(ctx, dir)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d parents and %d puppies from %s\n", res.Parents, res.Puppies, dir)
	return nil
}
