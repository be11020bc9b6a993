package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/okian/stuffscore/internal/config"
	"github.com/okian/stuffscore/internal/seed"
	"github.com/okian/stuffscore/pkg/logger"
)

func main() {
	if err := seedCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func seedCmd() *cobra.Command {
	var (
		dbPath      string
		seedValue   uint64
		perPitcher  int
		contactRate float64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a synthetic pitches database for the configured rosters",
		Long: `Seed creates the players and pitches tables and fills them with
deterministic synthetic pitches for every name in the configured cohorts.
Rosters come from the same configuration the server loads (STUFF_CONFIG and
STUFF_* environment variables).`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.Init(); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("db") {
				dbPath = cfg.DBPath
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			stats, err := seed.Run(ctx, &seed.Config{
				DBPath:            dbPath,
				Seed:              seedValue,
				PitchesPerPitcher: perPitcher,
				ContactRate:       contactRate,
				Cohorts:           cfg.Cohorts,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d players and %d pitches into %s in %s\n",
				stats.Players, stats.Pitches, dbPath, stats.Duration)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", seed.DefaultDBPath, "SQLite file to write (default: db_path from config)")
	cmd.Flags().Uint64Var(&seedValue, "seed", seed.DefaultSeed, "random seed")
	cmd.Flags().IntVar(&perPitcher, "pitches", seed.DefaultPitchesPerPitcher, "pitches per pitcher")
	cmd.Flags().Float64Var(&contactRate, "contact-rate", seed.DefaultContactRate, "share of pitches with batted-ball data")
	return cmd
}
