package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	service "github.com/okian/stuffscore/internal/app"
	"github.com/okian/stuffscore/internal/config"
	"github.com/okian/stuffscore/internal/domain/pitch"
	"github.com/okian/stuffscore/internal/domain/scoring"
	"github.com/okian/stuffscore/internal/domain/types"
	"github.com/okian/stuffscore/pkg/logger"
)

// Output formats.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// errUnknownFormat is returned for an unsupported --format value.
var errUnknownFormat = errors.New("unknown output format")

func scoreCmd() *cobra.Command {
	var (
		cohort string
		format string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Print the stuff score leaderboard of a cohort",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd, func(ctx context.Context, cfg *config.Config, svc *service.Service) error {
				if cohort == "" {
					cohort = cfg.ScoreCohort
				}
				lb, err := svc.StuffScore(ctx, cohort)
				if errors.Is(err, scoring.ErrInsufficientCohort) {
					return fmt.Errorf("cohort %q: %w", cohort, err)
				}
				if err != nil {
					return err
				}
				return renderLeaderboard(cmd.OutOrStdout(), format, lb)
			})
		},
	}

	cmd.Flags().StringVar(&cohort, "cohort", "", "cohort to score (default: score_cohort from config)")
	cmd.Flags().StringVar(&format, "format", formatTable, "output format: table, json or yaml")
	return cmd
}

func summaryCmd() *cobra.Command {
	var (
		pitcherID int64
		format    string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the per-pitch-type summary of one pitcher",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if pitcherID <= 0 {
				return fmt.Errorf("--pitcher must be a positive id, got %d", pitcherID)
			}
			return withService(cmd, func(ctx context.Context, _ *config.Config, svc *service.Service) error {
				rows, err := svc.Summary(ctx, pitcherID)
				if err != nil {
					return err
				}
				return renderSummary(cmd.OutOrStdout(), format, rows)
			})
		},
	}

	cmd.Flags().Int64Var(&pitcherID, "pitcher", 0, "pitcher id")
	cmd.Flags().StringVar(&format, "format", formatTable, "output format: table, json or yaml")
	return cmd
}

// withService runs fn against a started service. Logs go to stderr so the
// rendered output can be piped.
func withService(cmd *cobra.Command, fn func(context.Context, *config.Config, *service.Service) error) error {
	logger.SetOutput(os.Stderr)
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc := newService(cfg)
	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start service: %w", err)
	}
	defer svc.Stop()
	return fn(ctx, cfg, svc)
}

func renderLeaderboard(w io.Writer, format string, lb types.Leaderboard) error {
	switch format {
	case formatJSON:
		return writeJSON(w, lb)
	case formatYAML:
		return writeYAML(w, lb)
	case formatTable:
	default:
		return fmt.Errorf("%w: %s", errUnknownFormat, format)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "RANK\tPITCHER\tID\tSTUFF\tZ_SPEED\tZ_SPIN\tZ_IVB\tZ_HB\tZ_EV\tZ_LA\t")
	for i, e := range lb.Entries {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t\n",
			i+1, e.Name, e.PitcherID, e.StuffScore, e.ZSpeed, e.ZSpin, e.ZIVB, e.ZHB, e.ZEV, e.ZLA)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := lb.LeagueStats
	_, err := fmt.Fprintf(w, "\nleague: speed %.2f±%.2f  hb %.2f±%.2f  ivb %.2f±%.2f  spin %.0f±%.0f  ev %.2f±%.2f  la %.2f±%.2f\n",
		s.MeanSpeed, s.StdSpeed, s.MeanHB, s.StdHB, s.MeanIVB, s.StdIVB,
		s.MeanSpin, s.StdSpin, s.MeanEV, s.StdEV, s.MeanLA, s.StdLA)
	return err
}

func renderSummary(w io.Writer, format string, rows []pitch.PitchTypeRow) error {
	switch format {
	case formatJSON:
		return writeJSON(w, rows)
	case formatYAML:
		return writeYAML(w, rows)
	case formatTable:
	default:
		return fmt.Errorf("%w: %s", errUnknownFormat, format)
	}

	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "no pitches")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "TYPE\tCOUNT\tUSAGE%\tSPEED\tHB\tIVB\tSPIN\tEV\tLA\t")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.PitchType, r.PitchCount,
			cell(r.UsagePct, 1), cell(r.AvgSpeed, 1), cell(r.AvgHorizontalBreak, 2),
			cell(r.AvgInducedVerticalBreak, 2), cell(r.AvgSpinRate, 0),
			cell(r.AvgHitExitSpeed, 1), cell(r.AvgHitLaunchAngle, 1))
	}
	return tw.Flush()
}

// cell formats an optional value, printing "-" for missing data.
func cell(v *float64, decimals int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.*f", decimals, *v)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
