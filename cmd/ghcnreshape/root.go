package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/couchcryptid/ghcn-daily-etl/internal/adapter/dly"
	"github.com/couchcryptid/ghcn-daily-etl/internal/adapter/excel"
	"github.com/couchcryptid/ghcn-daily-etl/internal/config"
	"github.com/couchcryptid/ghcn-daily-etl/internal/domain"
	"github.com/couchcryptid/ghcn-daily-etl/internal/observability"
	"github.com/couchcryptid/ghcn-daily-etl/internal/pipeline"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		cfg      config.Config
		elements string
	)

	rootCmd := &cobra.Command{
		Use:   "ghcnreshape [flags] FILE...",
		Short: "Reshape GHCN-Daily .dly files into daily spreadsheets",
		Long: `Reads one or more GHCN-Daily .dly files and writes, for every station and
element, a workbook with one row per calendar day between the first and last
month on record. Days whose month has no record are filled with -99.

Defaults come from GHCN_* and LOG_* environment variables; flags override them.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			applyFlags(cmd, loaded, &cfg, elements)
			cfg = *loaded
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), &cfg, args, observability.NewLogger(&cfg))
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&cfg.OutputDir, "out", "o", "", "output directory (GHCN_OUTPUT_DIR)")
	flags.StringVarP(&elements, "elements", "e", "", "comma-separated element codes, empty for all present (GHCN_ELEMENTS)")
	flags.IntVar(&cfg.Workers, "workers", 0, "series filled concurrently per station (GHCN_WORKERS)")
	flags.StringVar(&cfg.Calendar, "calendar", "", "leap-year rule: simple or gregorian (GHCN_CALENDAR)")
	flags.BoolVar(&cfg.StrictDuplicates, "strict-duplicates", false, "fail when a year/month/element repeats (GHCN_STRICT_DUPLICATES)")
	flags.StringVar(&cfg.MetricsFile, "metrics-file", "", "write Prometheus metrics to this file after the run (GHCN_METRICS_FILE)")
	flags.StringVar(&cfg.LogLevel, "log-level", "", "debug, info, warn or error (LOG_LEVEL)")
	flags.StringVar(&cfg.LogFormat, "log-format", "", "text or json (LOG_FORMAT)")

	rootCmd.AddCommand(newElementsCmd())
	return rootCmd
}

// applyFlags copies every flag the user set onto the environment-loaded config.
func applyFlags(cmd *cobra.Command, dst, flagged *config.Config, elements string) {
	set := cmd.Flags().Changed
	if set("out") {
		dst.OutputDir = flagged.OutputDir
	}
	if set("elements") {
		dst.Elements = config.ParseElements(elements)
	}
	if set("workers") {
		dst.Workers = flagged.Workers
	}
	if set("calendar") {
		dst.Calendar = flagged.Calendar
	}
	if set("strict-duplicates") {
		dst.StrictDuplicates = flagged.StrictDuplicates
	}
	if set("metrics-file") {
		dst.MetricsFile = flagged.MetricsFile
	}
	if set("log-level") {
		dst.LogLevel = flagged.LogLevel
	}
	if set("log-format") {
		dst.LogFormat = flagged.LogFormat
	}
}

func run(ctx context.Context, cfg *config.Config, files []string, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cal, err := domain.CalendarByName(cfg.Calendar)
	if err != nil {
		return err
	}

	metrics := observability.NewMetrics()
	writer := excel.NewWriter(cfg.OutputDir, logger)
	p := pipeline.New(writer, pipeline.Options{
		Elements:         cfg.Elements,
		Calendar:         cal,
		Workers:          cfg.Workers,
		StrictDuplicates: cfg.StrictDuplicates,
	}, logger, metrics)

	inputs := make([]pipeline.Extractor, 0, len(files))
	for _, path := range files {
		inputs = append(inputs, dly.NewFileSource(path))
	}

	logger.Info("reshape started",
		"files", len(files),
		"out", cfg.OutputDir,
		"elements", strings.Join(cfg.Elements, ","),
		"calendar", cal.Name(),
	)
	reports, runErr := p.RunAll(ctx, inputs)

	stations := 0
	for _, r := range reports {
		stations += len(r.Stations)
	}
	logger.Info("reshape finished", "files_ok", len(reports), "files", len(files), "stations", stations)

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Error("write metrics failed", "path", cfg.MetricsFile, "error", err)
		}
	}
	return runErr
}

func newElementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: "List the element codes accepted by --elements",
		Args:  cobra.NoArgs,
		// The vocabulary needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, code := range domain.Vocabulary() {
				if _, err := fmt.Fprintln(out, code); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
