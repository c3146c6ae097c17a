package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/ghcn-daily-etl/internal/domain"
	"github.com/couchcryptid/ghcn-daily-etl/internal/observability"
	"golang.org/x/sync/errgroup"
)

// Extractor reads one input into a record table.
type Extractor interface {
	Name() string
	Extract(ctx context.Context) (domain.Table, error)
}

// BatchLoader writes the reshaped series of one station to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, batch domain.StationBatch) error
}

// Options controls how tables are reshaped.
type Options struct {
	// Elements to export. Empty means every element present in the input.
	Elements []string
	Calendar domain.Calendar
	// Workers bounds how many series are filled concurrently.
	Workers          int
	StrictDuplicates bool
}

// Report lists the station summaries produced from one input.
type Report struct {
	Source   string
	Stations []domain.Summary
}

// Pipeline orchestrates the extract-reshape-load run for .dly inputs.
type Pipeline struct {
	loader  BatchLoader
	opts    Options
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Pipeline. A zero calendar falls back to the simple leap rule
// and fewer than one worker means one.
func New(l BatchLoader, opts Options, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	if opts.Calendar.Name() == "" {
		opts.Calendar = domain.SimpleCalendar
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Pipeline{
		loader:  l,
		opts:    opts,
		logger:  logger,
		metrics: metrics,
	}
}

// RunAll runs every input in order. A failed input is logged and counted and
// the rest still run; the joined errors are returned at the end. Cancellation
// stops the loop.
func (p *Pipeline) RunAll(ctx context.Context, inputs []Extractor) ([]Report, error) {
	reports := make([]Report, 0, len(inputs))
	var errs []error
	for _, e := range inputs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		report, err := p.Run(ctx, e)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		reports = append(reports, report)
	}
	return reports, errors.Join(errs...)
}

// Run reshapes one input: decode, split by station, build and fill each
// station's series, and hand them to the loader.
func (p *Pipeline) Run(ctx context.Context, e Extractor) (Report, error) {
	start := time.Now()
	source := e.Name()
	p.logger.Info("run started", "source", source, "calendar", p.opts.Calendar.Name())

	report, err := p.run(ctx, e)
	if err != nil {
		p.metrics.RunFailures.Inc()
		p.logger.Error("run failed", "source", source, "error", err)
		return Report{}, fmt.Errorf("%s: %w", source, err)
	}

	p.metrics.RunDuration.Observe(time.Since(start).Seconds())
	p.logger.Info("run finished",
		"source", source,
		"stations", len(report.Stations),
		"duration", time.Since(start),
	)
	return report, nil
}

func (p *Pipeline) run(ctx context.Context, e Extractor) (Report, error) {
	table, err := e.Extract(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("extract: %w", err)
	}
	if len(table) == 0 {
		return Report{}, domain.ErrEmptyInput
	}
	p.metrics.RecordsDecoded.Add(float64(len(table)))

	report := Report{Source: e.Name()}
	for _, stationTable := range table.PartitionByStation() {
		summary, err := p.processStation(ctx, e.Name(), stationTable)
		if err != nil {
			return Report{}, err
		}
		report.Stations = append(report.Stations, summary)
	}
	return report, nil
}

// processStation reshapes and loads a single-station table.
func (p *Pipeline) processStation(ctx context.Context, source string, table domain.Table) (domain.Summary, error) {
	stationID := table[0].ID
	ix := domain.NewIndex(table)

	if dups := ix.Duplicates(); len(dups) > 0 {
		for _, d := range dups {
			p.logger.Warn("duplicate records, first one used",
				"station", stationID,
				"year", d.Year,
				"month", d.Month,
				"element", d.Element,
				"count", d.Count,
			)
		}
		p.metrics.DuplicateKeys.Add(float64(len(dups)))
		if p.opts.StrictDuplicates {
			d := dups[0]
			return domain.Summary{}, fmt.Errorf("station %s: %w: %04d-%02d %s",
				stationID, domain.ErrDuplicateRecord, d.Year, d.Month, d.Element)
		}
	}

	sk, err := domain.BuildSkeletons(table, p.opts.Elements, p.opts.Calendar)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("station %s: %w", stationID, err)
	}
	for _, w := range sk.Warnings() {
		p.logger.Warn("element skipped", "station", stationID, "reason", w)
	}
	p.metrics.UnsupportedElements.Add(float64(len(sk.Unsupported)))

	filled, err := p.fillAll(ctx, ix, sk.Series)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("station %s: %w", stationID, err)
	}

	summary := domain.Summarize(source, table, sk, filled, p.opts.Calendar)
	batch := domain.StationBatch{StationID: stationID, Series: filled, Summary: summary}
	if err := p.loader.LoadBatch(ctx, batch); err != nil {
		return domain.Summary{}, fmt.Errorf("load station %s: %w", stationID, err)
	}

	noRecord := 0
	for _, s := range filled {
		noRecord += s.NoRecordDays()
	}
	p.metrics.StationsProcessed.Inc()
	p.metrics.SeriesExported.Add(float64(len(filled)))
	p.metrics.NoRecordDays.Add(float64(noRecord))
	p.logger.Info("station reshaped",
		"station", stationID,
		"records", len(table),
		"series", len(filled),
		"no_record_days", noRecord,
	)
	return summary, nil
}

// fillAll fills the skeletons on a bounded worker group. Output order matches
// the skeleton order.
func (p *Pipeline) fillAll(ctx context.Context, ix *domain.Index, skeletons []domain.ElementSeries) ([]domain.ElementSeries, error) {
	filled := make([]domain.ElementSeries, len(skeletons))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)
	for i, s := range skeletons {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			filled[i] = ix.Fill(s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return filled, nil
}
