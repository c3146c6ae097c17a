// Command validate checks exported workbooks against the .dly file they came
// from. It re-decodes the source, re-reads every workbook and summary, and
// verifies coverage, day-by-day continuity, value fidelity and summary
// consistency.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -dly testdata/USC00000001.dly \
//	  -out output \
//	  -calendar simple \
//	  -elements PRCP,SNOW
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/couchcryptid/ghcn-daily-etl/internal/adapter/dly"
	"github.com/couchcryptid/ghcn-daily-etl/internal/adapter/excel"
	"github.com/couchcryptid/ghcn-daily-etl/internal/config"
	"github.com/couchcryptid/ghcn-daily-etl/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

// maxErrorsPerPhase keeps reports readable when a whole series is off.
const maxErrorsPerPhase = 50

// export is what was read back for one station.
type export struct {
	table   domain.Table
	index   *domain.Index
	series  map[string]domain.ElementSeries
	summary *domain.Summary
}

func main() {
	dlyPath := flag.String("dly", "", "source .dly file")
	outDir := flag.String("out", "", "export root directory")
	calendar := flag.String("calendar", "simple", "leap-year rule used for the export")
	elements := flag.String("elements", "", "comma-separated element codes requested for the export, empty for all")
	flag.Parse()

	if *dlyPath == "" || *outDir == "" {
		flag.Usage()
		os.Exit(1)
	}

	cal, err := domain.CalendarByName(*calendar)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(*dlyPath, *outDir, cal, config.ParseElements(*elements)))
}

func run(dlyPath, outDir string, cal domain.Calendar, requested []string) int {
	fmt.Println("=== GHCN-Daily Export Validation ===")
	fmt.Println()

	table, err := dly.NewFileSource(dlyPath).Extract(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: decode source: %v\n", err)
		return 1
	}
	if len(table) == 0 {
		fmt.Fprintln(os.Stderr, "FATAL: source has no records")
		return 1
	}

	coverage := &phase{name: "Export coverage"}
	exports := loadExports(coverage, outDir, table, requested)

	phases := []*phase{
		coverage,
		validateContinuity(exports, cal),
		validateValues(exports),
		validateSummaries(exports),
	}

	// ── Report results ──
	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	seriesCount := 0
	for _, e := range exports {
		seriesCount += len(e.series)
	}
	fmt.Println()
	fmt.Printf("Records: %d source, %d stations, %d series read back\n", len(table), len(exports), seriesCount)

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// loadExports reads back every workbook the source should have produced.
func loadExports(p *phase, outDir string, table domain.Table, requested []string) map[string]*export {
	exports := map[string]*export{}
	for _, st := range table.PartitionByStation() {
		id := st[0].ID
		e := &export{table: st, index: domain.NewIndex(st), series: map[string]domain.ElementSeries{}}
		exports[id] = e

		elements, _ := domain.ResolveElements(st, requested)
		for _, el := range elements {
			path := excel.SeriesPath(outDir, id, el)
			s, err := excel.ReadSeries(path)
			if err != nil {
				p.errorf("%s %s: %v", id, el, err)
				continue
			}
			if s.StationID != id && len(s.Rows) > 0 {
				p.errorf("%s %s: workbook holds station %s", id, el, s.StationID)
			}
			e.series[el] = s
		}

		summary, err := excel.ReadSummary(excel.SummaryPath(outDir, id))
		if err != nil {
			p.errorf("%s summary: %v", id, err)
			continue
		}
		e.summary = &summary
	}
	return exports
}

// validateContinuity checks each series covers the source months day by day.
func validateContinuity(exports map[string]*export, cal domain.Calendar) *phase {
	p := &phase{name: "Series continuity"}
	for id, e := range exports {
		start, end, err := domain.DateRange(e.table, cal)
		if err != nil {
			p.errorf("%s: %v", id, err)
			continue
		}
		want := len(cal.Range(start, end))
		for el, s := range e.series {
			if len(s.Rows) != want {
				p.errorf("%s %s: %d rows, want %d (%s to %s)", id, el, len(s.Rows), want, start, end)
				continue
			}
			if s.Rows[0].Date != start {
				p.errorf("%s %s: starts %s, want %s", id, el, s.Rows[0].Date, start)
			}
			for i := 1; i < len(s.Rows) && len(p.errors) < maxErrorsPerPhase; i++ {
				if next := cal.Next(s.Rows[i-1].Date); s.Rows[i].Date != next {
					p.errorf("%s %s: row %d is %s, want %s", id, el, i+2, s.Rows[i].Date, next)
				}
			}
		}
	}
	return p
}

// validateValues compares every exported day with the source slot.
func validateValues(exports map[string]*export) *phase {
	p := &phase{name: "Value fidelity"}
	for id, e := range exports {
		for el, s := range e.series {
			for _, row := range s.Rows {
				if len(p.errors) >= maxErrorsPerPhase {
					return p
				}
				want := expected(e.index, el, row.Date)
				if row != want {
					p.errorf("%s %s %s: got %+v, want %+v", id, el, row.Date, row, want)
				}
			}
		}
	}
	return p
}

func expected(ix *domain.Index, element string, d domain.Date) domain.Observation {
	rec, ok := ix.Lookup(d.Year, d.Month, element)
	if !ok {
		return domain.Observation{
			Date:  d,
			Value: domain.NoRecordValue,
			QFlag: domain.NoRecordFlag,
			MFlag: domain.NoRecordFlag,
			SFlag: domain.NoRecordFlag,
		}
	}
	slot := rec.Slot(d.Day)
	return domain.Observation{Date: d, Value: slot.Value, QFlag: slot.QFlag, MFlag: slot.MFlag, SFlag: slot.SFlag}
}

// validateSummaries checks each summary against what was read back.
func validateSummaries(exports map[string]*export) *phase {
	p := &phase{name: "Summary consistency"}
	for id, e := range exports {
		if e.summary == nil {
			continue
		}
		if e.summary.Records != len(e.table) {
			p.errorf("%s: summary records %d, source has %d", id, e.summary.Records, len(e.table))
		}
		if len(e.summary.Elements) != len(e.series) {
			p.errorf("%s: summary lists %d elements, %d workbooks read", id, len(e.summary.Elements), len(e.series))
		}
		for _, es := range e.summary.Elements {
			s, ok := e.series[es.Element]
			if !ok {
				p.errorf("%s: summary element %s has no workbook", id, es.Element)
				continue
			}
			if es.Days != len(s.Rows) {
				p.errorf("%s %s: summary days %d, workbook rows %d", id, es.Element, es.Days, len(s.Rows))
			}
			if es.NoRecordDays != s.NoRecordDays() {
				p.errorf("%s %s: summary no-record days %d, workbook %d", id, es.Element, es.NoRecordDays, s.NoRecordDays())
			}
		}
	}
	return p
}
